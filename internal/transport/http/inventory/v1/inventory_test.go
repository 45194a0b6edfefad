package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscope/fieldops-inventory/internal/model"
	inventory "github.com/fieldscope/fieldops-inventory/internal/service/inventory"
)

type inventoryServiceStub struct {
	gotOverlay *inventory.Overlay

	view    *model.CatalogView
	viewErr error

	commit    *model.CommitResult
	commitErr error
}

func (s *inventoryServiceStub) CatalogView(_ context.Context, projectID uuid.UUID, _ *inventory.Overlay) (*model.CatalogView, error) {
	if s.viewErr != nil {
		return nil, s.viewErr
	}
	if s.view != nil {
		return s.view, nil
	}
	return &model.CatalogView{ProjectID: projectID}, nil
}

func (s *inventoryServiceStub) Commit(_ context.Context, _ uuid.UUID, ov *inventory.Overlay) (*model.CommitResult, error) {
	s.gotOverlay = ov
	return s.commit, s.commitErr
}

func newTestRouter(stub *inventoryServiceStub) *chi.Mux {
	r := chi.NewRouter()
	NewInventoryHandler(stub).Register(r)
	return r
}

func TestGetCatalog(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()

	t.Run("invalid project id", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/not-a-uuid/equipment", nil)

		newTestRouter(&inventoryServiceStub{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation error maps to bad request", func(t *testing.T) {
		t.Parallel()

		stub := &inventoryServiceStub{viewErr: fmt.Errorf("catalog: %w", model.ErrValidation)}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/equipment", nil)

		newTestRouter(stub).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success returns grouped catalog", func(t *testing.T) {
		t.Parallel()

		line := &model.EquipmentLine{
			ID:             uuid.New(),
			ProjectID:      projectID,
			Name:           "Amp",
			NeededQuantity: 2,
			GlobalPart:     &model.GlobalPart{ID: uuid.New(), QuantityOnHand: 1},
		}
		stub := &inventoryServiceStub{
			view: &model.CatalogView{
				ProjectID: projectID,
				Groups: []model.RoomGroup{{
					Label: "Rack Room",
					Lines: []model.LineView{{
						Line:   line,
						Status: model.NewStockStatus(2, 1, false),
					}},
				}},
				TotalLines: 1,
				ShortLines: 1,
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID.String()+"/equipment", nil)

		newTestRouter(stub).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp catalogResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, projectID.String(), resp.ProjectID)
		require.Len(t, resp.Groups, 1)
		assert.Equal(t, "Rack Room", resp.Groups[0].Room)
		require.Len(t, resp.Groups[0].Lines, 1)
		got := resp.Groups[0].Lines[0]
		assert.Equal(t, line.ID.String(), got.ID)
		assert.EqualValues(t, 1, got.OnHand)
		assert.EqualValues(t, 1, got.Shortage)
		assert.False(t, got.HasStock)
		assert.Equal(t, "global", got.Source)
		assert.Equal(t, 1, resp.ShortLines)
	})
}

func TestCommitInventory(t *testing.T) {
	t.Parallel()

	projectID := uuid.New()
	commitURL := "/api/v1/projects/" + projectID.String() + "/inventory/commit"

	t.Run("invalid body", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, commitURL, strings.NewReader("{not json"))

		newTestRouter(&inventoryServiceStub{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid equipment id in edits", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, commitURL,
			strings.NewReader(`{"edits": {"nope": "3"}}`))

		newTestRouter(&inventoryServiceStub{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("edit values coerce like the quantity field", func(t *testing.T) {
		t.Parallel()

		stringLine := uuid.New()
		numberLine := uuid.New()
		negativeLine := uuid.New()
		junkLine := uuid.New()

		body := fmt.Sprintf(
			`{"edits": {%q: "7", %q: 3.9, %q: -2, %q: "abc"}}`,
			stringLine, numberLine, negativeLine, junkLine,
		)

		stub := &inventoryServiceStub{commit: &model.CommitResult{}}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, commitURL, strings.NewReader(body))

		newTestRouter(stub).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, stub.gotOverlay)

		wantValues := map[uuid.UUID]int64{
			stringLine:   7,
			numberLine:   3,
			negativeLine: 0,
			junkLine:     0,
		}
		for id, want := range wantValues {
			got, ok := stub.gotOverlay.Get(id)
			require.True(t, ok, "edit for %s missing", id)
			assert.Equal(t, want, got)
		}
	})

	t.Run("failed commit reports per-line failures", func(t *testing.T) {
		t.Parallel()

		failedLine := uuid.New()
		appliedLine := uuid.New()

		stub := &inventoryServiceStub{
			commit: &model.CommitResult{
				Applied: []uuid.UUID{appliedLine},
				Failed: []model.LineFailure{{
					EquipmentID: failedLine,
					Err:         fmt.Errorf("db write failed"),
				}},
			},
			commitErr: fmt.Errorf("commit: %w", model.ErrCommitFailed),
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, commitURL,
			strings.NewReader(fmt.Sprintf(`{"edits": {%q: "1"}}`, failedLine)))

		newTestRouter(stub).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadGateway, rec.Code)

		var resp commitResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{appliedLine.String()}, resp.Applied)
		require.Len(t, resp.Failed, 1)
		assert.Equal(t, failedLine.String(), resp.Failed[0].EquipmentID)
		assert.Nil(t, resp.Catalog)
	})

	t.Run("success returns the reloaded catalog", func(t *testing.T) {
		t.Parallel()

		lineID := uuid.New()
		stub := &inventoryServiceStub{
			commit: &model.CommitResult{Applied: []uuid.UUID{lineID}},
			view:   &model.CatalogView{ProjectID: projectID, TotalLines: 1},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, commitURL,
			strings.NewReader(fmt.Sprintf(`{"edits": {%q: "5"}}`, lineID)))

		newTestRouter(stub).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp commitResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{lineID.String()}, resp.Applied)
		require.NotNil(t, resp.Catalog)
		assert.Equal(t, 1, resp.Catalog.TotalLines)
	})
}
