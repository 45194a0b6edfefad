package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/fieldscope/fieldops-inventory/internal/model"
	"github.com/fieldscope/fieldops-inventory/internal/platform/logger"
	inventory "github.com/fieldscope/fieldops-inventory/internal/service/inventory"
)

type InventoryService interface {
	CatalogView(ctx context.Context, projectID uuid.UUID, ov *inventory.Overlay) (*model.CatalogView, error)
	Commit(ctx context.Context, projectID uuid.UUID, ov *inventory.Overlay) (*model.CommitResult, error)
}

type handler struct {
	svc InventoryService
}

func NewInventoryHandler(service InventoryService) *handler {
	return &handler{svc: service}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/api/v1/projects/{projectID}/equipment", h.GetCatalog)
	r.Post("/api/v1/projects/{projectID}/inventory/commit", h.CommitInventory)
}

// GetCatalog returns the room-grouped equipment catalog with per-line
// stock statuses computed from stored state.
func (h *handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	view, err := h.svc.CatalogView(r.Context(), projectID, nil)
	if err != nil {
		mapError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, catalogToResponse(view))
}

// CommitInventory persists a batch of pending quantity edits. The client
// sends its overlay as a map of equipment id to raw quantity value; values
// are coerced the same way the edit field coerces them, never rejected.
func (h *handler) CommitInventory(w http.ResponseWriter, r *http.Request) {
	projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ov := inventory.NewOverlay()
	for rawID, rawValue := range req.Edits {
		lineID, err := uuid.Parse(rawID)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid equipment id %q", rawID))
			return
		}
		setRawEdit(ov, lineID, rawValue)
	}

	result, err := h.svc.Commit(r.Context(), projectID, ov)
	if err != nil {
		if errors.Is(err, model.ErrCommitFailed) && result != nil {
			writeJSON(w, http.StatusBadGateway, commitToResponse(result, nil))
			return
		}
		mapError(w, err)
		return
	}

	// Reload so the response reflects authoritative post-write state.
	view, err := h.svc.CatalogView(r.Context(), projectID, nil)
	if err != nil {
		logger.Error(r.Context(), "catalog reload after commit", logger.ErrorF(err))
		writeJSON(w, http.StatusOK, commitToResponse(result, nil))
		return
	}

	writeJSON(w, http.StatusOK, commitToResponse(result, view))
}

// setRawEdit coerces one JSON edit value. Strings and numbers both clamp
// to a non-negative integer; anything else degrades to zero.
func setRawEdit(ov *inventory.Overlay, lineID uuid.UUID, raw any) {
	switch v := raw.(type) {
	case string:
		ov.Set(lineID, v)
	case float64:
		ov.SetQuantity(lineID, int64(math.Floor(v)))
	default:
		ov.Set(lineID, fmt.Sprint(v))
	}
}

func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrEquipmentNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrCommitFailed):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
