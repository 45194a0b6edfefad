package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldscope/fieldops-inventory/internal/model"
)

type customerServiceStub struct {
	gotPhone string
	result   *model.IdentifyResult
	err      error
}

func (s *customerServiceStub) IdentifyByPhone(_ context.Context, rawPhone string) (*model.IdentifyResult, error) {
	s.gotPhone = rawPhone
	return s.result, s.err
}

func TestIdentifyHandler(t *testing.T) {
	t.Parallel()

	customerID := uuid.New()
	known := &model.IdentifyResult{
		Identified: true,
		Customer: &model.Customer{
			ID:    customerID,
			Name:  "Hartwell Residence",
			Phone: "(555) 123-4567",
			Email: "hartwell@example.com",
		},
	}

	type testCase struct {
		name       string
		body       string
		stub       *customerServiceStub
		wantStatus int
		wantPhone  string
		assert     func(t *testing.T, resp identifyResponse)
	}

	tests := []testCase{
		{
			name:       "malformed body",
			body:       "{not json",
			stub:       &customerServiceStub{},
			wantStatus: http.StatusBadRequest,
			assert: func(t *testing.T, resp identifyResponse) {
				assert.False(t, resp.Success)
				assert.NotEmpty(t, resp.Error)
			},
		},
		{
			name:       "missing phone maps to bad request",
			body:       `{}`,
			stub:       &customerServiceStub{err: model.ErrValidation},
			wantStatus: http.StatusBadRequest,
			assert: func(t *testing.T, resp identifyResponse) {
				assert.False(t, resp.Success)
			},
		},
		{
			name:       "plain phone field",
			body:       `{"phone": "555-123-4567"}`,
			stub:       &customerServiceStub{result: known},
			wantStatus: http.StatusOK,
			wantPhone:  "555-123-4567",
			assert: func(t *testing.T, resp identifyResponse) {
				assert.True(t, resp.Success)
				assert.True(t, resp.Identified)
				require.NotNil(t, resp.Customer)
				assert.Equal(t, customerID.String(), resp.Customer.ID)
				assert.Equal(t, "Hartwell Residence", resp.Customer.Name)
			},
		},
		{
			name:       "webhook args shape",
			body:       `{"args": {"phone_number": "+15551234567"}}`,
			stub:       &customerServiceStub{result: known},
			wantStatus: http.StatusOK,
			wantPhone:  "+15551234567",
			assert: func(t *testing.T, resp identifyResponse) {
				assert.True(t, resp.Success)
				assert.True(t, resp.Identified)
			},
		},
		{
			name:       "webhook call shape",
			body:       `{"call": {"from_number": "+15559876543"}}`,
			stub:       &customerServiceStub{result: &model.IdentifyResult{Identified: false}},
			wantStatus: http.StatusOK,
			wantPhone:  "+15559876543",
			assert: func(t *testing.T, resp identifyResponse) {
				assert.True(t, resp.Success)
				assert.False(t, resp.Identified)
				assert.Nil(t, resp.Customer)
			},
		},
		{
			name:       "top-level phone wins over nested fields",
			body:       `{"phone": "111", "args": {"phone_number": "222"}, "call": {"from_number": "333"}}`,
			stub:       &customerServiceStub{result: &model.IdentifyResult{Identified: false}},
			wantStatus: http.StatusOK,
			wantPhone:  "111",
			assert:     func(t *testing.T, resp identifyResponse) {},
		},
		{
			name:       "service failure maps to internal error",
			body:       `{"phone": "555-123-4567"}`,
			stub:       &customerServiceStub{err: errors.New("db read failed")},
			wantStatus: http.StatusInternalServerError,
			assert: func(t *testing.T, resp identifyResponse) {
				assert.False(t, resp.Success)
				assert.NotEmpty(t, resp.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewIdentifyHandler(tt.stub)

			req := httptest.NewRequest(http.MethodPost, "/api/service/identify", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Identify(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantPhone != "" {
				assert.Equal(t, tt.wantPhone, tt.stub.gotPhone)
			}

			var resp identifyResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			tt.assert(t, resp)
		})
	}
}
