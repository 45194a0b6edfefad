package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fieldscope/fieldops-inventory/internal/model"
	"github.com/fieldscope/fieldops-inventory/internal/service/customer/mocks"
)

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name string
		raw  string
		want string
	}

	tests := []testCase{
		{name: "digits pass through", raw: "5551234567", want: "5551234567"},
		{name: "formatted national number", raw: "(555) 123-4567", want: "5551234567"},
		{name: "e164 with country code", raw: "+1 555 123 4567", want: "15551234567"},
		{name: "dots and spaces", raw: "555.123.4567 ", want: "5551234567"},
		{name: "letters dropped", raw: "call 555x123x4567", want: "5551234567"},
		{name: "empty input", raw: "", want: ""},
		{name: "no digits at all", raw: "anonymous", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}

func TestServiceIdentifyByPhone(t *testing.T) {
	t.Parallel()

	type deps struct {
		repository *mocks.MockCustomerRepository
	}

	newSvc := func(d deps) *service {
		return NewCustomerService(d.repository, time.Second)
	}

	wantCustomer := &model.Customer{
		ID:          uuid.New(),
		Name:        "Hartwell Residence",
		Phone:       "(555) 123-4567",
		PhoneDigits: "5551234567",
	}

	type testCase struct {
		name   string
		phone  string
		setup  func(d deps)
		assert func(t *testing.T, res *model.IdentifyResult, err error, d deps)
	}

	tests := []testCase{
		{
			name:  "validation error: empty phone",
			phone: "",
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, res *model.IdentifyResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "CustomerByPhoneDigits", mock.Anything, mock.Anything)
			},
		},
		{
			name:  "validation error: too few digits",
			phone: "+1 (55) 5",
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, res *model.IdentifyResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:  "unknown number is not an error",
			phone: "555-987-6543",
			setup: func(d deps) {
				d.repository.
					On("CustomerByPhoneDigits", mock.Anything, "5559876543").
					Return((*model.Customer)(nil), model.ErrCustomerNotFound).
					Once()
			},
			assert: func(t *testing.T, res *model.IdentifyResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.False(t, res.Identified)
				assert.Nil(t, res.Customer)
			},
		},
		{
			name:  "repository error surfaces",
			phone: "555-987-6543",
			setup: func(d deps) {
				d.repository.
					On("CustomerByPhoneDigits", mock.Anything, "5559876543").
					Return((*model.Customer)(nil), errors.New("db read failed")).
					Once()
			},
			assert: func(t *testing.T, res *model.IdentifyResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db read failed")
				assert.Nil(t, res)
			},
		},
		{
			name:  "success: formatted number normalizes before lookup",
			phone: "+1 (555) 123-4567",
			setup: func(d deps) {
				d.repository.
					On("CustomerByPhoneDigits", mock.Anything, "15551234567").
					Return(wantCustomer, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.IdentifyResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.True(t, res.Identified)
				assert.Equal(t, wantCustomer, res.Customer)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockCustomerRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.IdentifyByPhone(context.Background(), tt.phone)
			tt.assert(t, res, err, d)
		})
	}
}
