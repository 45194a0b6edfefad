package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fieldscope/fieldops-inventory/internal/model"
)

type CustomerService interface {
	IdentifyByPhone(ctx context.Context, rawPhone string) (*model.IdentifyResult, error)
}

type handler struct {
	svc CustomerService
}

func NewIdentifyHandler(service CustomerService) *handler {
	return &handler{svc: service}
}

// identifyRequest accepts both a plain {"phone": ...} body and the nested
// payload shape the telephony webhook sends.
type identifyRequest struct {
	Phone string `json:"phone"`
	Args  struct {
		PhoneNumber string `json:"phone_number"`
	} `json:"args"`
	Call struct {
		FromNumber string `json:"from_number"`
	} `json:"call"`
}

func (r identifyRequest) phone() string {
	for _, p := range []string{r.Phone, r.Args.PhoneNumber, r.Call.FromNumber} {
		if strings.TrimSpace(p) != "" {
			return p
		}
	}
	return ""
}

type customerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type identifyResponse struct {
	Success    bool              `json:"success"`
	Identified bool              `json:"identified,omitempty"`
	Customer   *customerResponse `json:"customer,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// Identify looks up a customer by the calling phone number.
func (h *handler) Identify(w http.ResponseWriter, r *http.Request) {
	var req identifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeIdentify(w, http.StatusBadRequest, identifyResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	res, err := h.svc.IdentifyByPhone(r.Context(), req.phone())
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			writeIdentify(w, http.StatusBadRequest, identifyResponse{
				Success: false,
				Error:   "missing or invalid phone number",
			})
			return
		}
		writeIdentify(w, http.StatusInternalServerError, identifyResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	out := identifyResponse{Success: true, Identified: res.Identified}
	if res.Customer != nil {
		out.Customer = &customerResponse{
			ID:      res.Customer.ID.String(),
			Name:    res.Customer.Name,
			Phone:   res.Customer.Phone,
			Email:   res.Customer.Email,
			Address: res.Customer.Address,
		}
	}

	writeIdentify(w, http.StatusOK, out)
}

func writeIdentify(w http.ResponseWriter, status int, payload identifyResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
