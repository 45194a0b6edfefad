package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fieldscope/fieldops-inventory/internal/model"
	"github.com/fieldscope/fieldops-inventory/internal/platform/logger"
)

type commitRequest struct {
	// Equipment id -> raw proposed quantity, exactly as the client's
	// pending-edit overlay holds it.
	Edits map[string]any `json:"edits"`
}

type lineResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	NeededQuantity int64  `json:"needed_quantity"`
	OnHand         int64  `json:"on_hand"`
	Shortage       int64  `json:"shortage"`
	HasStock       bool   `json:"has_stock"`
	Source         string `json:"source"`
}

type groupResponse struct {
	Room  string         `json:"room"`
	Lines []lineResponse `json:"lines"`
}

type catalogResponse struct {
	ProjectID  string          `json:"project_id"`
	Groups     []groupResponse `json:"groups"`
	TotalLines int             `json:"total_lines"`
	ShortLines int             `json:"short_lines"`
}

type lineFailureResponse struct {
	EquipmentID string `json:"equipment_id"`
	Error       string `json:"error"`
}

type commitResponse struct {
	Applied []string              `json:"applied"`
	Failed  []lineFailureResponse `json:"failed,omitempty"`
	Catalog *catalogResponse      `json:"catalog,omitempty"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func catalogToResponse(view *model.CatalogView) *catalogResponse {
	out := &catalogResponse{
		ProjectID:  view.ProjectID.String(),
		Groups:     make([]groupResponse, 0, len(view.Groups)),
		TotalLines: view.TotalLines,
		ShortLines: view.ShortLines,
	}

	for _, g := range view.Groups {
		group := groupResponse{
			Room:  g.Label,
			Lines: make([]lineResponse, 0, len(g.Lines)),
		}
		for _, lv := range g.Lines {
			group.Lines = append(group.Lines, lineResponse{
				ID:             lv.Line.ID.String(),
				Name:           lv.Line.Name,
				NeededQuantity: lv.Line.NeededQuantity,
				OnHand:         lv.Status.OnHand,
				Shortage:       lv.Status.Shortage,
				HasStock:       lv.Status.HasStock,
				Source:         lv.Line.ResolveStock().Source.String(),
			})
		}
		out.Groups = append(out.Groups, group)
	}

	return out
}

func commitToResponse(result *model.CommitResult, view *model.CatalogView) *commitResponse {
	out := &commitResponse{
		Applied: make([]string, 0, len(result.Applied)),
	}
	for _, id := range result.Applied {
		out.Applied = append(out.Applied, id.String())
	}
	for _, f := range result.Failed {
		out.Failed = append(out.Failed, lineFailureResponse{
			EquipmentID: f.EquipmentID.String(),
			Error:       f.Err.Error(),
		})
	}
	if view != nil {
		out.Catalog = catalogToResponse(view)
	}

	return out
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(context.Background(), "encode response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Code: status, Message: message})
}
