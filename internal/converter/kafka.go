package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fieldscope/fieldops-inventory/internal/model"
)

// Wire records for the inventory.checked topic. JSON on the wire; the
// structs stay private so producers and consumers share one codec.
type inventoryCheckedRecord struct {
	EventID   uuid.UUID           `json:"event_id"`
	ProjectID uuid.UUID           `json:"project_id"`
	CheckedAt time.Time           `json:"checked_at"`
	Lines     []checkedLineRecord `json:"lines"`
}

type checkedLineRecord struct {
	EquipmentID    uuid.UUID `json:"equipment_id"`
	Name           string    `json:"name"`
	Source         string    `json:"source"`
	QuantityOnHand int64     `json:"quantity_on_hand"`
	NeededQuantity int64     `json:"needed_quantity"`
	Shortage       int64     `json:"shortage"`
	NeedsOrder     bool      `json:"needs_order"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) InventoryCheckedToBytes(m model.InventoryChecked) ([]byte, error) {
	rec := inventoryCheckedRecord{
		EventID:   m.EventID,
		ProjectID: m.ProjectID,
		CheckedAt: m.CheckedAt,
		Lines:     make([]checkedLineRecord, 0, len(m.Lines)),
	}
	for _, l := range m.Lines {
		rec.Lines = append(rec.Lines, checkedLineRecord{
			EquipmentID:    l.EquipmentID,
			Name:           l.Name,
			Source:         l.Source.String(),
			QuantityOnHand: l.QuantityOnHand,
			NeededQuantity: l.NeededQuantity,
			Shortage:       l.Shortage,
			NeedsOrder:     l.NeedsOrder,
		})
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory checked record: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) InventoryCheckedToModel(data []byte) (model.InventoryChecked, error) {
	var rec inventoryCheckedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.InventoryChecked{}, fmt.Errorf("failed to unmarshal inventory checked record: %w", err)
	}

	out := model.InventoryChecked{
		EventID:   rec.EventID,
		ProjectID: rec.ProjectID,
		CheckedAt: rec.CheckedAt,
		Lines:     make([]model.CheckedLine, 0, len(rec.Lines)),
	}
	for _, l := range rec.Lines {
		out.Lines = append(out.Lines, model.CheckedLine{
			EquipmentID:    l.EquipmentID,
			Name:           l.Name,
			Source:         sourceFromString(l.Source),
			QuantityOnHand: l.QuantityOnHand,
			NeededQuantity: l.NeededQuantity,
			Shortage:       l.Shortage,
			NeedsOrder:     l.NeedsOrder,
		})
	}

	return out, nil
}

func sourceFromString(s string) model.StockSource {
	switch s {
	case "global":
		return model.StockSourceGlobal
	case "legacy":
		return model.StockSourceLegacy
	default:
		return model.StockSourceNone
	}
}
