package repository

import (
	"github.com/fieldscope/fieldops-inventory/internal/model"
)

func rowToModel(row *equipmentRow) *model.EquipmentLine {
	if row == nil {
		return nil
	}

	out := &model.EquipmentLine{
		ID:             row.ID,
		ProjectID:      row.ProjectID,
		Name:           row.Name,
		NeededQuantity: row.NeededQuantity,
	}

	if row.RoomID != nil {
		name := ""
		if row.RoomName != nil {
			name = *row.RoomName
		}
		out.Room = &model.Room{ID: *row.RoomID, Name: name}
	}

	if row.GlobalPartID != nil {
		part := &model.GlobalPart{
			ID:                 *row.GlobalPartID,
			LastInventoryCheck: row.LastInventoryCheck,
		}
		if row.GlobalPartName != nil {
			part.Name = *row.GlobalPartName
		}
		if row.GlobalQuantityOnHand != nil {
			part.QuantityOnHand = *row.GlobalQuantityOnHand
		}
		out.GlobalPart = part
	}

	if row.InventoryID != nil {
		rec := &model.InventoryRecord{
			ID:          *row.InventoryID,
			EquipmentID: row.ID,
			UpdatedAt:   row.InventoryUpdatedAt,
		}
		if row.InventoryQuantityOnHand != nil {
			rec.QuantityOnHand = *row.InventoryQuantityOnHand
		}
		if row.NeedsOrder != nil {
			rec.NeedsOrder = *row.NeedsOrder
		}
		out.LegacyInventory = rec
	}

	return out
}
