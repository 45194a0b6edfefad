package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/fieldscope/fieldops-inventory/internal/model"
)

// SeedDemo inserts demo rows, skipping anything already present.
func (r *repository) SeedDemo(
	ctx context.Context,
	rooms []*model.Room,
	parts []*model.GlobalPart,
	lines []*model.EquipmentLine,
	records []*model.InventoryRecord,
) error {
	const op = "repository.SeedDemo"

	var count int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM project_equipment").Scan(&count); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count > 0 {
		return nil
	}

	roomsQ := r.sb.Insert("rooms").Columns("id", "name")
	for _, room := range rooms {
		roomsQ = roomsQ.Values(room.ID, room.Name)
	}

	partsQ := r.sb.Insert("global_parts").
		Columns("id", "name", "quantity_on_hand", "last_inventory_check")
	for _, p := range parts {
		partsQ = partsQ.Values(p.ID, p.Name, p.QuantityOnHand, p.LastInventoryCheck)
	}

	linesQ := r.sb.Insert("project_equipment").
		Columns("id", "project_id", "name", "room_id", "quantity_required", "global_part_id")
	for _, l := range lines {
		var roomID, partID any
		if l.Room != nil {
			roomID = l.Room.ID
		}
		if l.GlobalPart != nil {
			partID = l.GlobalPart.ID
		}
		linesQ = linesQ.Values(l.ID, l.ProjectID, l.Name, roomID, l.NeededQuantity, partID)
	}

	inserts := []sq.InsertBuilder{roomsQ, partsQ, linesQ}

	if len(records) > 0 {
		recordsQ := r.sb.Insert("project_equipment_inventory").
			Columns("id", "equipment_id", "quantity_on_hand", "needs_order", "updated_at")
		for _, rec := range records {
			recordsQ = recordsQ.Values(rec.ID, rec.EquipmentID, rec.QuantityOnHand, rec.NeedsOrder, rec.UpdatedAt)
		}
		inserts = append(inserts, recordsQ)
	}

	for _, q := range inserts {
		sqlStr, args, err := q.Suffix("ON CONFLICT DO NOTHING").ToSql()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
