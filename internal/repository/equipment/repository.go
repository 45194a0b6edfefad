package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldscope/fieldops-inventory/internal/model"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewEquipmentRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListByProject loads every equipment line of the project joined with its
// room, global part and legacy inventory record, ordered by name. The two
// generations of the required-quantity column are coalesced, newest first.
func (r *repository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.EquipmentLine, error) {
	const op = "repository.ListByProject"

	q := r.sb.
		Select(
			"e.id",
			"e.project_id",
			"e.name",
			"COALESCE(e.quantity_required, e.planned_quantity, 0)",
			"r.id",
			"r.name",
			"gp.id",
			"gp.name",
			"gp.quantity_on_hand",
			"gp.last_inventory_check",
			"inv.id",
			"inv.quantity_on_hand",
			"inv.needs_order",
			"inv.updated_at",
		).
		From("project_equipment e").
		LeftJoin("rooms r ON r.id = e.room_id").
		LeftJoin("global_parts gp ON gp.id = e.global_part_id").
		LeftJoin("project_equipment_inventory inv ON inv.equipment_id = e.id").
		Where(sq.Eq{"e.project_id": projectID}).
		OrderBy("e.name", "e.id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]*model.EquipmentLine, 0)
	for rows.Next() {
		var row equipmentRow
		err := rows.Scan(
			&row.ID,
			&row.ProjectID,
			&row.Name,
			&row.NeededQuantity,
			&row.RoomID,
			&row.RoomName,
			&row.GlobalPartID,
			&row.GlobalPartName,
			&row.GlobalQuantityOnHand,
			&row.LastInventoryCheck,
			&row.InventoryID,
			&row.InventoryQuantityOnHand,
			&row.NeedsOrder,
			&row.InventoryUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, rowToModel(&row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}

	return out, nil
}

// UpdateGlobalPartQuantity writes the centrally tracked quantity and stamps
// last_inventory_check. Negative input is clamped to zero, the table never
// holds a negative count.
func (r *repository) UpdateGlobalPartQuantity(ctx context.Context, partID uuid.UUID, quantity int64, checkedAt time.Time) error {
	const op = "repository.UpdateGlobalPartQuantity"

	if quantity < 0 {
		quantity = 0
	}

	q := r.sb.
		Update("global_parts").
		Set("quantity_on_hand", quantity).
		Set("last_inventory_check", checkedAt).
		Where(sq.Eq{"id": partID})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	ct, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if ct.RowsAffected() == 0 {
		return model.ErrEquipmentNotFound
	}

	return nil
}

// UpsertInventoryRecord writes the legacy per-project stock row for the
// line, creating it when the line never had one. needs_order is the
// caller's recomputed value and updated_at is stamped on every write.
func (r *repository) UpsertInventoryRecord(ctx context.Context, equipmentID uuid.UUID, quantity int64, needsOrder bool, updatedAt time.Time) error {
	const op = "repository.UpsertInventoryRecord"

	if quantity < 0 {
		quantity = 0
	}

	q := r.sb.
		Insert("project_equipment_inventory").
		Columns("id", "equipment_id", "quantity_on_hand", "needs_order", "updated_at").
		Values(uuid.New(), equipmentID, quantity, needsOrder, updatedAt).
		Suffix(`ON CONFLICT (equipment_id) DO UPDATE
			SET quantity_on_hand = EXCLUDED.quantity_on_hand,
			    needs_order = EXCLUDED.needs_order,
			    updated_at = EXCLUDED.updated_at`)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
