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

func NewReorderRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// UpsertOpen creates or refreshes the single open reorder request for an
// equipment line. A later inventory check overwrites the requested
// quantity, there is never more than one open request per line.
func (r *repository) UpsertOpen(ctx context.Context, req *model.ReorderRequest) error {
	const op = "repository.UpsertOpen"

	now := time.Now()

	q := r.sb.
		Insert("reorder_requests").
		Columns("id", "project_id", "equipment_id", "name", "quantity", "status", "requested_at", "updated_at").
		Values(uuid.New(), req.ProjectID, req.EquipmentID, req.Name, req.Quantity, model.ReorderStatusOpen, now, now).
		Suffix(`ON CONFLICT (equipment_id) WHERE status = 'OPEN' DO UPDATE
			SET quantity = EXCLUDED.quantity,
			    name = EXCLUDED.name,
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

// CloseOpen closes the open request for a line whose shortage is gone.
// Closing a line with no open request is a no-op.
func (r *repository) CloseOpen(ctx context.Context, equipmentID uuid.UUID) error {
	const op = "repository.CloseOpen"

	q := r.sb.
		Update("reorder_requests").
		Set("status", model.ReorderStatusClosed).
		Set("updated_at", time.Now()).
		Where(sq.Eq{
			"equipment_id": equipmentID,
			"status":       model.ReorderStatusOpen,
		})

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.pool.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListOpenByProject returns the open procurement backlog for a project.
func (r *repository) ListOpenByProject(ctx context.Context, projectID uuid.UUID) ([]*model.ReorderRequest, error) {
	const op = "repository.ListOpenByProject"

	q := r.sb.
		Select("id", "project_id", "equipment_id", "name", "quantity", "status", "requested_at", "updated_at").
		From("reorder_requests").
		Where(sq.Eq{
			"project_id": projectID,
			"status":     model.ReorderStatusOpen,
		}).
		OrderBy("requested_at")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]*model.ReorderRequest, 0)
	for rows.Next() {
		var req model.ReorderRequest
		err := rows.Scan(
			&req.ID,
			&req.ProjectID,
			&req.EquipmentID,
			&req.Name,
			&req.Quantity,
			&req.Status,
			&req.RequestedAt,
			&req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}

	return out, nil
}
