package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fieldscope/fieldops-inventory/internal/model"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewCustomerRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CustomerByPhoneDigits matches on the last ten digits of the normalized
// phone number, so country-code prefixes do not break identification.
func (r *repository) CustomerByPhoneDigits(ctx context.Context, digits string) (*model.Customer, error) {
	const op = "repository.CustomerByPhoneDigits"

	q := r.sb.
		Select("id", "name", "phone", "phone_digits", "email", "address", "created_at").
		From("customers").
		Where(sq.Expr("RIGHT(phone_digits, 10) = RIGHT(?, 10)", digits)).
		OrderBy("created_at").
		Limit(1)

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var c model.Customer
	err = r.pool.QueryRow(ctx, sqlStr, args...).Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.PhoneDigits,
		&c.Email,
		&c.Address,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &c, nil
}
