package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TheOfficialNikolaStoykov/anymind-pos/internal/model"
)

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPaymentRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, p *model.Payment) (uuid.UUID, error) {
	const op = "repository.Create"

	var extra []byte
	if len(p.AdditionalFields) > 0 {
		var err error
		extra, err = json.Marshal(p.AdditionalFields)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s: marshal additional fields: %w", op, err)
		}
	}

	q := r.sb.
		Insert("payments").
		Columns(
			"customer_id", "price", "price_modifier", "final_price",
			"points", "payment_method", "paid_at", "additional_fields",
		).
		Values(
			p.CustomerID, p.Price, p.PriceModifier, p.FinalPrice,
			p.Points, p.Method, p.PaidAt, extra,
		).
		Suffix("RETURNING id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var paymentID uuid.UUID
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&paymentID); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return paymentID, nil
}

// ListByPeriod returns payments with paid_at in [from, to], both bounds
// inclusive, ordered by paid_at ascending.
func (r *repository) ListByPeriod(ctx context.Context, from, to time.Time) ([]model.Payment, error) {
	const op = "repository.ListByPeriod"

	q := r.sb.
		Select(
			"id", "customer_id", "price", "price_modifier", "final_price",
			"points", "payment_method", "paid_at", "additional_fields",
		).
		From("payments").
		Where(sq.GtOrEq{"paid_at": from}).
		Where(sq.LtOrEq{"paid_at": to}).
		OrderBy("paid_at ASC")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]model.Payment, 0)
	for rows.Next() {
		var (
			p     model.Payment
			extra []byte
		)
		if err := rows.Scan(
			&p.ID,
			&p.CustomerID,
			&p.Price,
			&p.PriceModifier,
			&p.FinalPrice,
			&p.Points,
			&p.Method,
			&p.PaidAt,
			&extra,
		); err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}

		if len(extra) > 0 {
			if err := json.Unmarshal(extra, &p.AdditionalFields); err != nil {
				return nil, fmt.Errorf("%s unmarshal additional fields: %w", op, err)
			}
		}

		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}

	return out, nil
}
