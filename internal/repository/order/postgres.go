package order

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"plantstore/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const orderColumns = `id::text, user_id::text, nursery_id::text, plant_id::text, quantity, unit_price_cents, total_cents, status, payment_status, payment_ref, item, address, created_at`

func (r *postgresRepo) InsertBatch(ctx context.Context, orders []domain.Order) ([]domain.Order, error) {
	if len(orders) == 0 {
		return nil, nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO orders (user_id, nursery_id, plant_id, quantity, unit_price_cents, total_cents, status, payment_status, payment_ref, item, address)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id::text, created_at
`
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		item, err := json.Marshal(o.Item)
		if err != nil {
			return nil, err
		}
		addr, err := json.Marshal(o.Address)
		if err != nil {
			return nil, err
		}
		row := o
		err = tx.QueryRow(ctx, q,
			o.UserID, o.NurseryID, o.PlantID, o.Quantity, o.UnitPriceCents, o.TotalCents,
			o.Status, o.PaymentStatus, o.PaymentRef, item, addr,
		).Scan(&row.ID, &row.CreatedAt)
		if err != nil {
			r.logger.Printf("order repo: insert user_id=%s plant_id=%s error=%v", o.UserID, o.PlantID, err)
			return nil, err
		}
		out = append(out, row)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: inserted batch count=%d user_id=%s", len(out), orders[0].UserID)
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, userID)
}

func (r *postgresRepo) ListByNursery(ctx context.Context, nurseryID string) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE nursery_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, q, nurseryID)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $1
WHERE id = $2
RETURNING ` + orderColumns
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, status, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return nil, err
	}
	r.logger.Printf("order repo: status id=%s -> %s", id, status)
	return &o, nil
}

func (r *postgresRepo) list(ctx context.Context, q string, arg string) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, arg)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func scanOrder(row pgx.Row, o *domain.Order) error {
	var item, addr []byte
	var nurseryID *string
	err := row.Scan(
		&o.ID, &o.UserID, &nurseryID, &o.PlantID, &o.Quantity, &o.UnitPriceCents,
		&o.TotalCents, &o.Status, &o.PaymentStatus, &o.PaymentRef, &item, &addr, &o.CreatedAt,
	)
	if err != nil {
		return err
	}
	o.NurseryID = nurseryID
	if len(item) > 0 {
		if err := json.Unmarshal(item, &o.Item); err != nil {
			return err
		}
	}
	if len(addr) > 0 {
		if err := json.Unmarshal(addr, &o.Address); err != nil {
			return err
		}
	}
	return nil
}
