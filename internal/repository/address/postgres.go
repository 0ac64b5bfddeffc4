package address

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"plantstore/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const addressColumns = `id::text, user_id::text, name, phone, address_line, city, postal_code, is_default, created_at`

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	const q = `
SELECT ` + addressColumns + `
FROM addresses
WHERE user_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := scanAddress(rows, &a); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, userID, id string) (*domain.Address, error) {
	const q = `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1 AND user_id = $2`
	return r.fetch(ctx, q, id, userID)
}

// Default returns the address the user marked default, or ErrNotFound.
func (r *postgresRepo) Default(ctx context.Context, userID string) (*domain.Address, error) {
	const q = `
SELECT ` + addressColumns + `
FROM addresses
WHERE user_id = $1 AND is_default
ORDER BY created_at ASC
LIMIT 1
`
	return r.fetch(ctx, q, userID)
}

func (r *postgresRepo) Create(ctx context.Context, a domain.Address) (*domain.Address, error) {
	const q = `
INSERT INTO addresses (user_id, name, phone, address_line, city, postal_code, is_default)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id::text, created_at
`
	out := a
	err := r.pool.QueryRow(ctx, q,
		a.UserID, a.Name, a.Phone, a.AddressLine, a.City, a.PostalCode, a.IsDefault,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, a domain.Address) (*domain.Address, error) {
	const q = `
UPDATE addresses
SET name = $1, phone = $2, address_line = $3, city = $4, postal_code = $5, is_default = $6
WHERE id = $7 AND user_id = $8
RETURNING ` + addressColumns
	return r.fetch(ctx, q, a.Name, a.Phone, a.AddressLine, a.City, a.PostalCode, a.IsDefault, a.ID, a.UserID)
}

func (r *postgresRepo) Delete(ctx context.Context, userID, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) fetch(ctx context.Context, q string, args ...interface{}) (*domain.Address, error) {
	var a domain.Address
	if err := scanAddress(r.pool.QueryRow(ctx, q, args...), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func scanAddress(row pgx.Row, a *domain.Address) error {
	return row.Scan(
		&a.ID, &a.UserID, &a.Name, &a.Phone, &a.AddressLine,
		&a.City, &a.PostalCode, &a.IsDefault, &a.CreatedAt,
	)
}
