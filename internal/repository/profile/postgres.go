package profile

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const profileColumns = `id::text, name, email, password_hash, phone, address, city, postal_code, role, created_at`

func (r *postgresRepo) Create(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	const q = `
INSERT INTO profiles (name, email, password_hash, phone, address, city, postal_code, role)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id::text, created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q,
		p.Name, p.Email, p.PasswordHash, p.Phone, p.Address, p.City, p.PostalCode, p.Role,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("profile repo: create email=%s error=%v", p.Email, err)
		return nil, err
	}
	r.logger.Printf("profile repo: created id=%s role=%s", out.ID, out.Role)
	return &out, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.fetch(ctx, "SELECT "+profileColumns+" FROM profiles WHERE email = $1", email)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.fetch(ctx, "SELECT "+profileColumns+" FROM profiles WHERE id = $1", id)
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	const q = `
UPDATE profiles
SET name = $1, phone = $2, address = $3, city = $4, postal_code = $5
WHERE id = $6
RETURNING ` + profileColumns
	return r.fetchRow(r.pool.QueryRow(ctx, q, p.Name, p.Phone, p.Address, p.City, p.PostalCode, p.ID))
}

func (r *postgresRepo) fetch(ctx context.Context, q string, args ...interface{}) (*domain.Profile, error) {
	return r.fetchRow(r.pool.QueryRow(ctx, q, args...))
}

func (r *postgresRepo) fetchRow(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.PasswordHash, &p.Phone,
		&p.Address, &p.City, &p.PostalCode, &p.Role, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("profile repo: fetch error=%v", err)
		return nil, err
	}
	return &p, nil
}
