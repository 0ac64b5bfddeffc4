package plant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"plantstore/internal/domain"
)

const defaultPageSize = 10

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

const plantColumns = `id::text, nursery_id::text, name, description, price_cents, stock, type, season, image_url, created_at`

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Plant, int, error) {
	where, args := buildWhere(f)

	countQuery := "SELECT COUNT(*) FROM plants" + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Printf("plant repo: count error=%v", err)
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	args = append(args, limit, f.Offset)
	listQuery := fmt.Sprintf(
		"SELECT %s FROM plants%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		plantColumns, where, len(args)-1, len(args),
	)

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		r.logger.Printf("plant repo: list error=%v", err)
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("plant repo: list rows error=%v", err)
		return nil, 0, err
	}
	r.logger.Printf("plant repo: list count=%d total=%d", len(result), total)
	return result, total, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Plant, error) {
	q := fmt.Sprintf("SELECT %s FROM plants WHERE id = $1", plantColumns)
	var p domain.Plant
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.NurseryID, &p.Name, &p.Description, &p.PriceCents,
		&p.Stock, &p.Type, &p.Season, &p.ImageURL, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("plant repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Plant) (*domain.Plant, error) {
	const q = `
INSERT INTO plants (nursery_id, name, description, price_cents, stock, type, season, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id::text, created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q,
		p.NurseryID, p.Name, p.Description, p.PriceCents, p.Stock, p.Type, p.Season, p.ImageURL,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("plant repo: create nursery_id=%s name=%q error=%v", p.NurseryID, p.Name, err)
		return nil, err
	}
	r.logger.Printf("plant repo: created id=%s nursery_id=%s", out.ID, out.NurseryID)
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Plant) (*domain.Plant, error) {
	const q = `
UPDATE plants
SET name = $1, description = $2, price_cents = $3, stock = $4, type = $5, season = $6, image_url = $7
WHERE id = $8 AND nursery_id = $9
RETURNING created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q,
		p.Name, p.Description, p.PriceCents, p.Stock, p.Type, p.Season, p.ImageURL, p.ID, p.NurseryID,
	).Scan(&out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("plant repo: update id=%s error=%v", p.ID, err)
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, nurseryID, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM plants WHERE id = $1 AND nursery_id = $2`, id, nurseryID)
	if err != nil {
		r.logger.Printf("plant repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert inserts or refreshes a plant by (nursery_id, name). Used by the
// catalog importer so repeated runs stay idempotent.
func (r *postgresRepo) Upsert(ctx context.Context, p domain.Plant) (*domain.Plant, error) {
	const q = `
INSERT INTO plants (nursery_id, name, description, price_cents, stock, type, season, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (nursery_id, name) DO UPDATE SET
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    stock = EXCLUDED.stock,
    type = EXCLUDED.type,
    season = EXCLUDED.season,
    image_url = EXCLUDED.image_url
RETURNING id::text, created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q,
		p.NurseryID, p.Name, p.Description, p.PriceCents, p.Stock, p.Type, p.Season, p.ImageURL,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Printf("plant repo: upsert nursery_id=%s name=%q error=%v", p.NurseryID, p.Name, err)
		return nil, err
	}
	return &out, nil
}

func buildWhere(f ListFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	add := func(clause string, arg interface{}) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if f.Search != "" {
		add("name ILIKE $%d", "%"+f.Search+"%")
	}
	if f.Type != "" {
		add("type = $%d", f.Type)
	}
	if f.MinPriceCents != nil {
		add("price_cents >= $%d", *f.MinPriceCents)
	}
	if f.MaxPriceCents != nil {
		add("price_cents <= $%d", *f.MaxPriceCents)
	}
	if f.InStock != nil {
		if *f.InStock {
			clauses = append(clauses, "stock > 0")
		} else {
			clauses = append(clauses, "stock = 0")
		}
	}
	if f.NurseryID != "" {
		add("nursery_id = $%d", f.NurseryID)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanPlant(rows pgx.Rows) (domain.Plant, error) {
	var p domain.Plant
	err := rows.Scan(
		&p.ID, &p.NurseryID, &p.Name, &p.Description, &p.PriceCents,
		&p.Stock, &p.Type, &p.Season, &p.ImageURL, &p.CreatedAt,
	)
	return p, err
}
