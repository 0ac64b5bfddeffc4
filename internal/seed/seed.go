package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
	"plantstore/internal/domain"
)

type plantSeed struct {
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	Type        string
	Season      string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	nurseryID, err := ensureNursery(ctx, pool, "Green Leaf Nursery", "nursery@example.com", "Nursery1demo")
	if err != nil {
		return fmt.Errorf("ensure nursery: %w", err)
	}

	plants := []plantSeed{
		{
			Name:        "Monstera Deliciosa",
			Description: "Split-leaf philodendron, thrives in bright indirect light",
			PriceCents:  450_00,
			Stock:       12,
			Type:        "indoor",
			Season:      "all",
		},
		{
			Name:        "Boston Fern",
			Description: "Lush hanging fern for shaded corners",
			PriceCents:  180_00,
			Stock:       20,
			Type:        "indoor",
			Season:      "monsoon",
		},
		{
			Name:        "Hybrid Tea Rose",
			Description: "Fragrant repeat-blooming rose for beds and borders",
			PriceCents:  250_00,
			Stock:       8,
			Type:        "outdoor",
			Season:      "winter",
		},
		{
			Name:        "Golden Barrel Cactus",
			Description: "Low-maintenance cactus, full sun",
			PriceCents:  90_00,
			Stock:       0,
			Type:        "succulent",
			Season:      "summer",
		},
	}

	for _, p := range plants {
		if err := upsertPlant(ctx, pool, nurseryID, p); err != nil {
			return fmt.Errorf("upsert plant %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureNursery(ctx context.Context, pool *pgxpool.Pool, name, email, password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	const q = `
INSERT INTO profiles (name, email, password_hash, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name, email, string(hashed), domain.RoleNursery).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertPlant(ctx context.Context, pool *pgxpool.Pool, nurseryID string, p plantSeed) error {
	const q = `
INSERT INTO plants (nursery_id, name, description, price_cents, stock, type, season)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (nursery_id, name) DO UPDATE
SET description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    stock = EXCLUDED.stock,
    type = EXCLUDED.type,
    season = EXCLUDED.season
`
	_, err := pool.Exec(ctx, q, nurseryID, p.Name, p.Description, p.PriceCents, p.Stock, p.Type, p.Season)
	if err != nil {
		return err
	}
	return nil
}
