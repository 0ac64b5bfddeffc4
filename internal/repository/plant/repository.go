package plant

import (
	"context"

	"plantstore/internal/domain"
)

// ListFilter narrows and pages a catalog listing. Zero values mean "no
// constraint"; Limit of zero falls back to the repository default.
type ListFilter struct {
	Search        string
	Type          string
	MinPriceCents *int64
	MaxPriceCents *int64
	InStock       *bool
	NurseryID     string
	Limit         int
	Offset        int
}

// Repository persists and fetches plants.
type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Plant, int, error)
	GetByID(ctx context.Context, id string) (*domain.Plant, error)
	Create(ctx context.Context, p domain.Plant) (*domain.Plant, error)
	Update(ctx context.Context, p domain.Plant) (*domain.Plant, error)
	Delete(ctx context.Context, nurseryID, id string) error
	Upsert(ctx context.Context, p domain.Plant) (*domain.Plant, error)
}
