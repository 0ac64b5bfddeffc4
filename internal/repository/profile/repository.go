package profile

import (
	"context"

	"plantstore/internal/domain"
)

// Repository persists and fetches profiles.
type Repository interface {
	Create(ctx context.Context, p domain.Profile) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Update(ctx context.Context, p domain.Profile) (*domain.Profile, error)
}
