package address

import (
	"context"

	"plantstore/internal/domain"
)

// Repository persists and fetches a user's saved addresses.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Address, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Address, error)
	Default(ctx context.Context, userID string) (*domain.Address, error)
	Create(ctx context.Context, a domain.Address) (*domain.Address, error)
	Update(ctx context.Context, a domain.Address) (*domain.Address, error)
	Delete(ctx context.Context, userID, id string) error
}
