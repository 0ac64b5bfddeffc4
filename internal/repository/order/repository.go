package order

import (
	"context"

	"plantstore/internal/domain"
)

// Repository persists and fetches orders. InsertBatch writes all rows of
// one checkout in a single transaction so a partial checkout never lands.
type Repository interface {
	InsertBatch(ctx context.Context, orders []domain.Order) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListByNursery(ctx context.Context, nurseryID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}
