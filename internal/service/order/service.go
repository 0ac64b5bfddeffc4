package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"plantstore/internal/domain"
	"plantstore/internal/realtime"
	orderrepo "plantstore/internal/repository/order"
)

// ErrInvalidTransition is returned when a status change is not allowed from
// the order's current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// changePublisher is the slice of the realtime hub the service needs.
type changePublisher interface {
	PublishOrderChange(ctx context.Context, typ realtime.EventType, o domain.Order) error
}

// Service reads and advances orders after checkout has created them.
type Service struct {
	repo   orderrepo.Repository
	events changePublisher
	logger *log.Logger
}

func New(repo orderrepo.Repository, events changePublisher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, events: events, logger: logger}
}

// ListForUser returns the user's orders, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListForNursery returns orders for the nursery's plants, newest first.
func (s *Service) ListForNursery(ctx context.Context, nurseryID string) ([]domain.Order, error) {
	return s.repo.ListByNursery(ctx, nurseryID)
}

// UpdateStatus moves a nursery's order along the fulfilment pipeline.
func (s *Service) UpdateStatus(ctx context.Context, nurseryID, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.NurseryID == nil || *o.NurseryID != nurseryID {
		return nil, domain.ErrNotFound
	}
	if !domain.CanTransition(o.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, *updated)
	return updated, nil
}

// Cancel lets the owning user cancel an order that has not shipped.
func (s *Service) Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if !domain.CanCancel(o.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, domain.StatusCancelled)
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, domain.StatusCancelled)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, *updated)
	return updated, nil
}

// publish fans the change out; a broken hub never fails the status update.
func (s *Service) publish(ctx context.Context, o domain.Order) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishOrderChange(ctx, realtime.EventUpdate, o); err != nil {
		s.logger.Printf("order: publish change order=%s error=%v", o.ID, err)
	}
}
