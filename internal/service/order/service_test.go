package order

import (
	"context"
	"errors"
	"testing"

	"plantstore/internal/domain"
	"plantstore/internal/realtime"
)

type stubOrderRepo struct {
	orders map[string]*domain.Order
}

func newStubOrderRepo(orders ...domain.Order) *stubOrderRepo {
	r := &stubOrderRepo{orders: map[string]*domain.Order{}}
	for i := range orders {
		o := orders[i]
		r.orders[o.ID] = &o
	}
	return r
}

func (r *stubOrderRepo) InsertBatch(_ context.Context, orders []domain.Order) ([]domain.Order, error) {
	return orders, nil
}

func (r *stubOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) ListByNursery(_ context.Context, nurseryID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.NurseryID != nil && *o.NurseryID == nurseryID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	o.Status = status
	return o, nil
}

type stubPublisher struct {
	events []realtime.EventType
	orders []domain.Order
}

func (p *stubPublisher) PublishOrderChange(_ context.Context, typ realtime.EventType, o domain.Order) error {
	p.events = append(p.events, typ)
	p.orders = append(p.orders, o)
	return nil
}

func nurseryOrder(id, userID, nurseryID string, status domain.OrderStatus) domain.Order {
	n := nurseryID
	return domain.Order{ID: id, UserID: userID, NurseryID: &n, Status: status}
}

func TestUpdateStatus(t *testing.T) {
	repo := newStubOrderRepo(nurseryOrder("o1", "u1", "n1", domain.StatusPlaced))
	pub := &stubPublisher{}
	svc := New(repo, pub, nil)

	got, err := svc.UpdateStatus(context.Background(), "n1", "o1", domain.StatusShipped)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if got.Status != domain.StatusShipped {
		t.Fatalf("expected shipped, got %s", got.Status)
	}
	if len(pub.events) != 1 || pub.events[0] != realtime.EventUpdate {
		t.Fatalf("expected one UPDATE event, got %v", pub.events)
	}
}

func TestUpdateStatusRejectsBackwards(t *testing.T) {
	repo := newStubOrderRepo(nurseryOrder("o1", "u1", "n1", domain.StatusShipped))
	pub := &stubPublisher{}
	svc := New(repo, pub, nil)

	_, err := svc.UpdateStatus(context.Background(), "n1", "o1", domain.StatusConfirmed)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Fatalf("expected no events, got %v", pub.events)
	}
}

func TestUpdateStatusForeignNursery(t *testing.T) {
	repo := newStubOrderRepo(nurseryOrder("o1", "u1", "n1", domain.StatusPlaced))
	svc := New(repo, &stubPublisher{}, nil)

	if _, err := svc.UpdateStatus(context.Background(), "n2", "o1", domain.StatusShipped); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	repo := newStubOrderRepo(nurseryOrder("o1", "u1", "n1", domain.StatusConfirmed))
	pub := &stubPublisher{}
	svc := New(repo, pub, nil)

	got, err := svc.Cancel(context.Background(), "u1", "o1")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got.Status != domain.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}
	if len(pub.events) != 1 {
		t.Fatalf("expected one event, got %v", pub.events)
	}
}

func TestCancelRejectedOnceShipped(t *testing.T) {
	for _, status := range []domain.OrderStatus{domain.StatusShipped, domain.StatusDelivered, domain.StatusCancelled} {
		repo := newStubOrderRepo(nurseryOrder("o1", "u1", "n1", status))
		svc := New(repo, &stubPublisher{}, nil)
		if _, err := svc.Cancel(context.Background(), "u1", "o1"); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("status %s: expected ErrInvalidTransition, got %v", status, err)
		}
	}
}

func TestCancelForeignUser(t *testing.T) {
	repo := newStubOrderRepo(nurseryOrder("o1", "u1", "n1", domain.StatusPlaced))
	svc := New(repo, &stubPublisher{}, nil)

	if _, err := svc.Cancel(context.Background(), "u2", "o1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
