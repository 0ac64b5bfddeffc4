package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"plantstore/internal/cart"
	"plantstore/internal/domain"
	"plantstore/internal/realtime"
	addressrepo "plantstore/internal/repository/address"
	orderrepo "plantstore/internal/repository/order"
	profilerepo "plantstore/internal/repository/profile"
)

// State is a checkout session's position in the payment flow. Success and
// Failed are terminal; a failed session leaves the cart intact for retry.
type State string

const (
	StateAwaitingPayment State = "awaiting_payment"
	StateSubmitting      State = "submitting"
	StateSuccess         State = "success"
	StateFailed          State = "failed"
)

var (
	// ErrEmptyCart is returned when checkout starts with nothing to buy.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrSessionNotFound covers unknown, expired, and foreign sessions.
	ErrSessionNotFound = errors.New("checkout session not found")
	// ErrSessionClosed is returned when confirming an already-terminal session.
	ErrSessionClosed = errors.New("checkout session already closed")
	// ErrCartChanged is returned when the cart was modified after payment began.
	ErrCartChanged = errors.New("cart changed since checkout began")
)

const sessionTTL = 30 * time.Minute

// Session is one in-flight checkout attempt.
type Session struct {
	ID          string         `json:"id"`
	ProfileID   string         `json:"-"`
	Address     domain.Address `json:"address"`
	AmountCents int64          `json:"amountCents"`
	IntentID    string         `json:"intentId"`
	State       State          `json:"state"`
	fingerprint string
	createdAt   time.Time
}

type paymentClient interface {
	CreateIntent(ctx context.Context, amountCents int64, currency, receipt string, notes map[string]string) (string, error)
	Verify(ctx context.Context, paymentRef string) error
}

type changePublisher interface {
	PublishOrderChange(ctx context.Context, typ realtime.EventType, o domain.Order) error
}

// Service walks a cart through payment and into order rows.
type Service struct {
	carts     *cart.Store
	addresses addressrepo.Repository
	profiles  profilerepo.Repository
	orders    orderrepo.Repository
	payments  paymentClient
	events    changePublisher
	logger    *log.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

func New(
	carts *cart.Store,
	addresses addressrepo.Repository,
	profiles profilerepo.Repository,
	orders orderrepo.Repository,
	payments paymentClient,
	events changePublisher,
	logger *log.Logger,
) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		carts:     carts,
		addresses: addresses,
		profiles:  profiles,
		orders:    orders,
		payments:  payments,
		events:    events,
		logger:    logger,
		sessions:  make(map[string]*Session),
	}
}

// Begin resolves a delivery address, creates a payment intent for the cart
// total, and parks the session until the payment callback confirms it.
func (s *Service) Begin(ctx context.Context, profileID, addressID string) (Session, error) {
	lines := s.carts.Lines(profileID)
	if len(lines) == 0 {
		return Session{}, ErrEmptyCart
	}

	addr, err := s.resolveAddress(ctx, profileID, addressID)
	if err != nil {
		return Session{}, err
	}

	amount := s.carts.GrandTotal(profileID)
	receipt := "rcpt_" + uuid.NewString()
	intentID, err := s.payments.CreateIntent(ctx, amount, "INR", receipt, map[string]string{
		"profileId": profileID,
	})
	if err != nil {
		return Session{}, err
	}

	sess := &Session{
		ID:          uuid.NewString(),
		ProfileID:   profileID,
		Address:     *addr,
		AmountCents: amount,
		IntentID:    intentID,
		State:       StateAwaitingPayment,
		fingerprint: s.carts.Fingerprint(profileID),
		createdAt:   time.Now(),
	}

	s.mu.Lock()
	s.expireLocked()
	s.sessions[sess.ID] = sess
	snapshot := *sess
	s.mu.Unlock()

	s.logger.Printf("checkout: begin session=%s profile=%s amount=%d lines=%d", snapshot.ID, profileID, amount, len(lines))
	return snapshot, nil
}

// Confirm completes a session after the payment widget reports a payment
// reference. On success the cart is cleared and one order row per cart line
// is written; on any failure the cart is left untouched. The returned Session
// is a snapshot; the live session stays private to the service.
func (s *Service) Confirm(ctx context.Context, profileID, sessionID, paymentRef string) (Session, error) {
	s.mu.Lock()
	s.expireLocked()
	sess, ok := s.sessions[sessionID]
	if !ok || sess.ProfileID != profileID {
		s.mu.Unlock()
		return Session{}, ErrSessionNotFound
	}
	if sess.State == StateSuccess || sess.State == StateFailed {
		s.mu.Unlock()
		return Session{}, ErrSessionClosed
	}
	if s.carts.Fingerprint(profileID) != sess.fingerprint {
		sess.State = StateFailed
		s.mu.Unlock()
		s.logger.Printf("checkout: stale cart session=%s profile=%s", sessionID, profileID)
		return Session{}, ErrCartChanged
	}
	sess.State = StateSubmitting
	s.mu.Unlock()

	if err := s.payments.Verify(ctx, paymentRef); err != nil {
		s.fail(sess)
		return Session{}, err
	}

	orders := buildOrders(profileID, paymentRef, sess.Address, s.carts.Lines(profileID))
	inserted, err := s.orders.InsertBatch(ctx, orders)
	if err != nil {
		s.fail(sess)
		return Session{}, fmt.Errorf("insert orders: %w", err)
	}

	s.carts.Clear(profileID)
	s.mu.Lock()
	sess.State = StateSuccess
	snapshot := *sess
	s.mu.Unlock()

	for _, o := range inserted {
		if s.events == nil {
			break
		}
		if err := s.events.PublishOrderChange(ctx, realtime.EventInsert, o); err != nil {
			s.logger.Printf("checkout: publish order=%s error=%v", o.ID, err)
		}
	}

	s.logger.Printf("checkout: success session=%s profile=%s orders=%d", sessionID, profileID, len(inserted))
	return snapshot, nil
}

// Get returns a snapshot of a caller's session, for polling its state.
func (s *Service) Get(profileID, sessionID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok || sess.ProfileID != profileID {
		return Session{}, ErrSessionNotFound
	}
	return *sess, nil
}

// resolveAddress picks the delivery address: explicit ID, then the saved
// default, then the profile's own address fields.
func (s *Service) resolveAddress(ctx context.Context, profileID, addressID string) (*domain.Address, error) {
	if addressID != "" {
		return s.addresses.GetByID(ctx, profileID, addressID)
	}

	addr, err := s.addresses.Default(ctx, profileID)
	if err == nil {
		return addr, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if !p.HasAddress() {
		return nil, domain.ErrNoAddressSelected
	}
	return &domain.Address{
		UserID:      profileID,
		Name:        p.Name,
		Phone:       p.Phone,
		AddressLine: p.Address,
		City:        p.City,
		PostalCode:  p.PostalCode,
	}, nil
}

func (s *Service) fail(sess *Session) {
	s.mu.Lock()
	sess.State = StateFailed
	s.mu.Unlock()
}

// expireLocked drops sessions past their TTL. Caller holds s.mu.
func (s *Service) expireLocked() {
	cutoff := time.Now().Add(-sessionTTL)
	for id, sess := range s.sessions {
		if sess.createdAt.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}

func buildOrders(profileID, paymentRef string, addr domain.Address, lines []cart.Line) []domain.Order {
	orders := make([]domain.Order, 0, len(lines))
	for _, l := range lines {
		var nurseryID *string
		if l.NurseryID != "" {
			n := l.NurseryID
			nurseryID = &n
		}
		orders = append(orders, domain.Order{
			UserID:         profileID,
			NurseryID:      nurseryID,
			PlantID:        l.PlantID,
			Quantity:       l.Quantity,
			UnitPriceCents: l.PriceCents,
			TotalCents:     cart.LineTotal(l),
			Status:         domain.StatusPlaced,
			PaymentStatus:  domain.PaymentPaid,
			PaymentRef:     paymentRef,
			Item: domain.OrderItem{
				PlantID:    l.PlantID,
				Name:       l.Name,
				PriceCents: l.PriceCents,
				Quantity:   l.Quantity,
				ImageURL:   l.ImageURL,
			},
			Address: addr,
		})
	}
	return orders
}
