package cart

import "sync"

// Store holds one cart per profile. Carts live only in process memory for
// the lifetime of the session; nothing here touches durable storage.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// AddLine adds a line to the profile's cart. Returns false when the plant
// was already present and the add was ignored.
func (s *Store) AddLine(profileID string, l Line) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(profileID).AddLine(l)
}

func (s *Store) Remove(profileID, plantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(profileID).Remove(plantID)
}

func (s *Store) SetQuantity(profileID, plantID string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(profileID).SetQuantity(plantID, qty)
}

func (s *Store) Clear(profileID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, profileID)
}

// Lines returns the profile's cart lines in insertion order.
func (s *Store) Lines(profileID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(profileID).Lines()
}

// GrandTotal sums the profile's cart.
func (s *Store) GrandTotal(profileID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(profileID).GrandTotal()
}

// Fingerprint digests the profile's cart contents.
func (s *Store) Fingerprint(profileID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(profileID).Fingerprint()
}

func (s *Store) cart(profileID string) *Cart {
	c, ok := s.carts[profileID]
	if !ok {
		c = &Cart{}
		s.carts[profileID] = c
	}
	return c
}
