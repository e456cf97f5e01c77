package wishlist

import (
	"sync"

	"clothiq/internal/domain"
)

// Store is the session wishlist. The zero value is empty.
type Store struct {
	mu      sync.RWMutex
	entries []domain.Product
}

// New returns an empty wishlist.
func New() *Store { return &Store{} }

// Toggle removes p when a product with its id is present and stores the full
// record otherwise. Products without a valid id are ignored.
func (s *Store) Toggle(p domain.Product) {
	if !p.ID.Valid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == p.ID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
	s.entries = append(s.entries, p)
}

// IsFavorited reports whether a product with id is present.
func (s *Store) IsFavorited(id domain.ProductID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Products returns a copy of the stored records in the order they were added.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of favourited products.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
