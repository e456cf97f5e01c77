package cart

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"

	"clothiq/internal/domain"
)

// ErrInvalidProduct is returned by Add for a product without a usable id or
// with a negative price.
var ErrInvalidProduct = errors.New("cart: product needs an id and a non-negative price")

// Store is the session cart. The zero value is an empty cart.
type Store struct {
	mu    sync.RWMutex
	items []domain.CartItem
	index map[domain.ProductID]int // position in items
}

// New returns an empty cart.
func New() *Store { return &Store{} }

// Add puts one unit of p in the cart. A new product gets a line with quantity
// 1 at the end; a known product has its quantity incremented in place and
// keeps the price it was first added with.
func (s *Store) Add(p domain.Product) error {
	if !p.ID.Valid() || p.Price.IsNegative() {
		return ErrInvalidProduct
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[p.ID]; ok {
		s.items[i].Quantity++
		return nil
	}
	if s.index == nil {
		s.index = make(map[domain.ProductID]int)
	}
	s.index[p.ID] = len(s.items)
	s.items = append(s.items, domain.CartItem{
		ID:        p.ID,
		Title:     p.Title,
		Thumbnail: p.Thumbnail,
		Price:     p.Price,
		Quantity:  1,
	})
	return nil
}

// Remove drops the line for id. Unknown ids are ignored.
func (s *Store) Remove(id domain.ProductID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].ID] = j
	}
}

// Items returns a copy of the lines in first-add order.
func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Item returns the line for id, if any.
func (s *Store) Item(id domain.ProductID) (domain.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.CartItem{}, false
	}
	return s.items[i], true
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Count returns the total number of units across all lines.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Total returns the exact sum of price × quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := decimal.Zero
	for _, it := range s.items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}

// TotalPrice returns Total formatted to two decimals, rounded half-up.
func (s *Store) TotalPrice() string {
	return domain.FormatAmount(s.Total())
}
