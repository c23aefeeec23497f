package app

import (
	"sync"

	"github.com/kitchencraft/storefront/internal/cart/domain"
	"github.com/kitchencraft/storefront/pkg/money"
)

// Service holds the visitor's in-progress selection. The cart lives only
// for the session; it is never persisted. A mutex keeps every operation
// immediately visible to concurrent observers.
type Service struct {
	mu    sync.Mutex
	lines []domain.Line
}

func NewService() *Service {
	return &Service{}
}

// Add merges the product into an existing line or starts one at quantity 1.
// At most one line exists per product id.
func (s *Service) Add(ref domain.ProductRef) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == ref.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, domain.Line{
		ProductID: ref.ID,
		Name:      ref.Name,
		UnitPrice: ref.UnitPrice,
		Quantity:  1,
	})
}

// SetQuantity sets the line's quantity; zero or below removes the line.
func (s *Service) SetQuantity(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line unconditionally. Removing an absent line is a
// no-op.
func (s *Service) Remove(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

func (s *Service) removeLocked(productID int64) {
	kept := s.lines[:0]
	for _, l := range s.lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	s.lines = kept
}

// Clear empties the cart atomically.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (s *Service) Lines() []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total sums captured price times quantity over all lines.
func (s *Service) Total() money.Cents {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total money.Cents
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// Count sums the quantities over all lines.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}
