package domain

import "sync"

// Line is one (product, quantity) pair in the shopping cart. Quantity is
// always at least 1; a line whose quantity would reach 0 is removed.
type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Store is an explicitly owned cart state container. One store serves one
// client session; callers inject it where needed rather than reaching for a
// global. None of its operations can fail.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{}
}

// AddOne increments the quantity for the product, inserting a new line with
// quantity 1 if the product is not yet in the cart. There is no upper bound.
func (s *Store) AddOne(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, Line{ProductID: productID, Quantity: 1})
}

// RemoveOne decrements the quantity for the product, deleting the line when
// it reaches 0. Removing a product that is not in the cart is a no-op.
func (s *Store) RemoveOne(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID != productID {
			continue
		}
		if s.lines[i].Quantity > 1 {
			s.lines[i].Quantity--
		} else {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		}
		return
	}
}

// Clear empties the cart. Called automatically after a confirmed order.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Lines returns a copy of the current cart lines.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Quantity returns the quantity for the product, 0 if absent.
func (s *Store) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.lines {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}
