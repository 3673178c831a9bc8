package store

import (
	"sync/atomic"

	"github.com/freshfarm/storefront/internal/catalog/domain"
)

// Store holds the current catalog snapshot. Readers always see a complete
// snapshot; Replace swaps it atomically.
type Store struct {
	current atomic.Pointer[domain.Snapshot]
}

// New creates a store holding an empty snapshot.
func New() *Store {
	s := &Store{}
	s.current.Store(domain.EmptySnapshot())
	return s
}

// Snapshot returns the current catalog snapshot.
func (s *Store) Snapshot() *domain.Snapshot {
	return s.current.Load()
}

// Replace installs a new snapshot.
func (s *Store) Replace(snap *domain.Snapshot) {
	if snap == nil {
		snap = domain.EmptySnapshot()
	}
	s.current.Store(snap)
}
