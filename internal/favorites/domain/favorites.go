package domain

import (
	"context"
	"sync"

	"github.com/freshfarm/storefront/pkg/logger"
)

// Repository persists a favorite set as a single JSON-encoded array of
// product identifiers under one storage key.
type Repository interface {
	Load(ctx context.Context, key string) ([]string, error)
	Save(ctx context.Context, key string, ids []string) error
}

// Store maintains a set of favorited product identifiers for one session.
// Every mutation is written through to the repository; a write failure is
// logged and swallowed, the in-memory set remaining the source of truth for
// the rest of the session.
type Store struct {
	mu      sync.Mutex
	ids     []string
	members map[string]bool
	dirty   bool

	repo Repository
	key  string
}

// NewStore creates an empty favorites store persisting under the given key.
func NewStore(repo Repository, key string) *Store {
	return &Store{
		members: make(map[string]bool),
		repo:    repo,
		key:     key,
	}
}

// Load fetches the persisted set. Until it completes the store behaves as
// empty; a load failure leaves it empty. A toggle made before the load
// finishes wins over the persisted state.
func (s *Store) Load(ctx context.Context) {
	ids, err := s.repo.Load(ctx, s.key)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("key", s.key).Msg("Failed to load favorites, starting empty")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dirty {
		return
	}
	for _, id := range ids {
		if s.members[id] {
			continue
		}
		s.members[id] = true
		s.ids = append(s.ids, id)
	}
}

// Toggle adds the product if absent, removes it if present, and persists
// the resulting set.
func (s *Store) Toggle(ctx context.Context, productID string) {
	s.mu.Lock()
	s.dirty = true
	if s.members[productID] {
		delete(s.members, productID)
		for i, id := range s.ids {
			if id == productID {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
	} else {
		s.members[productID] = true
		s.ids = append(s.ids, productID)
	}
	snapshot := make([]string, len(s.ids))
	copy(snapshot, s.ids)
	s.mu.Unlock()

	if err := s.repo.Save(ctx, s.key, snapshot); err != nil {
		logger.Warn(ctx).Err(err).Str("key", s.key).Msg("Failed to persist favorites")
	}
}

// IsFavorite reports whether the product is favorited.
func (s *Store) IsFavorite(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members[productID]
}

// All returns the favorited product identifiers.
func (s *Store) All() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
