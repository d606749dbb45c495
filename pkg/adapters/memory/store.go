// Package memory provides an in-process VarStore, mostly for tests and
// single-invocation runs.
package memory

import (
	"context"
	"sync"

	"github.com/parley-sh/parley/pkg/domain"
)

// Store implements ports.VarStore in memory. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	bags map[string]domain.VarBag
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		bags: make(map[string]domain.VarBag),
	}
}

// Save persists a copy of the bag so later mutations by the caller do not
// leak into the stored snapshot.
func (s *Store) Save(ctx context.Context, name string, bag domain.VarBag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bags[name] = bag.Clone()
	return nil
}

// Load returns a copy of the saved bag.
func (s *Store) Load(ctx context.Context, name string) (domain.VarBag, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bag, ok := s.bags[name]
	if !ok {
		return nil, domain.ErrBagNotFound
	}
	return bag.Clone(), nil
}

// Delete removes the saved bag.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bags, name)
	return nil
}
