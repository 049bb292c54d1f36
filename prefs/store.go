// Package prefs is the persisted user-preference capability. It is a
// plain key-value surface consumed only by preference-menu operations,
// never by extraction or normalization.
package prefs

import (
	"context"
	"sync"
)

// Store reads and writes string preferences. Get returns ok=false when
// the key has never been set; callers supply their own defaults.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// MemoryStore keeps preferences in process memory. It is the default
// when no external store is configured, and the fixture store in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
