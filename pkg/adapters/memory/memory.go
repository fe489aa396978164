// Package memory implements the blob store contract in process memory.
// It backs tests and ephemeral sessions where nothing should touch disk.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/tend/pkg/core"
)

// Store implements core.BlobStore with a map of record copies.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewStore creates an empty in-memory blob store.
func NewStore() *Store {
	return &Store{records: make(map[string][]byte)}
}

// Initialize implements core.BlobStore. Nothing to prepare.
func (s *Store) Initialize(ctx context.Context) error { return nil }

// Load retrieves a record copy, or core.ErrNoRecord.
func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.records[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, core.ErrNoRecord)
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save stores a copy of data under name.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.records[name] = stored
	return nil
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory"
}
