package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Notes           int    `json:"notes"`
	Completed       int    `json:"completed"`
	Important       int    `json:"important"`
	EventBufferSize int    `json:"event_buffer_size"`
	BlobStoreType   string `json:"blob_store_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blobType := "unknown"
	if s.blobs != nil {
		blobType = "blobstore"
		if comp, ok := s.blobs.(introspection.Component); ok {
			blobType = comp.ComponentType()
		}
	}

	state := StoreState{
		Notes:           len(s.notes),
		EventBufferSize: cap(s.events),
		BlobStoreType:   blobType,
	}
	for _, n := range s.notes {
		if n.Completed {
			state.Completed++
		}
		if n.Important {
			state.Important++
		}
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
