package core

import "context"

// Record names used by the store. A BlobStore only ever sees these two.
const (
	RecordNotes        = "notes"
	RecordProductivity = "productivityData"
)

// BlobStore defines the contract for persisting named opaque records.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem, memory, remote KV).
type BlobStore interface {
	// Load retrieves a record by name. Returns ErrNoRecord if absent.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save persists a record, replacing any previous value atomically.
	Save(ctx context.Context, name string, data []byte) error

	// Initialize ensures the underlying storage is ready (e.g. create directories).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for blob stores that can observe external
// changes to their records (e.g. another process syncing the files).
type Watchable interface {
	// Watch emits an event whenever a record matching pattern changes on disk.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
