package tend

import (
	"log/slog"
	"time"

	"github.com/aretw0/tend/internal/platform"
	"github.com/aretw0/tend/pkg/core"
)

// --- Types ---

// Note is a public alias for the domain entity.
type Note = core.Note

// Priority, Status and Filter are the domain enums.
type (
	Priority = core.Priority
	Status   = core.Status
	Filter   = core.Filter
)

// Event is a public alias for the store event type.
type Event = core.Event

// Board and Page are the kanban and progressive-reveal projections.
type (
	Board = core.Board
	Page  = core.Page
)

// --- Configuration ---

// Option defines a functional option for configuring tend.
type Option = platform.Option

// WithLogger sets the logger for the store and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithBlobStore allows injecting a custom persistence adapter.
func WithBlobStore(blobs core.BlobStore) Option {
	return platform.WithBlobStore(blobs)
}

// WithClock overrides the time source (deterministic tests, replays).
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// WithFormat selects the record serialization format ("json" or "yaml").
func WithFormat(format string) Option {
	return platform.WithFormat(format)
}

// WithEventBuffer sets the size of the event stream buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithAutoInit creates the vault directory if it does not exist.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the vault into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// --- Factory ---

// New creates a loaded note store for the vault at path.
func New(path string, opts ...Option) (*core.Store, error) {
	return platform.New(path, opts...)
}

// --- Safety & Utils ---

// ResolveVaultPath determines the actual path for the vault based on safety rules.
func ResolveVaultPath(userPath string, forceTemp bool) string {
	return platform.ResolveVaultPath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindVaultRoot recursively looks upwards for a vault root indicator.
func FindVaultRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
