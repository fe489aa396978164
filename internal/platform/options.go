package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/tend/pkg/core"
)

// options holds the internal configuration for the tend factory.
type options struct {
	blobs       core.BlobStore
	logger      *slog.Logger
	clock       func() time.Time
	format      string
	eventBuffer int
	autoInit    bool
	mustExist   bool
	forceTemp   bool
}

// Option defines a functional option for configuring tend.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		format: "json",
	}
}

// WithLogger sets the logger for the store and its adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithBlobStore injects a custom persistence adapter (e.g. memory, mock).
// If provided, the default filesystem adapter is skipped.
func WithBlobStore(blobs core.BlobStore) Option {
	return func(o *options) {
		o.blobs = blobs
	}
}

// WithClock overrides the time source. Tests use this to pin "now".
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithFormat selects the record serialization format ("json" or "yaml").
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithEventBuffer sets the size of the event stream buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithAutoInit creates the vault directory if it does not exist.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithForceTemp forces the vault into a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}
