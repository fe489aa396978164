package core

import "errors"

// Common errors. Validation and not-found conditions are recoverable:
// callers treat them as no-ops, never as fatal failures.
var (
	ErrNotFound        = errors.New("note not found")
	ErrEmptyText       = errors.New("note text is empty")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidFilter   = errors.New("invalid filter")

	// ErrNoRecord is returned by a BlobStore when a named record does not exist.
	// The store treats it as "cold start" and falls back to defaults.
	ErrNoRecord = errors.New("record not found")
)
