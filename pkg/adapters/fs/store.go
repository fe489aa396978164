// Package fs implements the blob store contract on the local filesystem:
// one file per record inside the vault directory, written atomically.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/tend/pkg/core"
)

// Config holds the configuration for the filesystem blob store.
type Config struct {
	Path      string
	Ext       string // record file extension, ".json" by default
	MustExist bool   // refuse to operate on a missing directory instead of creating it
	Logger    *slog.Logger
}

// Store implements core.BlobStore using one file per record.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// NewStore creates a filesystem-backed blob store. It does no I/O until
// Initialize or a record operation is called.
func NewStore(config Config) *Store {
	if config.Ext == "" {
		config.Ext = ".json"
	}
	if !strings.HasPrefix(config.Ext, ".") {
		config.Ext = "." + config.Ext
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		Path:   config.Path,
		config: config,
	}
}

// Initialize ensures the vault directory exists.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("vault path does not exist: %s", s.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("vault path is not a directory: %s", s.Path)
		}
		return nil
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create vault directory: %w", err)
	}
	return nil
}

// Load retrieves a record by name. Missing files map to core.ErrNoRecord so
// the caller can fall back to defaults.
func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(s.recordPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%q: %w", name, core.ErrNoRecord)
		}
		return nil, err
	}
	return data, nil
}

// Save persists a record atomically.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	path := s.recordPath(name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write record %q: %w", name, err)
	}
	s.config.Logger.Debug("record saved", "record", name, "bytes", len(data))
	return nil
}

func (s *Store) recordPath(name string) string {
	return filepath.Join(s.Path, name+s.config.Ext)
}

// recordName maps a file path back to a record name. The second return is
// false for files that are not records (temp files, other extensions).
func (s *Store) recordName(path string) (string, bool) {
	base := filepath.Base(path)
	if strings.HasPrefix(base, tempFilePrefix) {
		return "", false
	}
	if filepath.Ext(base) != s.config.Ext {
		return "", false
	}
	return strings.TrimSuffix(base, s.config.Ext), true
}

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}
