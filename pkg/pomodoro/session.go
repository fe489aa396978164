// Package pomodoro models a countdown session optionally bound to a note.
// The session itself only consumes elapsed ticks; when it expires it invokes
// the completion callback for the bound note id. Display, sound and any other
// celebration are the caller's concern.
package pomodoro

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
)

// DefaultDuration is the classic pomodoro length.
const DefaultDuration = 25 * time.Minute

// Config holds the configuration for a Session.
type Config struct {
	Duration time.Duration // defaults to DefaultDuration
	NoteID   int64         // 0 means no bound note
	Logger   *slog.Logger

	// OnExpire runs once when the countdown reaches zero, with the bound
	// note id. It is not invoked for unbound sessions.
	OnExpire func(noteID int64)
}

// Session is a pausable countdown. Driven either by Run (wall-clock ticks
// under lifecycle supervision) or by calling Tick directly from an external
// tick source.
type Session struct {
	*worker.BaseWorker

	mu        sync.Mutex
	cfg       Config
	remaining time.Duration
	running   bool
	expired   bool
	cancel    context.CancelFunc
}

// NewSession creates a session with the full duration remaining, paused.
func NewSession(cfg Config) *Session {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		BaseWorker: worker.NewBaseWorker("pomodoro"),
		cfg:        cfg,
		remaining:  cfg.Duration,
	}
}

// Start launches the wall-clock tick loop and begins counting down.
func (s *Session) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := s.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("session already started (status: %s)", status)
	}

	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.SetStatus(worker.StatusRunning)
	return s.StartFunc(runCtx, s.run)
}

// Stop ends the session without completing the bound note.
func (s *Session) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.StopRequested = true
		s.cancel()
	}
	return s.BaseWorker.Stop(ctx)
}

func (s *Session) run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if s.Tick() {
				return nil
			}
		}
	}
}

// Tick consumes one elapsed second and reports whether the session has
// expired. Paused or already-expired sessions ignore ticks.
func (s *Session) Tick() bool {
	s.mu.Lock()
	if !s.running || s.expired {
		expired := s.expired
		s.mu.Unlock()
		return expired
	}

	s.remaining -= time.Second
	if s.remaining > 0 {
		s.mu.Unlock()
		return false
	}

	s.remaining = 0
	s.expired = true
	s.running = false
	onExpire := s.cfg.OnExpire
	noteID := s.cfg.NoteID
	s.mu.Unlock()

	s.cfg.Logger.Debug("pomodoro expired", "note", noteID)
	// Callback runs outside the lock: it usually re-enters the note store.
	if onExpire != nil && noteID != 0 {
		onExpire(noteID)
	}
	return true
}

// Toggle pauses or resumes the countdown and reports whether it is now running.
// An expired session stays stopped.
func (s *Session) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.expired {
		return false
	}
	s.running = !s.running
	return s.running
}

// Reset restores the full duration and pauses the countdown.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remaining = s.cfg.Duration
	s.running = false
	s.expired = false
}

// Remaining returns the time left on the countdown.
func (s *Session) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Expired reports whether the countdown has reached zero.
func (s *Session) Expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expired
}

// NoteID returns the bound note id, zero when unbound.
func (s *Session) NoteID() int64 {
	return s.cfg.NoteID
}

// Display formats the remaining time as MM:SS.
func (s *Session) Display() string {
	remaining := s.Remaining()
	minutes := int(remaining / time.Minute)
	seconds := int(remaining/time.Second) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
