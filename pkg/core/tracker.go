package core

import (
	"log/slog"
	"time"
)

// Tracker owns the per-weekday productivity counters (0=Sunday..6=Saturday).
// Counters move exactly once per lifecycle event: +1 on create, +1 on
// completion, -1 when a completion is undone. They never go negative; an
// attempted underflow is clamped and logged instead of silently wrapping.
//
// The Tracker is not safe for concurrent use on its own; the owning Store
// serializes access.
type Tracker struct {
	created   [7]int
	completed [7]int
	logger    *slog.Logger
}

// NewTracker creates a tracker with all counters at zero.
func NewTracker(logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tracker{logger: logger}
}

// Restore replaces the counters with a persisted snapshot.
// Negative values in a tampered record are clamped to zero.
func (t *Tracker) Restore(created, completed [7]int) {
	for i := range created {
		if created[i] < 0 {
			created[i] = 0
		}
		if completed[i] < 0 {
			completed[i] = 0
		}
	}
	t.created = created
	t.completed = completed
}

// RecordCreated counts a note created on the given weekday.
func (t *Tracker) RecordCreated(day time.Weekday) {
	t.created[day]++
}

// RecordCompleted counts a note completed on the given weekday.
func (t *Tracker) RecordCompleted(day time.Weekday) {
	t.completed[day]++
}

// UndoCompleted reverses a completion recorded on the given weekday.
func (t *Tracker) UndoCompleted(day time.Weekday) {
	if t.completed[day] == 0 {
		t.logger.Debug("completion undo on empty bucket ignored", "day", day)
		return
	}
	t.completed[day]--
}

// Snapshot returns copies of the two 7-element counters, keyed Sun..Sat.
// This is the exact shape chart rendering is fed with.
func (t *Tracker) Snapshot() (created, completed [7]int) {
	return t.created, t.completed
}
