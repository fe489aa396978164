package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/tend/pkg/annotate"
)

// DefaultEventBuffer is the size of the event stream buffer when none is configured.
const DefaultEventBuffer = 100

// Config holds the configuration for a Store.
type Config struct {
	Logger      *slog.Logger
	Clock       func() time.Time // defaults to time.Now
	EventBuffer int              // defaults to DefaultEventBuffer
	Codec       Codec            // defaults to JSON
}

// Store owns the ordered collection of notes and the productivity tracker.
// All operations are synchronous and atomic with respect to observers: the
// mutex makes every public operation non-reentrant and fully applied (note,
// counters and persistence together) before the next one runs.
type Store struct {
	mu      sync.RWMutex
	notes   []*Note
	tracker *Tracker
	blobs   BlobStore
	codec   Codec
	logger  *slog.Logger
	now     func() time.Time
	lastID  int64
	events  chan Event
}

// NewStore creates a Store backed by the given blob store.
// Call Load before use to hydrate persisted state.
func NewStore(blobs BlobStore, cfg Config) *Store {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = DefaultEventBuffer
	}
	if cfg.Codec == nil {
		cfg.Codec, _ = CodecByName("json")
	}

	return &Store{
		tracker: NewTracker(cfg.Logger),
		blobs:   blobs,
		codec:   cfg.Codec,
		logger:  cfg.Logger,
		now:     cfg.Clock,
		events:  make(chan Event, cfg.EventBuffer),
	}
}

// productivityRecord is the persisted shape of the tracker counters.
type productivityRecord struct {
	CompletedPerDay [7]int `json:"completedPerDay" yaml:"completedPerDay"`
	CreatedPerDay   [7]int `json:"createdPerDay" yaml:"createdPerDay"`
}

// Load hydrates notes and productivity counters from the blob store.
// Absent or unreadable records degrade to defaults; the system must remain
// usable with a cold or corrupt store, so Load only fails on nothing.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = nil
	if data, err := s.blobs.Load(ctx, RecordNotes); err != nil {
		if !errors.Is(err, ErrNoRecord) {
			s.logger.Warn("notes record unreadable, starting empty", "error", err)
		}
	} else if err := s.codec.Unmarshal(data, &s.notes); err != nil {
		s.logger.Warn("notes record corrupt, starting empty", "error", err)
		s.notes = nil
	}

	for _, n := range s.notes {
		if n.ID > s.lastID {
			s.lastID = n.ID
		}
	}

	var rec productivityRecord
	if data, err := s.blobs.Load(ctx, RecordProductivity); err != nil {
		if !errors.Is(err, ErrNoRecord) {
			s.logger.Warn("productivity record unreadable, starting at zero", "error", err)
		}
	} else if err := s.codec.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("productivity record corrupt, starting at zero", "error", err)
		rec = productivityRecord{}
	}
	s.tracker.Restore(rec.CreatedPerDay, rec.CompletedPerDay)

	s.logger.Debug("store loaded", "notes", len(s.notes))
	return nil
}

// Create parses raw text, allocates a new id and prepends the note.
func (s *Store) Create(ctx context.Context, raw string) (*Note, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	parsed := annotate.Parse(raw, now)

	priority, err := ParsePriority(parsed.Priority)
	if err != nil {
		// The parser only emits the four known values; treat anything else as a bug.
		return nil, err
	}

	n := &Note{
		ID:        s.nextID(now),
		Text:      parsed.Text,
		Important: parsed.Important,
		DueDate:   parsed.DueDate,
		Priority:  priority,
		Status:    StatusTodo,
		CreatedAt: now,
	}

	s.notes = append([]*Note{n}, s.notes...)
	s.tracker.RecordCreated(now.Weekday())

	if err := s.persist(ctx); err != nil {
		return n, err
	}

	s.emit(Event{Type: EventCreated, NoteID: n.ID, Timestamp: now.Unix()})
	return n, nil
}

// nextID allocates a creation-time surrogate key. A strictly-increasing guard
// prevents collisions when two notes are created within the same millisecond.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Delete removes the note if present; deleting an unknown id is a no-op.
// Productivity counters already recorded for the note are not reversed.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.emit(Event{Type: EventDeleted, NoteID: id, Timestamp: s.now().Unix()})
	return nil
}

// ToggleCompletion flips the completed flag of a note.
//
// Completing uses the current day for the counter increment; un-completing
// decrements the bucket of the day the note was originally completed on, so
// an undo after midnight still corrects the right bucket.
func (s *Store) ToggleCompletion(ctx context.Context, id int64) (*Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.find(id)
	if n == nil {
		return nil, fmt.Errorf("toggle %d: %w", id, ErrNotFound)
	}

	now := s.now()
	if !n.Completed {
		n.Completed = true
		completedAt := now
		n.CompletedAt = &completedAt
		s.tracker.RecordCompleted(now.Weekday())
	} else {
		previous := n.CompletedAt
		n.Completed = false
		n.CompletedAt = nil
		if previous != nil {
			s.tracker.UndoCompleted(previous.Weekday())
		}
	}

	if err := s.persist(ctx); err != nil {
		return n, err
	}

	if n.Completed {
		s.emit(Event{Type: EventCompleted, NoteID: n.ID, Timestamp: now.Unix()})
		if n.Important {
			s.emit(Event{Type: EventCelebrate, NoteID: n.ID, Timestamp: now.Unix()})
		}
	} else {
		s.emit(Event{Type: EventReopened, NoteID: n.ID, Timestamp: now.Unix()})
	}
	return n, nil
}

// Edit re-parses newText and overwrites the derived fields.
// Completed, status and createdAt are untouched; editing to the same text is a no-op.
func (s *Store) Edit(ctx context.Context, id int64, newText string) (*Note, error) {
	if strings.TrimSpace(newText) == "" {
		return nil, ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.find(id)
	if n == nil {
		return nil, fmt.Errorf("edit %d: %w", id, ErrNotFound)
	}

	if strings.TrimSpace(newText) == n.Text {
		return n, nil
	}

	now := s.now()
	parsed := annotate.Parse(newText, now)
	priority, err := ParsePriority(parsed.Priority)
	if err != nil {
		return nil, err
	}

	n.Text = parsed.Text
	n.Important = parsed.Important
	n.DueDate = parsed.DueDate
	n.Priority = priority

	if err := s.persist(ctx); err != nil {
		return n, err
	}

	s.emit(Event{Type: EventUpdated, NoteID: n.ID, Timestamp: now.Unix()})
	return n, nil
}

// ChangeStatus moves a note to another kanban column.
func (s *Store) ChangeStatus(ctx context.Context, id int64, status Status) error {
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.find(id)
	if n == nil {
		return fmt.Errorf("change status %d: %w", id, ErrNotFound)
	}

	n.Status = status

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.emit(Event{Type: EventStatusChanged, NoteID: n.ID, Timestamp: s.now().Unix()})
	return nil
}

// Reorder applies a desired prefix order, typically the visible subset after a
// drag gesture. Notes in ids come first, in the given order (unknown ids are
// skipped); all remaining notes follow, preserving their prior relative order,
// so notes hidden by the active filter are never lost or shuffled.
func (s *Store) Reorder(ctx context.Context, ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mentioned := make(map[int64]bool, len(ids))
	reordered := make([]*Note, 0, len(s.notes))

	for _, id := range ids {
		if n := s.find(id); n != nil && !mentioned[id] {
			mentioned[id] = true
			reordered = append(reordered, n)
		}
	}
	for _, n := range s.notes {
		if !mentioned[n.ID] {
			reordered = append(reordered, n)
		}
	}
	s.notes = reordered

	if err := s.persist(ctx); err != nil {
		return err
	}

	s.emit(Event{Type: EventReordered, Timestamp: s.now().Unix()})
	return nil
}

// List returns the ordered collection restricted by filter.
// Filtering never permutes relative order. The returned slice is fresh but
// shares note pointers; callers must treat notes as read-only.
func (s *Store) List(filter Filter) []*Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Note, 0, len(s.notes))
	for _, n := range s.notes {
		if n.matches(filter) {
			out = append(out, n)
		}
	}
	return out
}

// Get returns the note with the given id.
func (s *Store) Get(id int64) (*Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n := s.find(id); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("get %d: %w", id, ErrNotFound)
}

// Len reports the number of notes in the collection.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Counts returns the aggregate numbers for the header widgets.
func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c Counts
	c.Total = len(s.notes)
	for _, n := range s.notes {
		if n.Completed {
			c.Completed++
		}
		if n.Important {
			c.Important++
		}
	}
	return c
}

// Productivity returns the per-weekday created and completed counters.
func (s *Store) Productivity() (created, completed [7]int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Snapshot()
}

// Events exposes the store's event stream. The stream is buffered so that
// mutations never block on a slow consumer; when the buffer is full, events
// are dropped with a warning rather than stalling the caller.
func (s *Store) Events() <-chan Event {
	return s.events
}

func (s *Store) emit(e Event) {
	select {
	case s.events <- e:
	default:
		s.logger.Warn("event buffer full, dropping event", "type", e.Type, "note", e.NoteID)
	}
}

func (s *Store) find(id int64) *Note {
	for _, n := range s.notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func (s *Store) indexOf(id int64) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// persist writes both records. In-memory state is already consistent when
// this runs; a failed write is surfaced but does not roll anything back.
func (s *Store) persist(ctx context.Context) error {
	data, err := s.codec.Marshal(s.notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	if err := s.blobs.Save(ctx, RecordNotes, data); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}

	created, completed := s.tracker.Snapshot()
	data, err = s.codec.Marshal(productivityRecord{
		CompletedPerDay: completed,
		CreatedPerDay:   created,
	})
	if err != nil {
		return fmt.Errorf("failed to encode productivity data: %w", err)
	}
	if err := s.blobs.Save(ctx, RecordProductivity, data); err != nil {
		return fmt.Errorf("failed to save productivity data: %w", err)
	}
	return nil
}
