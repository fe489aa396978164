package core

import (
	"fmt"
	"time"
)

// Priority of a note, derived from inline annotations at parse time.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ParsePriority validates a raw priority value at the boundary.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(s); p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// Status is the kanban workflow column of a note.
// It is independent of the Completed checkbox; the two are never synchronized.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// ParseStatus validates a raw status value at the boundary.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusTodo, StatusInProgress, StatusDone:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Filter restricts a listing of the ordered collection.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterImportant Filter = "important"
)

// ParseFilter validates a raw filter value at the boundary.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case FilterAll, FilterActive, FilterCompleted, FilterImportant:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Note is the central entity of the domain.
// Text never contains the annotation tokens that were stripped at parse time.
type Note struct {
	ID          int64      `json:"id" yaml:"id"`
	Text        string     `json:"text" yaml:"text"`
	Completed   bool       `json:"completed" yaml:"completed"`
	Important   bool       `json:"important" yaml:"important"`
	DueDate     *time.Time `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	Priority    Priority   `json:"priority" yaml:"priority"`
	Status      Status     `json:"status" yaml:"status"`
	CreatedAt   time.Time  `json:"createdAt" yaml:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty" yaml:"completedAt,omitempty"`
}

// Counts are the aggregate numbers shown in the header widgets.
type Counts struct {
	Total     int `json:"total" yaml:"total"`
	Completed int `json:"completed" yaml:"completed"`
	Important int `json:"important" yaml:"important"`
}

// matches reports whether the note passes the given filter.
func (n *Note) matches(f Filter) bool {
	switch f {
	case FilterActive:
		return !n.Completed
	case FilterCompleted:
		return n.Completed
	case FilterImportant:
		return n.Important
	default:
		return true
	}
}
