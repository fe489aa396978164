package core

import "fmt"

// EventType represents the type of change in the collection.
type EventType string

const (
	EventCreated       EventType = "CREATED"
	EventUpdated       EventType = "UPDATED"
	EventDeleted       EventType = "DELETED"
	EventCompleted     EventType = "COMPLETED"
	EventReopened      EventType = "REOPENED"
	EventStatusChanged EventType = "STATUS"
	EventReordered     EventType = "REORDERED"

	// EventCelebrate fires when an important note is completed.
	// It carries no payload beyond the note id; consumers decide what to do with it.
	EventCelebrate EventType = "CELEBRATE"

	// EventExternalChange is emitted by watchable blob stores when a record
	// changes outside the process.
	EventExternalChange EventType = "EXTERNAL"
)

// Event represents a change in the collection or its persisted records.
type Event struct {
	Type      EventType
	NoteID    int64  // zero for record-level events
	Record    string // set for EventExternalChange
	Timestamp int64  // Unix timestamp
}

func (e Event) String() string {
	if e.Record != "" {
		return fmt.Sprintf("%s %s", e.Type, e.Record)
	}
	return fmt.Sprintf("%s %d", e.Type, e.NoteID)
}
