package core

// Projections consumed by presentation layers. All of them are read-only
// derivations: the store's ordering is authoritative and nothing here
// re-sorts or mutates it.

// DefaultPageSize is the number of notes shown before progressive reveal.
const DefaultPageSize = 5

// Board is the three-column kanban partition of a listing.
// Store order is preserved within each column.
type Board struct {
	Todo       []*Note
	InProgress []*Note
	Done       []*Note
}

// Page is the progressive-reveal projection of a flat listing: a bounded
// visible prefix plus the remainder behind an expand action.
type Page struct {
	Visible   []*Note
	Remaining []*Note
}

// FlatView returns the listing unchanged. It exists to make the projection
// explicit at call sites; the ordering comes straight from the store.
func FlatView(notes []*Note) []*Note {
	return notes
}

// KanbanView partitions a listing by workflow status.
func KanbanView(notes []*Note) Board {
	var b Board
	for _, n := range notes {
		switch n.Status {
		case StatusInProgress:
			b.InProgress = append(b.InProgress, n)
		case StatusDone:
			b.Done = append(b.Done, n)
		default:
			b.Todo = append(b.Todo, n)
		}
	}
	return b
}

// Paginate splits a listing into a visible prefix and the rest.
// A non-positive pageSize falls back to DefaultPageSize.
func Paginate(notes []*Note, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if len(notes) <= pageSize {
		return Page{Visible: notes}
	}
	return Page{Visible: notes[:pageSize], Remaining: notes[pageSize:]}
}
