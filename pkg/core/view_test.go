package core

import (
	"fmt"
	"testing"
)

func makeNotes(statuses ...Status) []*Note {
	notes := make([]*Note, len(statuses))
	for i, st := range statuses {
		notes[i] = &Note{ID: int64(i + 1), Text: fmt.Sprintf("note %d", i+1), Status: st}
	}
	return notes
}

func idsOf(notes []*Note) []int64 {
	ids := make([]int64, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}

func equalIDs(a []int64, b ...int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestKanbanView(t *testing.T) {
	notes := makeNotes(StatusTodo, StatusDone, StatusInProgress, StatusTodo, StatusDone)

	b := KanbanView(notes)

	if got := idsOf(b.Todo); !equalIDs(got, 1, 4) {
		t.Errorf("Todo = %v, want [1 4]", got)
	}
	if got := idsOf(b.InProgress); !equalIDs(got, 3) {
		t.Errorf("InProgress = %v, want [3]", got)
	}
	if got := idsOf(b.Done); !equalIDs(got, 2, 5) {
		t.Errorf("Done = %v, want [2 5]", got)
	}
}

func TestKanbanViewUnknownStatusLandsInTodo(t *testing.T) {
	notes := []*Note{{ID: 1, Status: Status("")}}

	b := KanbanView(notes)
	if len(b.Todo) != 1 {
		t.Errorf("Todo = %v, notes without a known status belong in todo", b.Todo)
	}
}

func TestPaginate(t *testing.T) {
	notes := makeNotes(StatusTodo, StatusTodo, StatusTodo, StatusTodo, StatusTodo, StatusTodo, StatusTodo)

	tests := []struct {
		name          string
		pageSize      int
		wantVisible   int
		wantRemaining int
	}{
		{"Default Size On Zero", 0, 5, 2},
		{"Default Size On Negative", -1, 5, 2},
		{"Explicit Size", 3, 3, 4},
		{"Everything Fits", 10, 7, 0},
		{"Exact Fit", 7, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(notes, tt.pageSize)
			if len(p.Visible) != tt.wantVisible {
				t.Errorf("Visible = %d notes, want %d", len(p.Visible), tt.wantVisible)
			}
			if len(p.Remaining) != tt.wantRemaining {
				t.Errorf("Remaining = %d notes, want %d", len(p.Remaining), tt.wantRemaining)
			}
		})
	}

	// The split is a prefix split, never a reshuffle.
	p := Paginate(notes, 2)
	if !equalIDs(idsOf(p.Visible), 1, 2) || !equalIDs(idsOf(p.Remaining), 3, 4, 5, 6, 7) {
		t.Errorf("Paginate split = %v | %v", idsOf(p.Visible), idsOf(p.Remaining))
	}
}

func TestFlatViewIsIdentity(t *testing.T) {
	notes := makeNotes(StatusTodo, StatusDone)
	got := FlatView(notes)
	if !equalIDs(idsOf(got), 1, 2) {
		t.Errorf("FlatView = %v, want [1 2]", idsOf(got))
	}
}
