// Package tend is the composition root for the tend task-tracking core.
//
// It connects the domain layer (note store, annotation parser, productivity
// tracker, view projections) with the persistence adapters.
//
// Philosophy:
//
// tend is a headless task tracker. The core owns a mutable, ordered
// collection of notes, derives urgency and due dates from free-form text,
// tracks a per-note workflow status and aggregates per-weekday productivity
// counters. Presentation layers (a list view, a kanban board, a chart, a
// timer widget) observe the core through projections and the event stream;
// they never mutate state directly.
//
// Features:
//
//   - **Annotation parsing**: "#important", "#high", "!" and simple due-date
//     keywords ("tomorrow at 5pm") become structured note attributes.
//   - **Ordered store**: reordering survives filtering; hidden notes are
//     never lost by a partial reorder.
//   - **Productivity tracking**: per-weekday created/completed counters that
//     stay consistent under completion undo.
//   - **Pluggable persistence**: two opaque records behind core.BlobStore;
//     filesystem and in-memory adapters ship in pkg/adapters.
//   - **Event stream**: buffered, so mutations never block on observers.
//
// Usage:
//
//	store, err := tend.New("./vault",
//		tend.WithAutoInit(true),
//		tend.WithLogger(logger),
//	)
//
//	note, err := store.Create(ctx, "buy milk tomorrow at 5pm #high")
package tend
