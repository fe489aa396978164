package tend_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/tend"
	"github.com/aretw0/tend/pkg/core"
)

// Example_basic demonstrates how to open a vault, add a task and list it back.
func Example_basic() {
	// Create a temporary directory for the example
	tmpDir, err := os.MkdirTemp("", "tend-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	// Open the note store targeting the temporary directory.
	store, err := tend.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// 1. Add a task. Inline annotations are parsed out of the text.
	note, err := store.Create(ctx, "water the plants #low")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Added: %s [%s]\n", note.Text, note.Priority)

	// 2. Complete it
	if _, err := store.ToggleCompletion(ctx, note.ID); err != nil {
		log.Fatal(err)
	}

	// 3. List what is done
	for _, n := range store.List(core.FilterCompleted) {
		fmt.Printf("Done: %s\n", n.Text)
	}
	// Output:
	// Added: water the plants [low]
	// Done: water the plants
}

// Example_annotations demonstrates the inline annotation heuristics.
func Example_annotations() {
	tmpDir, err := os.MkdirTemp("", "tend-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := tend.New(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	// "#important" marks the task and is stripped from the text;
	// "tomorrow" sets a due date and stays readable.
	note, err := store.Create(context.Background(), "#important call bob tomorrow")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Text: %s\n", note.Text)
	fmt.Printf("Important: %v\n", note.Important)
	fmt.Printf("Has due date: %v\n", note.DueDate != nil)
	// Output:
	// Text: call bob tomorrow
	// Important: true
	// Has due date: true
}
