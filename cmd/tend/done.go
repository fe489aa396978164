package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/tend/pkg/core"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle a task's completed checkbox",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore(false)

		id := parseID(args[0])
		note, err := store.ToggleCompletion(context.Background(), id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				fmt.Printf("No task with id %d.\n", id)
				return
			}
			fatal("Failed to toggle task", err)
		}

		if note.Completed {
			fmt.Printf("Completed #%d: %s\n", note.ID, note.Text)
			if note.Important {
				// The celebration signal; richer frontends throw confetti here.
				fmt.Println("Important task done, nice work! 🎉")
			}
		} else {
			fmt.Printf("Reopened #%d: %s\n", note.ID, note.Text)
		}
	},
}

func parseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fatal("Bad task id", err)
	}
	return id
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
