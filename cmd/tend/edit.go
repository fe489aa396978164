package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/tend/pkg/core"
)

var editCmd = &cobra.Command{
	Use:   "edit <id> <text>...",
	Short: "Replace a task's text; annotations are re-parsed",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore(false)

		id := parseID(args[0])
		note, err := store.Edit(context.Background(), id, strings.Join(args[1:], " "))
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				fmt.Printf("No task with id %d.\n", id)
				return
			}
			fatal("Failed to edit task", err)
		}

		fmt.Printf("Updated #%d: %s\n", note.ID, note.Text)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
