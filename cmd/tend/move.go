package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tend/pkg/core"
)

var moveCmd = &cobra.Command{
	Use:   "move <id> <todo|in-progress|done>",
	Short: "Move a task to another kanban column",
	Long: `Move a task between kanban columns. The column is independent of the
completed checkbox: a task can sit in "done" and still be unchecked.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore(false)

		id := parseID(args[0])
		status, err := core.ParseStatus(args[1])
		if err != nil {
			fatal("Bad status", err)
		}

		if err := store.ChangeStatus(context.Background(), id, status); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				fmt.Printf("No task with id %d.\n", id)
				return
			}
			fatal("Failed to move task", err)
		}
		fmt.Printf("Moved #%d to %s.\n", id, status)
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
}
