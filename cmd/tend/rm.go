package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a task",
	Long: `Delete a task from the vault. Productivity counters already recorded
for the task are kept; deletion is not an undo.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore(false)

		id := parseID(args[0])
		if err := store.Delete(context.Background(), id); err != nil {
			fatal("Failed to delete task", err)
		}
		fmt.Printf("Deleted #%d (if it existed).\n", id)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
