package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/tend/pkg/core"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a task; inline annotations become metadata",
	Long: `Add a task to the vault. The text is scanned for annotations:
"#important" or "!" mark it important, "#low/#normal/#high/#critical" set
the priority, and keywords like "tomorrow", "friday" or "next week"
(optionally with a time, "at 5pm") set a due date.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore(false)

		note, err := store.Create(context.Background(), strings.Join(args, " "))
		if err != nil {
			if errors.Is(err, core.ErrEmptyText) {
				fatal("Nothing to add", err)
			}
			fatal("Failed to add task", err)
		}

		fmt.Printf("Added #%d: %s\n", note.ID, note.Text)
		if note.DueDate != nil {
			fmt.Printf("  due %s\n", note.DueDate.Format(time.RFC1123))
		}
		if note.Priority != core.PriorityNormal {
			fmt.Printf("  priority %s\n", note.Priority)
		}
		if note.Important {
			fmt.Println("  marked important")
		}
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
