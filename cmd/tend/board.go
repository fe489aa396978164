package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tend/pkg/core"
)

var boardFilter string

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the kanban board (todo / in-progress / done)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg := openStore(false)

		filterValue := boardFilter
		if filterValue == "" {
			filterValue = cfg.DefaultFilter
		}
		filter, err := core.ParseFilter(filterValue)
		if err != nil {
			fatal("Bad filter", err)
		}

		board := core.KanbanView(store.List(filter))
		printColumn("TODO", board.Todo)
		printColumn("IN PROGRESS", board.InProgress)
		printColumn("DONE", board.Done)
	},
}

func printColumn(title string, notes []*core.Note) {
	fmt.Printf("── %s (%d)\n", title, len(notes))
	for _, n := range notes {
		printNoteLine(n)
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(boardCmd)
	boardCmd.Flags().StringVarP(&boardFilter, "filter", "f", "", "Filter: all, active, completed or important")
}
