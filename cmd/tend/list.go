package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tend/pkg/core"
)

var (
	listFilter string
	listAll    bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in store order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg := openStore(false)

		filterValue := listFilter
		if filterValue == "" {
			filterValue = cfg.DefaultFilter
		}
		filter, err := core.ParseFilter(filterValue)
		if err != nil {
			fatal("Bad filter", err)
		}

		notes := core.FlatView(store.List(filter))
		if len(notes) == 0 {
			fmt.Println("No tasks found. Add one to get started!")
			return
		}

		page := core.Paginate(notes, cfg.PageSize)
		visible := page.Visible
		if listAll {
			visible = notes
		}

		for _, n := range visible {
			printNoteLine(n)
		}
		if !listAll && len(page.Remaining) > 0 {
			fmt.Printf("… %d more tasks (use --all to show)\n", len(page.Remaining))
		}
	},
}

func printNoteLine(n *core.Note) {
	check := " "
	if n.Completed {
		check = "x"
	}
	line := fmt.Sprintf("[%s] %d  %s", check, n.ID, n.Text)
	if n.Important {
		line += " (!)"
	}
	if n.Priority != core.PriorityNormal {
		line += fmt.Sprintf(" [%s]", n.Priority)
	}
	if n.DueDate != nil {
		line += fmt.Sprintf(" (due %s)", n.DueDate.Format("Mon Jan 2 15:04"))
	}
	fmt.Println(line)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "", "Filter: all, active, completed or important")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show every task instead of the first page")
}
