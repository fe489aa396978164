package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show totals and the per-weekday productivity counters",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore(false)

		counts := store.Counts()
		fmt.Printf("Tasks: %d total, %d completed, %d important\n\n",
			counts.Total, counts.Completed, counts.Important)

		created, completed := store.Productivity()
		days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

		fmt.Printf("%-10s", "")
		for _, d := range days {
			fmt.Printf("%5s", d)
		}
		fmt.Println()

		fmt.Printf("%-10s", "created")
		for _, v := range created {
			fmt.Printf("%5d", v)
		}
		fmt.Println()

		fmt.Printf("%-10s", "completed")
		for _, v := range completed {
			fmt.Printf("%5d", v)
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
