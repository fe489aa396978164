package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Put the given tasks first, in the given order",
	Long: `Reorder the vault. The listed ids come first, in the given order;
every other task keeps its previous relative position, so tasks hidden by a
filter are never lost. Unknown ids are skipped.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore(false)

		ids := make([]int64, 0, len(args))
		for _, arg := range args {
			ids = append(ids, parseID(arg))
		}

		if err := store.Reorder(context.Background(), ids); err != nil {
			fatal("Failed to reorder", err)
		}
		fmt.Println("Reordered.")
	},
}

func init() {
	rootCmd.AddCommand(reorderCmd)
}
