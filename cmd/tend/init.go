package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new vault in the current (or --vault) directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, _ := openStore(true)
		fmt.Printf("Vault ready (%d notes).\n", store.Len())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
