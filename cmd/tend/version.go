package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/tend"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tend",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tend version %s\n", strings.TrimSpace(tend.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
