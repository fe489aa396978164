package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/tend"
	"github.com/aretw0/tend/internal/platform"
	"github.com/aretw0/tend/pkg/core"
)

var (
	verbose   bool
	vaultPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tend",
	Short: "A personal task tracker that parses dates and priorities from plain text",
	Long: `tend keeps an ordered list of tasks in a local vault.
Inline annotations ("call bob tomorrow at 5pm #high !") become structured
due dates, priorities and importance; views, kanban status and per-weekday
productivity counters are derived from the same store.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", "", "Vault directory (default: discovered from the working directory)")
}

// resolveVault picks the vault directory: the --vault flag, a discovered
// root above the working directory, or the working directory itself.
func resolveVault() string {
	if vaultPath != "" {
		return vaultPath
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	if root, err := platform.FindRoot(wd); err == nil {
		return root
	}
	return wd
}

// openStore assembles the loaded store plus the vault configuration.
func openStore(autoInit bool) (*core.Store, platform.VaultConfig) {
	path := resolveVault()

	cfg, err := platform.LoadVaultConfig(path)
	if err != nil {
		fatal("Failed to read vault config", err)
	}

	store, err := tend.New(path,
		tend.WithLogger(slog.Default()),
		tend.WithFormat(cfg.Format),
		tend.WithAutoInit(autoInit),
	)
	if err != nil {
		fatal("Failed to open vault", err)
	}
	return store, cfg
}
