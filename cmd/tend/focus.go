package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/tend/pkg/pomodoro"
)

var focusMinutes int

var focusCmd = &cobra.Command{
	Use:   "focus <id>",
	Short: "Run a pomodoro for a task; completes it when the timer expires",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, cfg := openStore(false)

		id := parseID(args[0])
		note, err := store.Get(id)
		if err != nil {
			fmt.Printf("No task with id %d.\n", id)
			return
		}

		duration := cfg.PomodoroDuration()
		if focusMinutes > 0 {
			duration = time.Duration(focusMinutes) * time.Minute
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		expired := make(chan struct{})
		session := pomodoro.NewSession(pomodoro.Config{
			Duration: duration,
			NoteID:   id,
			OnExpire: func(noteID int64) {
				if _, err := store.ToggleCompletion(context.Background(), noteID); err != nil {
					fmt.Printf("\nTimer done, but completing the task failed: %v\n", err)
				}
				close(expired)
			},
		})

		fmt.Printf("Focusing on #%d: %s (%s)\n", note.ID, note.Text, session.Display())
		if err := session.Start(ctx); err != nil {
			fatal("Failed to start session", err)
		}

		display := time.NewTicker(time.Second)
		defer display.Stop()

		for {
			select {
			case <-ctx.Done():
				fmt.Println("\nSession abandoned; task left as is.")
				return
			case <-expired:
				fmt.Printf("\rTime is up. #%d marked completed.\n", id)
				return
			case <-display.C:
				fmt.Printf("\r%s ", session.Display())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().IntVarP(&focusMinutes, "minutes", "m", 0, "Session length in minutes (default from vault config)")
}
