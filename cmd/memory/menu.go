package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/platform/tui"
	"github.com/vovakirdan/memory-match/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start Memory Match in interactive menu mode.

Pick a mode, then a difficulty. After a board ends you return to the menu.
The scoreboard and settings screens are reachable from the menu too.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  B/Esc        - Back
  Q            - Quit

Examples:
  memory menu
  memory menu --db ./memory.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.SessionOptions{
		Config:  cfg,
		Runtime: runtimeConfig(cfg),
		Bell:    os.Stdout,
		Logger:  logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		opts.Store = store
		defer store.Close()
	}

	if err := tui.RunSession(opts); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
