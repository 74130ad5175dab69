package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/memory"
	"github.com/vovakirdan/memory-match/internal/platform/tui"
	"github.com/vovakirdan/memory-match/internal/storage"
)

var (
	flagMode       string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one board",
	Long: `Deal a board and play it.

Without flags the mode comes from the config defaults and the difficulty
from your saved settings.

Controls:
  Arrows/hjkl/wasd - Move cursor
  Enter/Space      - Flip card
  P                - Pause
  R                - New board
  B/Esc, Q         - Quit

Examples:
  memory play
  memory play --mode solo --difficulty easy
  memory play --mode cpu --difficulty hard
  memory play --mode 2p`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: solo, vs-computer, two-player")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	settings := config.DefaultSettings()
	if store != nil {
		if s, _, sErr := store.Settings(); sErr == nil {
			settings = s
		}
	}

	mode, difficulty, err := resolveChoice(flagMode, flagDifficulty, cfg, settings)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return err
	}

	opts := tui.GameOptions{
		Mode:       mode,
		Difficulty: difficulty,
		Config:     cfg,
		Runtime:    runtimeConfig(cfg),
		Settings:   func() config.Settings { return settings },
		Bell:       os.Stdout,
		Logger:     logger,
		ExitOnBack: true,
	}
	if store != nil {
		opts.Keeper = storage.NewKeeper(store, logger)
	}

	runErr := tui.RunGame(opts)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// resolveChoice applies flags over config defaults and saved settings.
func resolveChoice(modeFlag, diffFlag string, cfg config.MemoryConfig, settings config.Settings) (memory.Mode, memory.Difficulty, error) {
	modeName := modeFlag
	if modeName == "" {
		modeName = cfg.Defaults.Mode
	}
	mode, err := memory.ParseMode(modeName)
	if err != nil {
		if modeFlag != "" {
			return "", "", err
		}
		mode = memory.ModeSolo
	}

	diffName := diffFlag
	if diffName == "" {
		diffName = settings.Difficulty
	}
	if diffName == "" {
		diffName = cfg.Defaults.Difficulty
	}
	difficulty, err := memory.ParseDifficulty(diffName)
	if err != nil {
		if diffFlag != "" {
			return "", "", err
		}
		difficulty = memory.DifficultyMedium
	}

	return mode, difficulty, nil
}
