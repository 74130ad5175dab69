// memory is a terminal memory card game: flip two cards, find the pairs.
//
// Usage:
//
//	memory play                 - Play one board (mode/difficulty from flags or settings)
//	memory menu                 - Interactive menu with scoreboard and settings
//	memory scores               - Show best times and recent games
//	memory settings             - Show or change sound, vibration and difficulty
//	memory list                 - List game modes and difficulties
//	memory serve                - Start SSH server for remote play
//	memory api                  - Start the JSON leaderboard API
//
// Global flags:
//
//	--db <path>         - Database path (default: $MEMORY_DB or ~/.memory-match/memory.db)
//	--config <path>     - Game config YAML (default: $MEMORY_CONFIG or search path)
//	--seed <value>      - RNG seed for reproducible boards
//	--fps <rate>        - Tick rate override
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/core"
	"github.com/vovakirdan/memory-match/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", envOr("MEMORY_DB", storage.DefaultPath), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", os.Getenv("MEMORY_CONFIG"), "Path to custom game config YAML")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory Match - find the pairs in your terminal",
	Long: `Memory Match is a card matching game for the terminal.

Play alone against the clock, against a computer that remembers what it
has seen, or hot-seat with a friend. Best times are kept per difficulty.

Available commands:
  play      - Play one board directly
  menu      - Interactive menu
  scores    - Best times and recent games
  settings  - Sound, vibration and default difficulty
  list      - Game modes and difficulties
  serve     - Start SSH server for remote play
  api       - Start the JSON leaderboard API

Examples:
  memory play
  memory play --mode vs-computer --difficulty hard
  memory menu
  memory serve --ssh :2222
  memory api --addr :8080`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for terminal play (default: no logging)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newLogger builds the charm logger for a component.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// tuiLogger returns a logger that never writes to the terminal the game
// is drawn on. The returned close func is always safe to call.
func tuiLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "memory")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

func loadConfig() (config.MemoryConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.MemoryConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, nil
}

func runtimeConfig(cfg config.MemoryConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = cfg.Timing.TickRate
	rc.Seed = flagSeed
	return rc
}
