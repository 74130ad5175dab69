package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/platform/httpapi"
	"github.com/vovakirdan/memory-match/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the JSON leaderboard API",
	Long: `Serve best times, history and settings as JSON.

Endpoints:
  GET /health
  GET /api/best
  GET /api/scores?mode=<mode>&limit=<n>
  GET /api/settings
  PUT /api/settings

Examples:
  memory api
  memory api --addr 127.0.0.1:9000 --db ./memory.db`,
	Args: cobra.NoArgs,
	RunE: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", ":8080", "HTTP listen address (default: $MEMORY_API_ADDR or :8080)")
}

func runAPI(cmd *cobra.Command, _ []string) error {
	addr := flagAPIAddr
	if !cmd.Flags().Changed("addr") {
		addr = envOr("MEMORY_API_ADDR", addr)
	}

	logger, err := newLogger(os.Stderr, "memory-api")
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return httpapi.New(store, logger).ListenAndServe(ctx, addr)
}
