package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/memory"
	"github.com/vovakirdan/memory-match/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresLimit int
	flagScoresClear bool
	flagScoresTop   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best times and recent games",
	Long: `Display the best time per difficulty, per-mode statistics and the
most recent games.

Examples:
  memory scores
  memory scores --mode vs-computer --limit 20
  memory scores --top hard
  memory scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "", "Only show history for this mode")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of recent games to show")
	scoresCmd.Flags().StringVar(&flagScoresTop, "top", "", "Show the fastest games for one difficulty")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all best times and history (settings are kept)")
}

func runScores(cmd *cobra.Command, _ []string) error {
	var mode memory.Mode
	if flagScoresMode != "" {
		m, err := memory.ParseMode(flagScoresMode)
		if err != nil {
			return err
		}
		mode = m
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	if flagScoresTop != "" {
		d, err := memory.ParseDifficulty(flagScoresTop)
		if err != nil {
			return err
		}
		top, err := store.TopTimes(d, flagScoresLimit)
		if err != nil {
			return fmt.Errorf("error retrieving top times: %w", err)
		}
		fmt.Fprintf(out, "Fastest games - %s\n\n", d.Title())
		if len(top) == 0 {
			fmt.Fprintln(out, "No games recorded yet.")
			return nil
		}
		fmt.Fprintf(out, "  %-4s  %-12s  %-5s  %-5s  %s\n", "Rank", "Mode", "Time", "Moves", "Date")
		fmt.Fprintf(out, "  %-4s  %-12s  %-5s  %-5s  %s\n", "----", "----", "----", "-----", "----")
		for i, e := range top {
			fmt.Fprintf(out, "  %-4d  %-12s  %-5s  %-5d  %s\n",
				i+1, e.Mode.Title(), memory.FormatTime(e.Seconds), e.Moves, e.Date.Local().Format("2006-01-02 15:04"))
		}
		return nil
	}

	best, err := store.BestScores()
	if err != nil {
		return fmt.Errorf("error retrieving best times: %w", err)
	}
	printBest(out, best)

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}
	if len(stats) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Statistics")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %-12s  %-5s  %-6s  %-8s  %s\n", "Mode", "Games", "Best", "Avg", "Last played")
		fmt.Fprintf(out, "  %-12s  %-5s  %-6s  %-8s  %s\n", "----", "-----", "----", "---", "-----------")
		for _, m := range memory.Modes() {
			st, ok := stats[m]
			if !ok {
				continue
			}
			fmt.Fprintf(out, "  %-12s  %-5d  %-6s  %-8s  %s\n",
				m.Title(), st.Games, memory.FormatTime(st.BestSeconds),
				memory.FormatTime(int(st.AvgSeconds+0.5)), st.LastPlayed.Local().Format("2006-01-02 15:04"))
		}
	}

	entries, err := store.ScoreHistory(mode, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("error retrieving history: %w", err)
	}

	fmt.Fprintln(out)
	title := "Recent games"
	if mode != "" {
		title += " - " + mode.Title()
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(entries) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'memory play' to set the first time!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %-5s  %-7s  %s\n", "#", "Mode", "Level", "Time", "Moves", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %-5s  %-7s  %s\n", "-", "----", "-----", "----", "-----", "-----", "----")
	for i, e := range entries {
		score := "-"
		if e.Mode.TurnBased() {
			score = fmt.Sprintf("%d-%d", e.Player1Score, e.Player2Score)
		}
		fmt.Fprintf(out, "  %-4d  %-12s  %-6s  %-5s  %-5d  %-7s  %s\n",
			i+1, e.Mode.Title(), e.Difficulty.Title(), memory.FormatTime(e.Seconds), e.Moves, score,
			e.Date.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printBest(out io.Writer, best map[memory.Difficulty]memory.BestScore) {
	fmt.Fprintln(out, "Best Times")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %s\n", "Level", "Best")
	fmt.Fprintf(out, "  %-8s  %s\n", "-----", "----")
	for _, d := range memory.Difficulties() {
		b, ok := best[d]
		fmt.Fprintf(out, "  %-8s  %s\n", d.Title(), memory.FormatBest(b, ok))
	}
}
