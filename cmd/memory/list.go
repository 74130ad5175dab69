package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-match/internal/memory"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and difficulties",
	Long:  `Shows the game modes and the difficulty levels with their pair counts.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Modes:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-12s  %s\n", "ID", "Title")
	fmt.Fprintf(out, "  %-12s  %s\n", "--", "-----")
	for _, m := range memory.Modes() {
		fmt.Fprintf(out, "  %-12s  %s\n", m, m.Title())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Difficulties:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %-5s  %s\n", "ID", "Pairs", "Grid")
	fmt.Fprintf(out, "  %-8s  %-5s  %s\n", "--", "-----", "----")
	for _, d := range memory.Difficulties() {
		cols := d.Columns()
		rows := (d.PairCount()*2 + cols - 1) / cols
		fmt.Fprintf(out, "  %-8s  %-5d  %dx%d\n", d, d.PairCount(), cols, rows)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'memory play --mode <id> --difficulty <id>' to play.")
}
