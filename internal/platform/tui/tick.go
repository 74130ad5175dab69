// Package tui provides the Bubble Tea front-end for the memory game: the
// board, menus, settings, scoreboard and the SSH server that hosts them.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives the engine clock of one board.
type TickMsg struct {
	Time  time.Time
	Board uint64 // Ticks for boards that were left are ignored
}

// boards numbers game boards so a stale tick loop dies with its board.
var boards atomic.Uint64

// tickInterval returns the frame interval for a tick rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 30
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, board uint64) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Board: board}
	})
}
