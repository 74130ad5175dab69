package memory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for a mode name that is not defined.
var ErrUnknownMode = errors.New("memory: unknown mode")

// Mode selects the turn and scoring rules of a session.
type Mode string

const (
	// ModeSolo is one player against the clock: no turns, one scorer.
	ModeSolo Mode = "solo"

	// ModeVsComputer pits player 1 against the computer as player 2.
	ModeVsComputer Mode = "vs-computer"

	// ModeTwoPlayer is local hot-seat play for two people.
	ModeTwoPlayer Mode = "two-player"
)

// Modes returns every mode in menu order.
func Modes() []Mode {
	return []Mode{ModeSolo, ModeVsComputer, ModeTwoPlayer}
}

// ParseMode parses a mode name. A few short aliases are accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solo", "single":
		return ModeSolo, nil
	case "vs-computer", "computer", "cpu", "vs-cpu":
		return ModeVsComputer, nil
	case "two-player", "multi", "2p", "pvp":
		return ModeTwoPlayer, nil
	}
	return "", fmt.Errorf("%w %q (want solo, vs-computer or two-player)", ErrUnknownMode, s)
}

// TurnBased reports whether a miss passes the turn to the other player.
func (m Mode) TurnBased() bool {
	return m == ModeVsComputer || m == ModeTwoPlayer
}

// HasComputer reports whether player 2 is the computer.
func (m Mode) HasComputer() bool {
	return m == ModeVsComputer
}

// SinglePlayer reports whether results go into the score history.
func (m Mode) SinglePlayer() bool {
	return m == ModeSolo || m == ModeVsComputer
}

// Title returns a display name.
func (m Mode) Title() string {
	switch m {
	case ModeSolo:
		return "Solo"
	case ModeVsComputer:
		return "vs Computer"
	case ModeTwoPlayer:
		return "Two Players"
	default:
		return "Unknown"
	}
}

// PlayerName returns how the mode refers to a player.
func (m Mode) PlayerName(p Player) string {
	switch {
	case m == ModeVsComputer && p == Player1:
		return "You"
	case m == ModeVsComputer && p == Player2:
		return "Computer"
	case p == Player2:
		return "Player 2"
	default:
		return "Player 1"
	}
}

// Player identifies whose turn it is. The zero value means nobody (a draw
// when returned by Winner).
type Player int

const (
	NoPlayer Player = 0
	Player1  Player = 1
	Player2  Player = 2
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) index() int {
	if p == Player2 {
		return 1
	}
	return 0
}
