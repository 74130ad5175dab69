// Package memory implements the memory card game session engine: the board,
// flips, match evaluation, turns, scoring, the computer opponent and the
// session timer.
//
// The engine is single-threaded. Every mutation happens inside a direct call
// (StartGame, FlipCard, TogglePause, ResetGame, Abandon) or inside a
// continuation the engine scheduled for itself and runs from Advance. Callers
// must not use one Engine from more than one goroutine.
package memory

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned for a difficulty outside easy/medium/hard.
var ErrUnknownDifficulty = errors.New("memory: unknown difficulty")

// Difficulty fixes the number of pairs on the board.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns every difficulty from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty parses a difficulty name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w %q (want easy, medium or hard)", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Valid reports whether d is one of the defined levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// PairCount returns the number of pairs dealt for the difficulty.
func (d Difficulty) PairCount() int {
	switch d {
	case DifficultyEasy:
		return 6
	case DifficultyMedium:
		return 10
	case DifficultyHard:
		return 15
	default:
		return 0
	}
}

// Columns returns the board width used when laying out the cards.
func (d Difficulty) Columns() int {
	switch d {
	case DifficultyEasy:
		return 4
	case DifficultyMedium:
		return 5
	default:
		return 6
	}
}

// Title returns a display name.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Next cycles to the following difficulty, wrapping around after hard.
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}
