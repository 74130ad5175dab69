package memory

import (
	"fmt"
	"time"
)

// BestScore is the fastest completion for one difficulty.
type BestScore struct {
	Seconds int `json:"time"`
	Moves   int `json:"moves"`
}

// ScoreEntry is one completed single-player game.
type ScoreEntry struct {
	ID           string     `json:"id"`
	Mode         Mode       `json:"mode"`
	Difficulty   Difficulty `json:"difficulty"`
	Moves        int        `json:"moves"`
	Seconds      int        `json:"time"`
	Player1Score int        `json:"player1Score"`
	Player2Score int        `json:"player2Score"`
	Date         time.Time  `json:"date"`
}

// Scorekeeper persists results. Implementations deal with their own
// failures; the engine logs returned errors and carries on.
type Scorekeeper interface {
	BestScore(d Difficulty) (BestScore, bool, error)
	SetBestScore(d Difficulty, b BestScore) error
	AppendScoreEntry(e ScoreEntry) error
}

type nopKeeper struct{}

func (nopKeeper) BestScore(Difficulty) (BestScore, bool, error) { return BestScore{}, false, nil }
func (nopKeeper) SetBestScore(Difficulty, BestScore) error      { return nil }
func (nopKeeper) AppendScoreEntry(ScoreEntry) error             { return nil }

// FormatTime renders seconds as mm:ss.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatBest renders a best score for the leaderboard.
func FormatBest(b BestScore, ok bool) string {
	if !ok {
		return "No record yet"
	}
	return fmt.Sprintf("%s (%d moves)", FormatTime(b.Seconds), b.Moves)
}
