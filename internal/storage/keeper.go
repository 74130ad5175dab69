package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/memory-match/internal/memory"
)

// Keeper is the engine's view of a store. It retries a failed best-score
// write once and logs what still fails, so write errors never reach the
// game session.
type Keeper struct {
	store  memory.Scorekeeper
	logger *log.Logger
}

var _ memory.Scorekeeper = (*Keeper)(nil)

// NewKeeper wraps store. A nil logger discards.
func NewKeeper(store memory.Scorekeeper, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Keeper{store: store, logger: logger}
}

// BestScore reads through. Errors are logged and returned so the engine can
// fall back to what it already knows.
func (k *Keeper) BestScore(d memory.Difficulty) (memory.BestScore, bool, error) {
	b, ok, err := k.store.BestScore(d)
	if err != nil {
		k.logger.Warn("best score unavailable", "difficulty", d, "err", err)
	}
	return b, ok, err
}

// SetBestScore writes b, retrying once.
func (k *Keeper) SetBestScore(d memory.Difficulty, b memory.BestScore) error {
	err := k.store.SetBestScore(d, b)
	if err == nil {
		return nil
	}
	k.logger.Warn("retrying best score write", "difficulty", d, "err", err)
	if err := k.store.SetBestScore(d, b); err != nil {
		k.logger.Error("best score not saved", "difficulty", d, "seconds", b.Seconds, "moves", b.Moves, "err", err)
	}
	return nil
}

// AppendScoreEntry writes e and logs a failure.
func (k *Keeper) AppendScoreEntry(e memory.ScoreEntry) error {
	if err := k.store.AppendScoreEntry(e); err != nil {
		k.logger.Error("score entry not saved", "id", e.ID, "mode", e.Mode, "err", err)
	}
	return nil
}
