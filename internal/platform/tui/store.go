package tui

import (
	"github.com/vovakirdan/memory-match/internal/config"
	"github.com/vovakirdan/memory-match/internal/memory"
)

// ScoreStore is what the scoreboard reads.
type ScoreStore interface {
	BestScores() (map[memory.Difficulty]memory.BestScore, error)
	ScoreHistory(mode memory.Mode, limit int) ([]memory.ScoreEntry, error)
}

// SettingsStore loads and saves player settings.
type SettingsStore interface {
	Settings() (config.Settings, bool, error)
	SetSettings(s config.Settings) error
}

// Store is everything the session screens need from persistence.
// *storage.Store satisfies it.
type Store interface {
	memory.Scorekeeper
	ScoreStore
	SettingsStore
}

// preferences is the live settings shared by the screens of one session.
// The settings screen writes it; the feedback player reads it.
type preferences struct {
	current config.Settings
}

func loadPreferences(store SettingsStore) *preferences {
	p := &preferences{current: config.DefaultSettings()}
	if store == nil {
		return p
	}
	if s, ok, err := store.Settings(); err == nil && ok {
		p.current = s
	}
	return p
}

func (p *preferences) get() config.Settings {
	return p.current
}
