package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/memory-match/internal/config"
)

// Settings loads the saved player settings. ok is false when nothing has been
// saved yet, in which case the defaults are returned.
func (s *Store) Settings() (config.Settings, bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", config.SettingsKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return config.DefaultSettings(), false, nil
	}
	if err != nil {
		return config.DefaultSettings(), false, fmt.Errorf("storage: cannot query settings: %w", err)
	}

	var settings config.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return config.DefaultSettings(), false, fmt.Errorf("storage: cannot decode settings: %w", err)
	}
	return settings.WithDefaults(), true, nil
}

// SetSettings saves the player settings as one JSON document.
func (s *Store) SetSettings(settings config.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("storage: cannot encode settings: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		config.SettingsKey, string(raw),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}
