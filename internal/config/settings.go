package config

// SettingsKey is the storage key the settings document is saved under.
const SettingsKey = "memoryGameSettings"

// Settings are the player preferences persisted between runs.
type Settings struct {
	SoundEnabled     bool   `json:"soundEnabled"`
	VibrationEnabled bool   `json:"vibrationEnabled"`
	Difficulty       string `json:"difficulty"`
}

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:     true,
		VibrationEnabled: true,
		Difficulty:       "medium",
	}
}

// WithDefaults fills fields a stored document left empty.
func (s Settings) WithDefaults() Settings {
	if s.Difficulty == "" {
		s.Difficulty = DefaultSettings().Difficulty
	}
	return s
}
