package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultMemoryConfig()) {
		t.Errorf("embedded YAML and DefaultMemoryConfig() differ:\n%+v\n%+v", cfg, DefaultMemoryConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.yaml")
	data := []byte("timing:\n  match_delay_ms: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Timing.MatchDelayMs != 250 {
		t.Errorf("MatchDelayMs = %d, expected 250", cfg.Timing.MatchDelayMs)
	}
	if cfg.Timing.ComputerDelayMs != 1000 {
		t.Errorf("ComputerDelayMs = %d, expected default 1000", cfg.Timing.ComputerDelayMs)
	}
	if len(cfg.Deck) != 18 {
		t.Errorf("Deck length = %d, expected default 18", len(cfg.Deck))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}

	small := filepath.Join(dir, "small.yaml")
	if err := os.WriteFile(small, []byte("deck:\n  - { key: cat, label: CAT }\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(small); err == nil {
		t.Error("Load() with a deck smaller than the hardest difficulty should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	// Nothing on disk: embedded default
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.MatchDelayMs != 1000 {
		t.Errorf("expected embedded default, got MatchDelayMs=%d", cfg.Timing.MatchDelayMs)
	}

	// Local ./configs file wins over the embedded default
	localDir := filepath.Join(work, "configs")
	if err := os.MkdirAll(localDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(localDir, ConfigFile), []byte("timing:\n  match_delay_ms: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Timing.MatchDelayMs != 300 {
		t.Errorf("expected local config, got MatchDelayMs=%d", cfg.Timing.MatchDelayMs)
	}

	// User config wins over the local file
	userPath := UserConfigPath(ConfigFile)
	if err := os.MkdirAll(filepath.Dir(userPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(userPath, []byte("timing:\n  match_delay_ms: 200\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Timing.MatchDelayMs != 200 {
		t.Errorf("expected user config, got MatchDelayMs=%d", cfg.Timing.MatchDelayMs)
	}

	// An invalid user config is skipped
	if err := os.WriteFile(userPath, []byte("timing:\n  match_delay_ms: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Timing.MatchDelayMs != 300 {
		t.Errorf("expected fallback to local config, got MatchDelayMs=%d", cfg.Timing.MatchDelayMs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MemoryConfig)
		wantErr string
	}{
		{
			name:   "default is valid",
			mutate: func(*MemoryConfig) {},
		},
		{
			name:    "zero match delay",
			mutate:  func(c *MemoryConfig) { c.Timing.MatchDelayMs = 0 },
			wantErr: "match_delay_ms",
		},
		{
			name:    "zero tick rate",
			mutate:  func(c *MemoryConfig) { c.Timing.TickRate = 0 },
			wantErr: "tick_rate",
		},
		{
			name:    "duplicate key",
			mutate:  func(c *MemoryConfig) { c.Deck[1].Key = c.Deck[0].Key },
			wantErr: "duplicate key",
		},
		{
			name:    "empty key",
			mutate:  func(c *MemoryConfig) { c.Deck[2].Key = "" },
			wantErr: "empty key",
		},
		{
			name:    "deck too small",
			mutate:  func(c *MemoryConfig) { c.Deck = c.Deck[:MaxPairs-1] },
			wantErr: "at least 15",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMemoryConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestDeckLookups(t *testing.T) {
	cfg := DefaultMemoryConfig()

	keys := cfg.Keys()
	if len(keys) != len(cfg.Deck) || keys[0] != "lion" {
		t.Errorf("Keys() = %v", keys)
	}
	if got := cfg.Labels()["owl"]; got != "OWL" {
		t.Errorf("Labels()[owl] = %q, expected OWL", got)
	}
	if got := cfg.Timing.MatchDelay().Milliseconds(); got != 1000 {
		t.Errorf("MatchDelay() = %dms, expected 1000ms", got)
	}
}

func TestSettingsWithDefaults(t *testing.T) {
	s := Settings{SoundEnabled: false}.WithDefaults()
	if s.Difficulty != "medium" {
		t.Errorf("Difficulty = %q, expected medium", s.Difficulty)
	}
	if s.SoundEnabled {
		t.Error("WithDefaults must not override explicit booleans")
	}
}
