// Package config provides YAML-based configuration for the memory game and
// the player settings that are persisted between runs.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MaxPairs is the pair count of the hardest difficulty; a deck must hold at
// least this many distinct faces.
const MaxPairs = 15

// MemoryConfig contains all configuration for the memory game.
type MemoryConfig struct {
	Timing   TimingConfig   `yaml:"timing"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Deck     []DeckEntry    `yaml:"deck"`
}

// TimingConfig defines the delays of scheduled continuations.
type TimingConfig struct {
	MatchDelayMs    int `yaml:"match_delay_ms"`
	ComputerDelayMs int `yaml:"computer_delay_ms"`
	TickRate        int `yaml:"tick_rate"`
}

// MatchDelay returns the delay between the second flip and match evaluation.
func (t TimingConfig) MatchDelay() time.Duration {
	return time.Duration(t.MatchDelayMs) * time.Millisecond
}

// ComputerDelay returns the delay before each computer flip.
func (t TimingConfig) ComputerDelay() time.Duration {
	return time.Duration(t.ComputerDelayMs) * time.Millisecond
}

// DefaultsConfig holds the mode and difficulty used when nothing else is chosen.
type DefaultsConfig struct {
	Difficulty string `yaml:"difficulty"`
	Mode       string `yaml:"mode"`
}

// DeckEntry is one card face. Key identifies the pair, Label is what the
// terminal shows on the face.
type DeckEntry struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
}

// Keys returns the image keys of the deck in order.
func (c MemoryConfig) Keys() []string {
	keys := make([]string, len(c.Deck))
	for i, e := range c.Deck {
		keys[i] = e.Key
	}
	return keys
}

// Labels returns a key -> label lookup for rendering.
func (c MemoryConfig) Labels() map[string]string {
	labels := make(map[string]string, len(c.Deck))
	for _, e := range c.Deck {
		labels[e.Key] = e.Label
	}
	return labels
}

// Validate checks that the configuration can run every difficulty.
func (c MemoryConfig) Validate() error {
	var errs []error

	if c.Timing.MatchDelayMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.match_delay_ms must be positive, got %d", c.Timing.MatchDelayMs))
	}
	if c.Timing.ComputerDelayMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.computer_delay_ms must be positive, got %d", c.Timing.ComputerDelayMs))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_rate must be positive, got %d", c.Timing.TickRate))
	}

	seen := make(map[string]bool, len(c.Deck))
	for i, e := range c.Deck {
		if e.Key == "" {
			errs = append(errs, fmt.Errorf("deck[%d]: empty key", i))
			continue
		}
		if seen[e.Key] {
			errs = append(errs, fmt.Errorf("deck[%d]: duplicate key %q", i, e.Key))
		}
		seen[e.Key] = true
	}
	if len(seen) < MaxPairs {
		errs = append(errs, fmt.Errorf("deck needs at least %d distinct keys, got %d", MaxPairs, len(seen)))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid memory config: %w", err)
	}
	return nil
}
