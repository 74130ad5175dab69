package config

import (
	_ "embed"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

// DefaultMemoryConfig returns the hard-coded default configuration.
// It mirrors defaults/memory.yaml and is used if the embedded file cannot
// be parsed.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Timing: TimingConfig{
			MatchDelayMs:    1000,
			ComputerDelayMs: 1000,
			TickRate:        30,
		},
		Defaults: DefaultsConfig{
			Difficulty: "medium",
			Mode:       "solo",
		},
		Deck: []DeckEntry{
			{Key: "lion", Label: "LIO"},
			{Key: "elephant", Label: "ELE"},
			{Key: "giraffe", Label: "GIR"},
			{Key: "monkey", Label: "MON"},
			{Key: "panda", Label: "PAN"},
			{Key: "penguin", Label: "PEN"},
			{Key: "turtle", Label: "TUR"},
			{Key: "whale", Label: "WHA"},
			{Key: "crocodile", Label: "CRO"},
			{Key: "fox", Label: "FOX"},
			{Key: "owl", Label: "OWL"},
			{Key: "rabbit", Label: "RAB"},
			{Key: "squirrel", Label: "SQU"},
			{Key: "tiger", Label: "TIG"},
			{Key: "zebra", Label: "ZEB"},
			{Key: "bear", Label: "BEA"},
			{Key: "deer", Label: "DEE"},
			{Key: "hippo", Label: "HIP"},
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `memory settings --dump-config`.
func DefaultYAML() []byte {
	return defaultMemoryYAML
}
