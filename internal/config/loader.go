package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "memory.yaml"

// Load loads the memory game configuration.
// Search order: customPath -> ~/.memory-match/configs/memory.yaml ->
// ./configs/memory.yaml -> embedded default.
// Files only need to set the fields they change; the rest keeps its default.
func Load(customPath string) (MemoryConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MemoryConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultMemoryYAML)
	if err != nil {
		return DefaultMemoryConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hard-coded defaults.
func parse(data []byte) (MemoryConfig, error) {
	cfg := DefaultMemoryConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MemoryConfig{}, err
	}
	return cfg, nil
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".memory-match", "configs", filename)
}
