package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the snake configuration. Fields missing from the file keep
// their default values.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func Load(customPath string) (Snake, error) {
	cfg := DefaultSnake()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if parsed, ok := parseFile(userCfgPath); ok {
			return parsed, nil
		}
	}

	// Try local configs directory
	if parsed, ok := parseFile(filepath.Join("configs", "snake.yaml")); ok {
		return parsed, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnake(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadWithPreset loads the configuration, applies preset and validates the
// result.
func LoadWithPreset(customPath string, preset DifficultyPreset) (Snake, error) {
	cfg, err := Load(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// parseFile reads an optional config file. Unreadable or malformed files
// are skipped so the next location in the search order is tried.
func parseFile(path string) (Snake, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snake{}, false
	}
	cfg := DefaultSnake()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Snake{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
