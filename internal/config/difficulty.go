package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Never speeds up
)

// Presets lists the accepted preset names in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DifficultyNormal, nil
	}
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// speedScale returns the factor applied to the interval bounds, in percent.
func speedScale(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 140
	case DifficultyHard:
		return 70
	default:
		return 100
	}
}

// ApplyPreset modifies the speed section of cfg for a difficulty preset.
// Normal leaves cfg unchanged.
func ApplyPreset(cfg *Snake, preset DifficultyPreset) {
	scale := speedScale(preset)
	cfg.Speed.InitialMS = cfg.Speed.InitialMS * scale / 100
	cfg.Speed.MinMS = max(cfg.Speed.MinMS*scale/100, 1)

	if preset == DifficultyFixed {
		cfg.Speed.DecrementMS = 0
	}
}
