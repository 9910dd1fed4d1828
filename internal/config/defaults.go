package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnake returns the default engine configuration.
// It matches defaults/snake.yaml.
func DefaultSnake() Snake {
	return Snake{
		Board: BoardConfig{
			Size: 20,
		},
		Snake: BodyConfig{
			InitialLength: 3,
		},
		Speed: SpeedConfig{
			InitialMS:   150,
			MinMS:       50,
			DecrementMS: 10,
		},
		Scoring: ScoringConfig{
			FoodReward: 10,
			Threshold:  50,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
