// Package config provides YAML-based engine configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrInvalidConfig is returned (wrapped) by Validate.
var ErrInvalidConfig = errors.New("config: invalid snake config")

// Snake contains all configuration for the snake engine.
type Snake struct {
	Board   BoardConfig   `yaml:"board"`
	Snake   BodyConfig    `yaml:"snake"`
	Speed   SpeedConfig   `yaml:"speed"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Size int `yaml:"size"` // Width and height in cells
}

// BodyConfig defines the snake at the start of a game.
type BodyConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// SpeedConfig defines the tick interval and how it shrinks.
type SpeedConfig struct {
	InitialMS   int `yaml:"initial_ms"`
	MinMS       int `yaml:"min_ms"`
	DecrementMS int `yaml:"decrement_ms"`
}

// ScoringConfig defines food reward and speed-up thresholds.
type ScoringConfig struct {
	FoodReward int `yaml:"food_reward"`
	Threshold  int `yaml:"threshold"`
}

// Engine converts the YAML representation into engine constants.
func (c Snake) Engine() snake.Config {
	return snake.Config{
		BoardSize:       c.Board.Size,
		InitialLength:   c.Snake.InitialLength,
		InitialInterval: time.Duration(c.Speed.InitialMS) * time.Millisecond,
		MinInterval:     time.Duration(c.Speed.MinMS) * time.Millisecond,
		SpeedDecrement:  time.Duration(c.Speed.DecrementMS) * time.Millisecond,
		ScoreThreshold:  c.Scoring.Threshold,
		FoodReward:      c.Scoring.FoodReward,
	}
}

// Validate reports every problem with the configuration at once.
func (c Snake) Validate() error {
	if err := c.Engine().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
