package snake

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("snake: invalid config")

// Config holds the constants of a game. It is copied into the Controller at
// construction and cannot change while a session is running.
type Config struct {
	BoardSize       int           // Cells per side of the square board
	InitialLength   int           // Snake length at start
	InitialInterval time.Duration // Tick interval at start
	MinInterval     time.Duration // Floor for the tick interval
	SpeedDecrement  time.Duration // Interval reduction per threshold crossed
	ScoreThreshold  int           // Score multiple that triggers a speed-up
	FoodReward      int           // Points per food
}

// DefaultConfig returns the standard 20x20 game.
func DefaultConfig() Config {
	return Config{
		BoardSize:       20,
		InitialLength:   3,
		InitialInterval: 150 * time.Millisecond,
		MinInterval:     50 * time.Millisecond,
		SpeedDecrement:  10 * time.Millisecond,
		ScoreThreshold:  50,
		FoodReward:      10,
	}
}

// Validate reports every constraint the config violates.
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.BoardSize < 2 {
		invalid("board size %d must be at least 2", c.BoardSize)
	}
	if c.InitialLength < 1 {
		invalid("initial length %d must be at least 1", c.InitialLength)
	} else if c.BoardSize >= 2 && c.InitialLength > c.BoardSize/4+1 {
		// The starting body extends left from column BoardSize/4.
		invalid("initial length %d does not fit a board of size %d (max %d)",
			c.InitialLength, c.BoardSize, c.BoardSize/4+1)
	}
	if c.MinInterval <= 0 {
		invalid("min interval %s must be positive", c.MinInterval)
	}
	if c.InitialInterval < c.MinInterval {
		invalid("initial interval %s is below min interval %s", c.InitialInterval, c.MinInterval)
	}
	if c.SpeedDecrement < 0 {
		invalid("speed decrement %s must not be negative", c.SpeedDecrement)
	}
	if c.ScoreThreshold <= 0 {
		invalid("score threshold %d must be positive", c.ScoreThreshold)
	}
	if c.FoodReward <= 0 {
		invalid("food reward %d must be positive", c.FoodReward)
	}

	return errors.Join(errs...)
}
