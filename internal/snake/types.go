// Package snake implements the grid simulation behind the game.
// It owns the authoritative session state, buffers directional input between
// ticks, advances the board one step per tick and reports finished games.
// Rendering, persistence and screen navigation live elsewhere; this package
// only depends on logging and id generation.
package snake

import (
	"fmt"
	"strings"
)

// Cell is a board coordinate. Cells are values and compare with ==.
type Cell struct {
	X, Y int
}

// Add returns the neighbouring cell in direction d.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// In reports whether c lies on a square board of the given size.
func (c Cell) In(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is one of the four movement directions.
// The zero value is not a valid direction.
type Direction int

const (
	DirUp Direction = iota + 1
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return 0
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts "up", "down", "left" or "right" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("snake: unknown direction %q", s)
}

// State is the lifecycle state of a session.
type State string

const (
	StateReady    State = "ready"
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateGameOver State = "game_over"
)

// Outcome classifies what a single step did.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeAte
	OutcomeWall
	OutcomeSelf
)

// Collided reports whether the step ended the game.
func (o Outcome) Collided() bool {
	return o == OutcomeWall || o == OutcomeSelf
}

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	default:
		return "unknown"
	}
}
