package snake

import "time"

// Snapshot is a read-only copy of the game handed to the presentation layer.
type Snapshot struct {
	Seq       uint64 // Increases with every snapshot taken by a Controller
	BoardSize int
	Snake     []Cell
	Food      Cell
	HasFood   bool
	Direction Direction
	Score     int
	Interval  time.Duration
	State     State
	Ticks     uint64
	PlayTime  time.Duration
	GameID    string

	Result *Result // Set once the game is over
	Report ReportStatus
	Notice string // Non-fatal message for the player, e.g. a failed report
}

// Head returns the head cell, or the zero Cell for an empty snapshot.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Snake)
}

// Occupies reports whether the snake covers c.
func (s Snapshot) Occupies(c Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}
