package snake

import "time"

// Rand is the source used to place food. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Session is the authoritative state of one game at one point in time.
// A step never modifies the Snake slice of the session it was given; it
// returns a new Session instead.
type Session struct {
	Snake     []Cell // Head at index 0
	Food      Cell
	HasFood   bool // False only when the board is full
	Direction Direction
	Score     int
	Interval  time.Duration
	State     State
	StartedAt time.Time
	Ticks     uint64
	GameID    string
}

// NewSession returns a READY session: a straight snake of cfg.InitialLength
// cells facing right with its head at (BoardSize/4, BoardSize/2), and food
// placed on a random free cell.
func NewSession(cfg Config, rng Rand) Session {
	head := Cell{X: cfg.BoardSize / 4, Y: cfg.BoardSize / 2}
	body := make([]Cell, cfg.InitialLength)
	for i := range body {
		body[i] = Cell{X: head.X - i, Y: head.Y}
	}

	s := Session{
		Snake:     body,
		Direction: DirRight,
		Interval:  cfg.InitialInterval,
		State:     StateReady,
	}
	s.Food, s.HasFood = spawnFood(cfg.BoardSize, body, rng)
	return s
}

// Head returns the snake's head cell.
func (s Session) Head() Cell {
	return s.Snake[0]
}

// Len returns the snake's length.
func (s Session) Len() int {
	return len(s.Snake)
}

// Occupies reports whether the snake covers c.
func (s Session) Occupies(c Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	s.Snake = append([]Cell(nil), s.Snake...)
	return s
}

// spawnFood picks a cell uniformly among those the body does not cover.
// Free cells are enumerated row by row so a deterministic Rand gives a
// deterministic placement.
func spawnFood(size int, body []Cell, rng Rand) (Cell, bool) {
	occupied := make(map[Cell]struct{}, len(body))
	for _, c := range body {
		occupied[c] = struct{}{}
	}

	free := make([]Cell, 0, size*size-len(occupied))
	for y := range size {
		for x := range size {
			c := Cell{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Cell{}, false
	}
	return free[rng.Intn(len(free))], true
}
