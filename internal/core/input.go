package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, K, Up arrow
	ActionDown          // S, J, Down arrow
	ActionLeft          // A, H, Left arrow
	ActionRight         // D, L, Right arrow
	ActionStart         // Space, Enter - start or restart a game
	ActionPause         // P, Escape - pause/unpause game
	ActionScores        // Tab - toggle the scoreboard
	ActionQuit          // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action steers the snake.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}
