package snake

import (
	"context"
	"time"
)

// DefaultPlayerName is recorded when no player name is configured.
const DefaultPlayerName = "Player"

// Cause names what ended a game.
type Cause string

const (
	CauseWall Cause = "wall"
	CauseSelf Cause = "self"
)

// Result summarises a finished game. Exactly one is produced per game, at
// the transition from playing to game over.
type Result struct {
	GameID          string
	PlayerName      string
	Score           int
	SnakeLength     int
	DurationSeconds int // Active play time, pauses excluded
	Cause           Cause
	EndedAt         time.Time
}

// Reporter receives finished games. A non-nil error is shown to the player
// as a notice; it never changes the game.
type Reporter interface {
	Report(ctx context.Context, r Result) error
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ctx context.Context, r Result) error

// Report calls f(ctx, r).
func (f ReporterFunc) Report(ctx context.Context, r Result) error {
	return f(ctx, r)
}

// ReportStatus tracks delivery of the latest Result.
type ReportStatus string

const (
	ReportNone    ReportStatus = "none"
	ReportPending ReportStatus = "pending"
	ReportSaved   ReportStatus = "saved"
	ReportFailed  ReportStatus = "failed"
)
