package report

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Log reports results by writing them to a logger. It never fails.
type Log struct {
	logger *log.Logger
}

// NewLog creates a logging reporter.
func NewLog(logger *log.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Report(_ context.Context, r snake.Result) error {
	l.logger.Info("result",
		"game", r.GameID,
		"player", r.PlayerName,
		"score", r.Score,
		"length", r.SnakeLength,
		"duration", r.DurationSeconds,
		"cause", r.Cause,
	)
	return nil
}

var _ snake.Reporter = (*Log)(nil)
