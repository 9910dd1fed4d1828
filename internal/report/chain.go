package report

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ForStore builds the reporter used for finished games: a retrying save
// to store when one is open, plus a log line. store may be nil.
func ForStore(store *storage.Store, logger *log.Logger) snake.Reporter {
	if store == nil {
		return NewLog(logger)
	}
	return Multi(
		NewRetry(NewStore(store), DefaultRetryConfig()),
		NewLog(logger),
	)
}
