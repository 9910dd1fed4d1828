// Package report delivers finished game results to their destinations.
//
// Every type here implements snake.Reporter and can be stacked:
//
//	report.Multi(
//		report.NewRetry(report.NewStore(db), report.DefaultRetryConfig()),
//		report.NewLog(logger),
//	)
package report

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// MaxPlayerNameLength is the longest player name that is stored.
const MaxPlayerNameLength = 100

// ErrInvalidResult is wrapped by Validate errors.
var ErrInvalidResult = errors.New("report: invalid result")

// NonRetryableError marks an error that must not be retried.
type NonRetryableError struct{ Err error }

func (e *NonRetryableError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "non-retryable error"
}

func (e *NonRetryableError) Unwrap() error { return e.Err }

// IsNonRetryable reports whether err, or anything it wraps, is a
// NonRetryableError.
func IsNonRetryable(err error) bool {
	var nr *NonRetryableError
	return errors.As(err, &nr)
}

// Normalize trims the player name and substitutes the default for an
// empty one.
func Normalize(r snake.Result) snake.Result {
	r.PlayerName = strings.TrimSpace(r.PlayerName)
	if r.PlayerName == "" {
		r.PlayerName = snake.DefaultPlayerName
	}
	return r
}

// Validate checks r against the limits of the score table. The returned
// error is non-retryable.
func Validate(r snake.Result) error {
	var errs []error
	if r.GameID == "" {
		errs = append(errs, fmt.Errorf("%w: missing game id", ErrInvalidResult))
	}
	if r.Score < 0 {
		errs = append(errs, fmt.Errorf("%w: score %d is negative", ErrInvalidResult, r.Score))
	}
	if r.SnakeLength < 1 {
		errs = append(errs, fmt.Errorf("%w: snake length %d is below 1", ErrInvalidResult, r.SnakeLength))
	}
	if r.DurationSeconds < 0 {
		errs = append(errs, fmt.Errorf("%w: duration %d is negative", ErrInvalidResult, r.DurationSeconds))
	}
	if n := utf8.RuneCountInString(r.PlayerName); n > MaxPlayerNameLength {
		errs = append(errs, fmt.Errorf("%w: player name has %d characters (max %d)", ErrInvalidResult, n, MaxPlayerNameLength))
	}

	if err := errors.Join(errs...); err != nil {
		return &NonRetryableError{Err: err}
	}
	return nil
}
