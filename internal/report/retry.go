package report

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ErrMaxAttempts is returned when all retries are exhausted.
var ErrMaxAttempts = errors.New("report: max retry attempts exceeded")

// RetryConfig holds retry behavior. Stop conditions: success, non-retryable
// error, max attempts reached, or context cancelled.
type RetryConfig struct {
	MaxAttempts  int           // max attempts (including first); default 5
	InitialDelay time.Duration // first backoff; default 100ms
	MaxDelay     time.Duration // cap on backoff; default 2s
	Multiplier   float64       // exponential multiplier; default 2.0
}

// DefaultRetryConfig returns a config suited to a local database.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  5,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2.0,
	}
}

func (c RetryConfig) withDefaults() RetryConfig {
	d := DefaultRetryConfig()
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = d.InitialDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = d.MaxDelay
	}
	if c.Multiplier <= 0 {
		c.Multiplier = d.Multiplier
	}
	return c
}

// Retry wraps a Reporter and retries failed deliveries with exponential
// backoff.
type Retry struct {
	next snake.Reporter
	cfg  RetryConfig
}

// NewRetry creates a retrying reporter around next.
func NewRetry(next snake.Reporter, cfg RetryConfig) *Retry {
	return &Retry{next: next, cfg: cfg.withDefaults()}
}

// Report delivers r through the wrapped reporter.
func (r *Retry) Report(ctx context.Context, res snake.Result) error {
	return Do(ctx, r.cfg, func() error {
		return r.next.Report(ctx, res)
	})
}

// Do runs fn. On error, retries with exponential backoff until:
//   - fn returns nil (success),
//   - fn returns a non-retryable error (returned as-is),
//   - max attempts are reached (returns ErrMaxAttempts joined with the last error),
//   - ctx is cancelled (returns ctx.Err() joined with the last error).
func Do(ctx context.Context, cfg RetryConfig, fn func() error) error {
	cfg = cfg.withDefaults()

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if IsNonRetryable(lastErr) {
			return lastErr
		}
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		timer := time.NewTimer(Backoff(attempt, cfg))
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(ctx.Err(), lastErr)
		case <-timer.C:
		}
	}

	return errors.Join(ErrMaxAttempts, lastErr)
}

// Backoff returns the delay after the given attempt (0-based).
func Backoff(attempt int, cfg RetryConfig) time.Duration {
	if attempt <= 0 {
		return cfg.InitialDelay
	}
	d := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt))
	if d > float64(cfg.MaxDelay) {
		return cfg.MaxDelay
	}
	return time.Duration(d)
}

var _ snake.Reporter = (*Retry)(nil)
