package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Saver persists a record. *storage.Store implements it.
type Saver interface {
	SaveResult(ctx context.Context, r storage.Record) (int64, error)
}

// Store reports results by saving them to a Saver.
type Store struct {
	saver Saver
}

// NewStore creates a reporter backed by saver.
func NewStore(saver Saver) *Store {
	return &Store{saver: saver}
}

// Report validates r and saves it. A result already stored under the same
// game id counts as delivered, so retries are safe.
func (s *Store) Report(ctx context.Context, r snake.Result) error {
	r = Normalize(r)
	if err := Validate(r); err != nil {
		return err
	}

	_, err := s.saver.SaveResult(ctx, ToRecord(r))
	switch {
	case err == nil, errors.Is(err, storage.ErrDuplicateGame):
		return nil
	case ctx.Err() != nil:
		return &NonRetryableError{Err: fmt.Errorf("report: save %s: %w", r.GameID, err)}
	default:
		return fmt.Errorf("report: save %s: %w", r.GameID, err)
	}
}

// ToRecord converts an engine result into a storage record.
func ToRecord(r snake.Result) storage.Record {
	return storage.Record{
		GameID:          r.GameID,
		PlayerName:      r.PlayerName,
		Score:           r.Score,
		SnakeLength:     r.SnakeLength,
		DurationSeconds: r.DurationSeconds,
		Cause:           string(r.Cause),
		CreatedAt:       r.EndedAt,
	}
}

var _ snake.Reporter = (*Store)(nil)
