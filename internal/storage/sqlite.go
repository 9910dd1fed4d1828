// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrDuplicateGame is returned by SaveResult when a record with the same
// game id already exists.
var ErrDuplicateGame = errors.New("storage: game already recorded")

// DefaultLeaderboardSize is used when a non-positive limit is requested.
const DefaultLeaderboardSize = 10

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// Record is one finished game as stored in the database.
type Record struct {
	ID              int64
	GameID          string
	PlayerName      string
	Score           int
	SnakeLength     int
	DurationSeconds int
	Cause           string
	CreatedAt       time.Time
}

// RankedRecord is a leaderboard row.
type RankedRecord struct {
	Rank int // 1-based
	Record
}

// Stats contains aggregates over every recorded game.
type Stats struct {
	TotalGames           int
	BestScore            int
	AverageScore         float64 // Rounded to one decimal
	TotalPlayTimeSeconds int64
	LongestSnake         int
	LastPlayed           time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SSH sessions report concurrently; SQLite allows one writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			player_name TEXT NOT NULL DEFAULT 'Player',
			score INTEGER NOT NULL CHECK (score >= 0),
			snake_length INTEGER NOT NULL CHECK (snake_length >= 1),
			duration_seconds INTEGER NOT NULL DEFAULT 0 CHECK (duration_seconds >= 0),
			cause TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns the ID of the inserted
// row. Saving the same game id twice fails with ErrDuplicateGame.
func (s *Store) SaveResult(ctx context.Context, r Record) (int64, error) {
	createdAt := r.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (game_id, player_name, score, snake_length, duration_seconds, cause, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(game_id) DO NOTHING`,
		r.GameID, r.PlayerName, r.Score, r.SnakeLength, r.DurationSeconds, r.Cause,
		createdAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateGame, r.GameID)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Leaderboard retrieves the top N games ordered by score descending.
// Equal scores keep the order they were recorded in.
func (s *Store) Leaderboard(limit int) ([]RankedRecord, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player_name, score, snake_length, duration_seconds, cause, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []RankedRecord
	for rows.Next() {
		var e RankedRecord
		var createdAt any
		if err := rows.Scan(
			&e.ID,
			&e.GameID,
			&e.PlayerName,
			&e.Score,
			&e.SnakeLength,
			&e.DurationSeconds,
			&e.Cause,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		e.Rank = len(entries) + 1
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score.
// Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics. An empty table yields zeros.
func (s *Store) Stats() (Stats, error) {
	var stats Stats
	var avg float64
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0),
		        COALESCE(SUM(duration_seconds), 0),
		        COALESCE(MAX(snake_length), 0),
		        MAX(created_at)
		 FROM scores`,
	).Scan(
		&stats.TotalGames,
		&stats.BestScore,
		&avg,
		&stats.TotalPlayTimeSeconds,
		&stats.LongestSnake,
		&lastPlayed,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.AverageScore = math.Round(avg*10) / 10
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearScores deletes every recorded game.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
