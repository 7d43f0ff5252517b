// Package storage keeps the history of finished runs in SQLite through the
// pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	difficulty TEXT NOT NULL,
	score      INTEGER NOT NULL,
	outcome    TEXT NOT NULL,
	ticks      INTEGER NOT NULL DEFAULT 0,
	seed       INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, score DESC, ticks ASC);
`

const runColumns = "id, difficulty, score, outcome, ticks, seed, created_at"

// sqliteTime is the layout CURRENT_TIMESTAMP produces.
const sqliteTime = "2006-01-02 15:04:05"

// Store is the run history. It is safe for concurrent use by SSH sessions.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID         int64
	Difficulty string
	Score      int
	Outcome    string // "won" or "lost"
	Ticks      uint64
	Seed       int64
	CreatedAt  time.Time
}

// Open opens the database at path, creating it with its parent directories
// and schema when missing. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite takes one writer at a time
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, rest), nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO runs (difficulty, score, outcome, ticks, seed) VALUES (?, ?, ?, ?, ?)",
		r.Difficulty, r.Score, r.Outcome, int64(r.Ticks), r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns up to limit runs of one difficulty, best first: higher
// score, then fewer ticks, then older. A non-positive limit means 10.
func (s *Store) TopRuns(difficulty string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		"WHERE difficulty = ? ORDER BY score DESC, ticks ASC, id ASC LIMIT ?",
		difficulty, limit,
	)
}

// AllRuns returns every run in the order they were saved.
func (s *Store) AllRuns() ([]Run, error) {
	return s.queryRuns("ORDER BY id ASC")
}

func (s *Store) queryRuns(clause string, args ...any) ([]Run, error) {
	rows, err := s.db.Query("SELECT "+runColumns+" FROM runs "+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r         Run
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Difficulty, &r.Score, &r.Outcome, &ticks, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = toTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// toTime accepts the driver handing back either a time.Time or text.
func toTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the best score of a difficulty, 0 without runs.
func (s *Store) HighScore(difficulty string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE difficulty = ?", difficulty).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearRuns deletes the history of one difficulty.
func (s *Store) ClearRuns(difficulty string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE difficulty = ?", difficulty); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats aggregates the runs of one difficulty.
type Stats struct {
	Difficulty string
	Games      int
	Wins       int
	Losses     int
	BestScore  int
	AvgScore   float64
	FastestWin uint64 // ticks, 0 without a win
	LastPlayed time.Time
}

// Stats computes the aggregates of one difficulty.
func (s *Store) Stats(difficulty string) (*Stats, error) {
	st := &Stats{Difficulty: difficulty}

	var fastest sql.NullInt64
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(outcome = 'won'), 0),
		       COALESCE(SUM(outcome = 'lost'), 0),
		       COALESCE(MAX(score), 0),
		       COALESCE(AVG(score), 0),
		       MIN(CASE WHEN outcome = 'won' THEN ticks END)
		FROM runs WHERE difficulty = ?`,
		difficulty,
	).Scan(&st.Games, &st.Wins, &st.Losses, &st.BestScore, &st.AvgScore, &fastest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	st.FastestWin = uint64(fastest.Int64)

	var last any
	err = s.db.QueryRow("SELECT created_at FROM runs WHERE difficulty = ? ORDER BY id DESC LIMIT 1", difficulty).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		st.LastPlayed = toTime(last)
	}
	return st, nil
}
