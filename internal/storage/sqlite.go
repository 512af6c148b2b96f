// Package storage provides SQLite-based persistence for found solutions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/snowpush/internal/snowball/core"
)

// ErrNoSolution is returned by BestSolution when a level has none stored.
var ErrNoSolution = errors.New("storage: no stored solution")

// Store manages the SQLite database connection for solution persistence.
type Store struct {
	db *sql.DB
}

// Solution is one stored solver run.
type Solution struct {
	ID         int64
	LevelID    string
	Actions    []core.Action
	Expanded   int
	Duplicates int
	Elapsed    time.Duration
	CreatedAt  time.Time
}

// Pushes returns the solution length.
func (s Solution) Pushes() int {
	return len(s.Actions)
}

// LevelSummary aggregates the stored solutions of one level.
type LevelSummary struct {
	LevelID    string
	Runs       int
	BestPushes int
	LastSolved time.Time
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
	// Solves of several levels save concurrently; SQLite has one writer.
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
		CREATE TABLE IF NOT EXISTS solutions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			pushes INTEGER NOT NULL,
			actions TEXT NOT NULL,
			expanded INTEGER NOT NULL DEFAULT 0,
			duplicates INTEGER NOT NULL DEFAULT 0,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solutions_level_id ON solutions(level_id);
		CREATE INDEX IF NOT EXISTS idx_solutions_best ON solutions(level_id, pushes ASC);
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

// SaveSolution records a solver run for the given level.
// Returns the ID of the inserted record.
func (s *Store) SaveSolution(sol Solution) (int64, error) {
	if sol.LevelID == "" {
		return 0, errors.New("storage: solution has no level id")
	}

	result, err := s.db.Exec(
		`INSERT INTO solutions (level_id, pushes, actions, expanded, duplicates, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sol.LevelID, sol.Pushes(), core.FormatActions(sol.Actions),
		sol.Expanded, sol.Duplicates, sol.Elapsed.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solution: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Solutions retrieves up to limit solutions for the given level,
// shortest first and newest first among equals. An empty levelID
// selects every level.
func (s *Store) Solutions(levelID string, limit int) ([]Solution, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, actions, expanded, duplicates, elapsed_ms, created_at
		 FROM solutions
		 WHERE ? = '' OR level_id = ?
		 ORDER BY pushes ASC, id DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solutions: %w", err)
	}
	defer rows.Close()

	var out []Solution
	for rows.Next() {
		sol, err := scanSolution(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sol)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// BestSolution returns the shortest stored solution for the level.
func (s *Store) BestSolution(levelID string) (Solution, error) {
	row := s.db.QueryRow(
		`SELECT id, level_id, actions, expanded, duplicates, elapsed_ms, created_at
		 FROM solutions
		 WHERE level_id = ?
		 ORDER BY pushes ASC, id DESC
		 LIMIT 1`,
		levelID,
	)

	sol, err := scanSolution(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Solution{}, fmt.Errorf("%w for level %s", ErrNoSolution, levelID)
	}
	return sol, err
}

// SolvedLevels summarises every level with at least one stored solution,
// ordered by level ID.
func (s *Store) SolvedLevels() ([]LevelSummary, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(pushes), MAX(created_at)
		 FROM solutions
		 GROUP BY level_id
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solved levels: %w", err)
	}
	defer rows.Close()

	var out []LevelSummary
	for rows.Next() {
		var sum LevelSummary
		var lastSolved any
		if err := rows.Scan(&sum.LevelID, &sum.Runs, &sum.BestPushes, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		sum.LastSolved = parseTime(lastSolved)
		out = append(out, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// ClearSolutions removes all stored solutions for a level.
func (s *Store) ClearSolutions(levelID string) error {
	if _, err := s.db.Exec("DELETE FROM solutions WHERE level_id = ?", levelID); err != nil {
		return fmt.Errorf("storage: cannot clear solutions: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolution(row scanner) (Solution, error) {
	var sol Solution
	var actions string
	var elapsedMS int64
	var createdAt any
	err := row.Scan(&sol.ID, &sol.LevelID, &actions, &sol.Expanded, &sol.Duplicates, &elapsedMS, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Solution{}, err
	}
	if err != nil {
		return Solution{}, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	sol.Actions, err = core.ParseActions(actions)
	if err != nil {
		return Solution{}, fmt.Errorf("storage: solution %d has a corrupt action log: %w", sol.ID, err)
	}
	sol.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	sol.CreatedAt = parseTime(createdAt)
	return sol, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
