// Package storage provides SQLite-based persistence for solve history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Solve outcomes as stored in the database.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
)

// Store manages the SQLite database connection for solve history.
type Store struct {
	db *sql.DB
}

// SolveEntry represents a single recorded solve.
type SolveEntry struct {
	ID         int64
	MazeID     string
	Solver     string
	Outcome    string // "found" or "no_path"
	PathLen    int    // cells in the path, 0 when no path
	Expanded   int    // nodes expanded by the search
	DurationMS int64
	CreatedAt  time.Time
}

// MazeStats summarizes the recorded solves for one maze.
type MazeStats struct {
	MazeID      string
	Solves      int
	Found       int
	BestPathLen int // shortest recorded path, 0 if never found
	MinExpanded int // fewest expansions among found solves
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			maze_id TEXT NOT NULL,
			solver TEXT NOT NULL,
			outcome TEXT NOT NULL,
			path_len INTEGER NOT NULL DEFAULT 0,
			expanded INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_maze_id ON solves(maze_id);
		CREATE INDEX IF NOT EXISTS idx_solves_recent ON solves(created_at DESC);
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

// SaveSolve records a solve attempt. Returns the ID of the inserted record.
func (s *Store) SaveSolve(e SolveEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO solves (maze_id, solver, outcome, path_len, expanded, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.MazeID, e.Solver, e.Outcome, e.PathLen, e.Expanded, e.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSolves retrieves the most recent solves across all mazes,
// newest first.
func (s *Store) RecentSolves(limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, maze_id, solver, outcome, path_len, expanded, duration_ms, created_at
		 FROM solves
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// SolvesForMaze retrieves all solves for the given maze, newest first.
func (s *Store) SolvesForMaze(mazeID string) ([]SolveEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, maze_id, solver, outcome, path_len, expanded, duration_ms, created_at
		 FROM solves
		 WHERE maze_id = ?
		 ORDER BY created_at DESC, id DESC`,
		mazeID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	return scanSolves(rows)
}

// BestSolve returns the found solve with the shortest path for the
// given maze and solver, ties broken by fewest expanded nodes.
// Returns nil if none exists.
func (s *Store) BestSolve(mazeID, solver string) (*SolveEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, maze_id, solver, outcome, path_len, expanded, duration_ms, created_at
		 FROM solves
		 WHERE maze_id = ? AND solver = ? AND outcome = ?
		 ORDER BY path_len ASC, expanded ASC, duration_ms ASC
		 LIMIT 1`,
		mazeID, solver, OutcomeFound,
	)

	var e SolveEntry
	var createdAt any
	err := row.Scan(&e.ID, &e.MazeID, &e.Solver, &e.Outcome,
		&e.PathLen, &e.Expanded, &e.DurationMS, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best solve: %w", err)
	}
	e.CreatedAt = parseCreatedAt(createdAt)

	return &e, nil
}

// StatsForMaze summarizes the recorded solves for the given maze.
func (s *Store) StatsForMaze(mazeID string) (MazeStats, error) {
	stats := MazeStats{MazeID: mazeID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN path_len END), 0),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN expanded END), 0)
		 FROM solves WHERE maze_id = ?`,
		OutcomeFound, OutcomeFound, OutcomeFound, mazeID,
	).Scan(&stats.Solves, &stats.Found, &stats.BestPathLen, &stats.MinExpanded)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query maze stats: %w", err)
	}

	return stats, nil
}

// ClearHistory deletes all recorded solves. With a non-empty mazeID it
// deletes only that maze's history.
func (s *Store) ClearHistory(mazeID string) error {
	var err error
	if mazeID == "" {
		_, err = s.db.Exec("DELETE FROM solves")
	} else {
		_, err = s.db.Exec("DELETE FROM solves WHERE maze_id = ?", mazeID)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// scanSolves reads all rows into solve entries.
func scanSolves(rows *sql.Rows) ([]SolveEntry, error) {
	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.MazeID, &e.Solver, &e.Outcome,
			&e.PathLen, &e.Expanded, &e.DurationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseCreatedAt handles both time.Time and string datetime values
// returned by the driver.
func parseCreatedAt(v any) time.Time {
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
