// Package storage keeps the run history in SQLite. It uses the pure-Go
// modernc.org/sqlite driver so no CGO toolchain is needed.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the history database.
type Store struct {
	db *sql.DB
}

// Run is one finished level attempt.
type Run struct {
	ID        int64
	Level     int
	LevelName string
	Outcome   string
	Coins     int
	Ticks     int
	Hazards   int
	Skin      string
	CreatedAt time.Time
}

// LevelStats aggregates the runs of one level.
type LevelStats struct {
	Level       int
	Attempts    int
	Completions int
	BestTicks   int // fastest completion, 0 if never completed
	MostCoins   int
}

// Open creates or opens the database at dbPath, creating parent directories
// and the schema as needed. A leading ~ is expanded to the home directory.
func Open(dbPath string) (*Store, error) {
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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			level_name TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			hazards INTEGER NOT NULL DEFAULT 0,
			skin TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
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

// RecordRun stores a finished run and returns its ID.
func (s *Store) RecordRun(r Run) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (level, level_name, outcome, coins, ticks, hazards, skin)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Level, r.LevelName, r.Outcome, r.Coins, r.Ticks, r.Hazards, r.Skin,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns returns the latest runs, newest first. level 0 means all levels.
func (s *Store) RecentRuns(level, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level, level_name, outcome, coins, ticks, hazards, skin, created_at
		 FROM runs
		 WHERE ? = 0 OR level = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Level, &r.LevelName, &r.Outcome, &r.Coins, &r.Ticks, &r.Hazards, &r.Skin, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Stats aggregates every run of level.
func (s *Store) Stats(level int) (LevelStats, error) {
	st := LevelStats{Level: level}
	var best, coins sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'completed' THEN 1 ELSE 0 END), 0),
		        MIN(CASE WHEN outcome = 'completed' THEN ticks END),
		        MAX(coins)
		 FROM runs
		 WHERE level = ?`,
		level,
	).Scan(&st.Attempts, &st.Completions, &best, &coins)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	if best.Valid {
		st.BestTicks = int(best.Int64)
	}
	if coins.Valid {
		st.MostCoins = int(coins.Int64)
	}
	return st, nil
}

// ClearRuns deletes the history of level, or everything when level is 0.
func (s *Store) ClearRuns(level int) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = 0 OR level = ?", level, level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string values from the driver.
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
