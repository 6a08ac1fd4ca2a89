package api

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Schema creates the run history table. Counts are stored as decimal text
// because SQLite integers are signed 64-bit.
const Schema = `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		length INTEGER NOT NULL,
		vowel_budget INTEGER NOT NULL,
		workers INTEGER NOT NULL,
		count TEXT NOT NULL,
		cache_entries INTEGER NOT NULL,
		cache_hits TEXT NOT NULL,
		cache_misses TEXT NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS runs_created_at ON runs (created_at);
`

// InitDB initializes and returns a SQLite database connection
func InitDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// CreateSchema creates the tables the API needs if they do not exist.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveRun inserts a run. An empty RunId is replaced with a new UUID and a zero
// CreatedAt with the current time; both are written back to run.
func SaveRun(db *sql.DB, run *Run) error {
	if run.RunId == "" {
		run.RunId = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO runs (id, length, vowel_budget, workers, count, cache_entries, cache_hits, cache_misses, elapsed_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := db.Exec(query,
		run.RunId,
		run.Length,
		run.VowelBudget,
		run.Workers,
		strconv.FormatUint(run.Count, 10),
		run.CacheEntries,
		strconv.FormatUint(run.CacheHits, 10),
		strconv.FormatUint(run.CacheMisses, 10),
		run.ElapsedMs,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

const selectRuns = `SELECT id, length, vowel_budget, workers, count, cache_entries, cache_hits, cache_misses, elapsed_ms, created_at FROM runs`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var count, hits, misses string

	if err := row.Scan(&r.RunId, &r.Length, &r.VowelBudget, &r.Workers, &count,
		&r.CacheEntries, &hits, &misses, &r.ElapsedMs, &r.CreatedAt); err != nil {
		return Run{}, err
	}

	var err error
	if r.Count, err = strconv.ParseUint(count, 10, 64); err != nil {
		return Run{}, fmt.Errorf("invalid count %q for run %s: %w", count, r.RunId, err)
	}
	if r.CacheHits, err = strconv.ParseUint(hits, 10, 64); err != nil {
		return Run{}, fmt.Errorf("invalid cache hits %q for run %s: %w", hits, r.RunId, err)
	}
	if r.CacheMisses, err = strconv.ParseUint(misses, 10, 64); err != nil {
		return Run{}, fmt.Errorf("invalid cache misses %q for run %s: %w", misses, r.RunId, err)
	}

	return r, nil
}

// GetRun fetches a single run by its ID
func GetRun(db *sql.DB, id string) (*Run, error) {
	r, err := scanRun(db.QueryRow(selectRuns+` WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil // Run not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	return &r, nil
}

// ListRuns fetches the most recent runs, newest first
func ListRuns(db *sql.DB, limit int) ([]Run, error) {
	rows, err := db.Query(selectRuns+` ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}
