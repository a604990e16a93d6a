// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal persists bootstrap run records in a SQLite database.
// The journal is observability only: failures to record never change the
// behavior of a run.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pyboot/pkg/types"
)

const dbFile = "pyboot.db"

// Store manages the run journal database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the journal database at dir/pyboot.db, creating
// the directory and schema as needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS runs (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		manifest_path TEXT NOT NULL,
		manifest_sha256 TEXT,
		requirement_count INTEGER NOT NULL,
		interpreter TEXT NOT NULL,
		target TEXT,
		outcome TEXT NOT NULL,
		launched INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends one run to the journal.
func (s *Store) Record(r types.RunRecord) error {
	launched := 0
	if r.Launched {
		launched = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (started_at, manifest_path, manifest_sha256,
			requirement_count, interpreter, target, outcome, launched, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.StartedAt.UTC().Format(time.RFC3339Nano),
		r.ManifestPath, r.ManifestSHA256, r.Requirements,
		r.Interpreter, r.Target, string(r.Outcome), launched, r.DurationMS,
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. A non-positive limit
// defaults to 20.
func (s *Store) Recent(limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT started_at, manifest_path, manifest_sha256, requirement_count,
			interpreter, target, outcome, launched, duration_ms
		 FROM runs ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []types.RunRecord
	for rows.Next() {
		var (
			r        types.RunRecord
			started  string
			outcome  string
			launched int
		)
		if err := rows.Scan(&started, &r.ManifestPath, &r.ManifestSHA256,
			&r.Requirements, &r.Interpreter, &r.Target, &outcome,
			&launched, &r.DurationMS); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, started); err == nil {
			r.StartedAt = t
		}
		r.Outcome = types.Outcome(outcome)
		r.Launched = launched != 0
		records = append(records, r)
	}
	return records, rows.Err()
}
