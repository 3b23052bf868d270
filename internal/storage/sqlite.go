package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"date-topics/internal/timeslot"
	"date-topics/internal/topics"
)

// Store is a SQLite-backed document store: one row per record key, the
// record serialized as a JSON payload.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database in dataDir. Pass ":memory:" as
// dataDir for an in-memory database (used by tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "topics.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	// Limit to single connection to avoid "database is locked" errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS topics (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating topics table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Write upserts the record at its key. A second write to the same key
// replaces the payload wholesale; nothing is merged or appended.
func (s *Store) Write(ctx context.Context, date string, slot timeslot.Slot, list []topics.Topic) error {
	rec := topics.Record{Date: date, Slot: slot, Topics: list}
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO topics (key, payload) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
		Key(date, slot), string(payload))
	if err != nil {
		return fmt.Errorf("writing record %s: %w", Key(date, slot), err)
	}
	return nil
}

// Read performs a point lookup by key. A missing row is (zero, false, nil).
func (s *Store) Read(ctx context.Context, date string, slot timeslot.Slot) (topics.Record, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM topics WHERE key = ?", Key(date, slot)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return topics.Record{}, false, nil
	}
	if err != nil {
		return topics.Record{}, false, fmt.Errorf("reading record %s: %w", Key(date, slot), err)
	}
	var rec topics.Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return topics.Record{}, false, fmt.Errorf("decoding record %s: %w", Key(date, slot), err)
	}
	return rec, true, nil
}
