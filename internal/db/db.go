package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath is the default database location
const DefaultPath = "/var/lib/ledgod/history.db"

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
	path string
}

// New opens or creates the SQLite database at the given path
func New(path string) (*DB, error) {
	if path == "" {
		path = DefaultPath
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrency
	if _, err := conn.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	db := &DB{conn: conn, path: path}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.conn.Close()
}

// Path returns the database file path
func (d *DB) Path() string {
	return d.path
}

func (d *DB) migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS led_events (
    id TEXT PRIMARY KEY,
    slot_id TEXT NOT NULL,
    cntrl_type TEXT NOT NULL,
    old_state TEXT NOT NULL,
    new_state TEXT NOT NULL,
    timestamp TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_led_events_slot ON led_events(slot_id, timestamp);
CREATE INDEX IF NOT EXISTS idx_led_events_time ON led_events(timestamp);
`
	_, err := d.conn.Exec(schema)
	return err
}
