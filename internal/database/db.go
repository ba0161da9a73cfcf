package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private database that disappears with the process
const MemoryPath = ":memory:"

// DB wraps sql.DB with additional methods
type DB struct {
	*sql.DB
}

// New creates a new database connection
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	// Every pooled connection to :memory: would get its own empty database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database open failed: %w", err)
	}

	return &DB{db}, nil
}

// InitSchema creates all necessary tables
func (db *DB) InitSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS round_results (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        timestamp DATETIME NOT NULL,
        endpoint TEXT NOT NULL,
        url TEXT NOT NULL,
        round INTEGER NOT NULL,
        success BOOLEAN NOT NULL,
        rtt_ms REAL,
        status_code INTEGER,
        error_message TEXT
    );

    CREATE INDEX IF NOT EXISTS idx_endpoint_round ON round_results(endpoint, round);
    `

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}

	return nil
}
