package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // Import the sqlite3 driver.
)

// InitSQLite connects to the SQLite database and creates the schema.
func InitSQLite(dataSourceName string) (*sql.DB, error) {
	// Ensure the directory for the database file exists.
	dir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Enable WAL mode for better concurrency.
	// This allows readers to not block writers.
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		slog.Warn("Failed to enable WAL mode for SQLite, continuing without it.", "error", err)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables executes the SQL statements to create the database schema.
// Sections and history are JSON documents; SQLite treats the store as
// schemaless beyond the identifying and versioning columns.
func createTables(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS stories (
			story_id TEXT PRIMARY KEY,
			client_id TEXT NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			sections TEXT NOT NULL,
			resonance_score REAL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			history TEXT NOT NULL DEFAULT '[]'
		);
		CREATE INDEX IF NOT EXISTS idx_stories_client_id_created_at ON stories(client_id, created_at);

		CREATE TABLE IF NOT EXISTS status_checks (
			id TEXT PRIMARY KEY,
			client_name TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_status_checks_timestamp ON status_checks(timestamp);
	`
	_, err := db.Exec(schema)
	return err
}
