// database.go
package main

import (
	"database/sql"

	"learning_journal/pkg/logger"

	_ "github.com/mattn/go-sqlite3"
)

// db is our global database connection pool. It is declared here
// to be accessible across all files in the main package.
var db *sql.DB

// initDB initializes the database connection and creates tables if they don't exist.
func initDB(filepath string) {
	var err error
	db, err = sql.Open("sqlite3", filepath+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=10000")
	if err != nil {
		logger.Fatal("Failed to open database", err)
	}

	// SQLite can only handle one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	createTables := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		joined_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		resources TEXT NOT NULL DEFAULT '',
		time_spent INTEGER NOT NULL DEFAULT 0 CHECK (time_spent >= 0),
		date_created TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		date_modified TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		user_id INTEGER NOT NULL,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);
	CREATE TABLE IF NOT EXISTS tags (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		entry_id INTEGER NOT NULL UNIQUE,
		label TEXT NOT NULL,
		FOREIGN KEY(entry_id) REFERENCES entries(id) ON DELETE CASCADE
	);
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id) ON DELETE CASCADE
	);
	CREATE TABLE IF NOT EXISTS login_attempts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL,
		ip_address TEXT NOT NULL,
		successful BOOLEAN NOT NULL DEFAULT 0,
		attempted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_entries_user_id ON entries(user_id);
	CREATE INDEX IF NOT EXISTS idx_entries_date_created ON entries(date_created);
	CREATE INDEX IF NOT EXISTS idx_tags_label ON tags(label);
	CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at);
	CREATE INDEX IF NOT EXISTS idx_login_attempts_email ON login_attempts(email);
	`
	_, err = db.Exec(createTables)
	if err != nil {
		logger.Fatal("Failed to create tables", err)
	}

	// Additional SQLite pragmas for better concurrency
	pragmas := []string{
		"PRAGMA synchronous = NORMAL", // Faster than FULL, still safe with WAL
		"PRAGMA cache_size = 10000",
		"PRAGMA temp_store = memory",
	}

	for _, pragma := range pragmas {
		_, err = db.Exec(pragma)
		if err != nil {
			logger.Warning("Failed to set pragma " + pragma + ": " + err.Error())
		}
	}
}
