// test_utils.go
package main

import (
	"testing"
	"time"

	"learning_journal/pkg/template"

	"golang.org/x/crypto/bcrypt"
)

// ensureTestDB makes sure the database schema exists and is clean for all tests.
// Uses the real application's schema so tests see exactly what production sees.
func ensureTestDB(t *testing.T) {
	t.Helper()

	if db == nil {
		initDB("test_journal.db")
	}
	if template.DefaultRenderer == nil {
		template.InitRenderer("templates", "base.html")
	}

	// Clean existing data in dependency order
	cleanTables := []string{"tags", "entries", "sessions", "login_attempts", "users"}
	for _, table := range cleanTables {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("Failed to clean table %s: %v", table, err)
		}
	}
}

// createTestUser inserts a user directly and returns it.
func createTestUser(t *testing.T, username, email string) *User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	joinedAt := time.Now()
	res, err := db.Exec(
		"INSERT INTO users (username, email, password_hash, joined_at) VALUES (?, ?, ?, ?)",
		username, email, string(hash), joinedAt,
	)
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}

	id, _ := res.LastInsertId()
	return &User{ID: int(id), Username: username, Email: email, JoinedAt: joinedAt}
}

// createTestEntry creates an entry through the coordinator and fails the test
// on error.
func createTestEntry(t *testing.T, owner *User, title, tag string) *Entry {
	t.Helper()

	entry, err := createEntry(owner, title, "test content", "test resources", 30, tag)
	if err != nil {
		t.Fatalf("Failed to create test entry %q: %v", title, err)
	}
	return entry
}
