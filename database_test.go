// database_test.go
package main

import (
	"testing"
)

// TestSchemaCreated tests that initDB created every table the app relies on.
func TestSchemaCreated(t *testing.T) {
	ensureTestDB(t)

	tables := []string{"users", "entries", "tags", "sessions", "login_attempts"}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name = ?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %q to exist: %v", table, err)
		}
	}
}

// TestForeignKeyCascade tests that deleting a user removes their entries,
// tags and sessions through the cascading foreign keys.
func TestForeignKeyCascade(t *testing.T) {
	ensureTestDB(t)
	user := createTestUser(t, "cascade", "cascade@example.com")
	createTestEntry(t, user, "doomed", "tech")

	_, err := db.Exec("INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, datetime('now', '+1 hour'))",
		"cascade-session", user.ID)
	if err != nil {
		t.Fatalf("Failed to insert session: %v", err)
	}

	if _, err := db.Exec("DELETE FROM users WHERE id = ?", user.ID); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	counts := map[string]int{}
	for _, table := range []string{"entries", "tags", "sessions"} {
		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Fatalf("Failed to count %s: %v", table, err)
		}
		counts[table] = count
	}

	for table, count := range counts {
		if count != 0 {
			t.Errorf("Expected %s to be empty after the user cascade, got %d rows", table, count)
		}
	}
}

// TestTimeSpentCheckConstraint tests that negative durations are rejected at
// the schema level too.
func TestTimeSpentCheckConstraint(t *testing.T) {
	ensureTestDB(t)
	user := createTestUser(t, "checked", "checked@example.com")

	_, err := db.Exec(
		"INSERT INTO entries (title, content, time_spent, user_id) VALUES (?, ?, ?, ?)",
		"Bad", "content", -5, user.ID,
	)
	if err == nil {
		t.Error("Expected the CHECK constraint to reject a negative time_spent")
	}
}

// TestOneTagPerEntry tests the UNIQUE constraint on tags.entry_id.
func TestOneTagPerEntry(t *testing.T) {
	ensureTestDB(t)
	user := createTestUser(t, "tagged", "tagged@example.com")
	entry := createTestEntry(t, user, "single tag", "first")

	_, err := db.Exec("INSERT INTO tags (entry_id, label) VALUES (?, ?)", entry.ID, "Second")
	if err == nil {
		t.Error("Expected a second tag on the same entry to violate the unique constraint")
	}
}
