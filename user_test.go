// user_test.go
package main

import (
	"testing"

	"learning_journal/pkg/apperr"
)

// TestCreateUser tests the createUser function.
func TestCreateUser(t *testing.T) {
	ensureTestDB(t)

	// Test case 1: Successful user creation
	user, err := createUser("testuser", "test@example.com", "password123")
	if err != nil {
		t.Fatalf("Expected no error when creating a valid user, but got: %v", err)
	}

	// Verify the user was actually created and the password is stored hashed
	var username, hash string
	err = db.QueryRow("SELECT username, password_hash FROM users WHERE id = ?", user.ID).Scan(&username, &hash)
	if err != nil {
		t.Fatalf("Failed to find the newly created user in the database: %v", err)
	}
	if username != "testuser" {
		t.Errorf("Expected username 'testuser', but got '%s'", username)
	}
	if hash == "password123" {
		t.Error("Expected the password to be stored as a hash, but found plaintext")
	}

	// Test case 2: Duplicate username
	_, err = createUser("testuser", "other@example.com", "password123")
	if !apperr.IsConflict(err) {
		t.Errorf("Expected a conflict error for a duplicate username, but got: %v", err)
	}

	// Test case 3: Duplicate email (case-insensitive)
	_, err = createUser("otheruser", "TEST@example.com", "password123")
	if !apperr.IsConflict(err) {
		t.Errorf("Expected a conflict error for a duplicate email, but got: %v", err)
	}
}

// TestAuthenticateUser tests login credential checks.
func TestAuthenticateUser(t *testing.T) {
	ensureTestDB(t)

	created, err := createUser("journaler", "journal@example.com", "secret-pass")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	// Correct credentials
	user, err := authenticateUser("journal@example.com", "secret-pass")
	if err != nil {
		t.Fatalf("Expected successful authentication, but got: %v", err)
	}
	if user.ID != created.ID || user.Username != "journaler" {
		t.Errorf("Expected the created user back, got %+v", user)
	}

	// Wrong password
	if _, err := authenticateUser("journal@example.com", "wrong"); err == nil {
		t.Error("Expected an error for a wrong password, but got nil")
	}

	// Unknown email
	if _, err := authenticateUser("nobody@example.com", "secret-pass"); err == nil {
		t.Error("Expected an error for an unknown email, but got nil")
	}
}

// TestGetUserByID tests user lookup.
func TestGetUserByID(t *testing.T) {
	ensureTestDB(t)
	created := createTestUser(t, "lookup", "lookup@example.com")

	user, err := getUserByID(created.ID)
	if err != nil {
		t.Fatalf("Expected no error looking up an existing user, but got: %v", err)
	}
	if user.Username != "lookup" {
		t.Errorf("Expected username 'lookup', but got '%s'", user.Username)
	}

	if _, err := getUserByID(9999); !apperr.IsNotFound(err) {
		t.Errorf("Expected a not-found error for a missing user, but got: %v", err)
	}
}
