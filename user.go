// user.go
package main

import (
	"database/sql"
	"fmt"
	"time"

	"learning_journal/pkg/apperr"

	"golang.org/x/crypto/bcrypt"
)

// createUser registers a new user. Username and email must be unique
// (case-insensitive); the password is stored as a bcrypt hash.
func createUser(username, email, password string) (*User, error) {
	taken, err := CheckUsernameExists(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing username: %w", err)
	}
	if taken {
		return nil, apperr.Conflict("user", "username already exists")
	}

	taken, err = CheckEmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing email: %w", err)
	}
	if taken {
		return nil, apperr.Conflict("user", "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	joinedAt := time.Now()
	res, err := db.Exec(
		"INSERT INTO users (username, email, password_hash, joined_at) VALUES (?, ?, ?, ?)",
		username, email, string(hash), joinedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get new user id: %w", err)
	}

	return &User{ID: int(id), Username: username, Email: email, JoinedAt: joinedAt}, nil
}

// authenticateUser checks email and password, returns the User on success.
func authenticateUser(email, password string) (*User, error) {
	var u User
	var hash string
	err := db.QueryRow(
		"SELECT id, username, email, password_hash, joined_at FROM users WHERE email = ? COLLATE NOCASE",
		email,
	).Scan(&u.ID, &u.Username, &u.Email, &hash, &u.JoinedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid password")
	}

	return &u, nil
}

// getUserByID retrieves a user by their ID.
func getUserByID(id int) (*User, error) {
	var u User
	err := db.QueryRow(
		"SELECT id, username, email, joined_at FROM users WHERE id = ?", id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.JoinedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("user", id)
		}
		return nil, err
	}
	return &u, nil
}
