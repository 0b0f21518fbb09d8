// utils.go
package main

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// normalizeTitle trims surrounding whitespace and title-cases the value.
// Applied to entry titles and tag labels on create and update.
func normalizeTitle(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}

// RecordExists checks if at least one record exists matching the query.
// Returns true if count > 0, false otherwise.
func RecordExists(query string, args ...interface{}) (bool, error) {
	var count int
	err := db.QueryRow(query, args...).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CheckUsernameExists checks if a username is already taken.
// If excludeID is provided and > 0, that user ID will be excluded from the check.
func CheckUsernameExists(username string, excludeID ...int) (bool, error) {
	query := "SELECT COUNT(*) FROM users WHERE username = ? COLLATE NOCASE"
	args := []interface{}{username}

	if len(excludeID) > 0 && excludeID[0] > 0 {
		query += " AND id != ?"
		args = append(args, excludeID[0])
	}

	return RecordExists(query, args...)
}

// CheckEmailExists checks if an email is already registered.
// If excludeID is provided and > 0, that user ID will be excluded from the check.
func CheckEmailExists(email string, excludeID ...int) (bool, error) {
	query := "SELECT COUNT(*) FROM users WHERE email = ? COLLATE NOCASE"
	args := []interface{}{email}

	if len(excludeID) > 0 && excludeID[0] > 0 {
		query += " AND id != ?"
		args = append(args, excludeID[0])
	}

	return RecordExists(query, args...)
}
