// models.go
package main

import "time"

// User represents a registered author.
type User struct {
	ID       int       `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Entry represents a journal entry. Each entry is owned by exactly one user
// and carries exactly one tag label.
type Entry struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Resources    string    `json:"resources"`
	TimeSpent    int       `json:"timeSpent"` // minutes
	DateCreated  time.Time `json:"dateCreated"`
	DateModified time.Time `json:"dateModified"`
	UserID       int       `json:"userId"`
	Username     string    `json:"username,omitempty"` // joined for display
	Tag          string    `json:"tag"`
}

// Tag represents the single free-text label attached to an entry.
type Tag struct {
	ID      int    `json:"id"`
	EntryID int    `json:"entryId"`
	Label   string `json:"label"`
}
