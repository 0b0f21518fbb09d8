// Package api provides common API request and response types
package api

// User-related request types
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Entry-related request types
type CreateEntryRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Resources string `json:"resources"`
	TimeSpent int    `json:"timeSpent"`
	Tag       string `json:"tag"`
}

type UpdateEntryRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Resources string `json:"resources"`
	TimeSpent int    `json:"timeSpent"`
	Tag       string `json:"tag"`
}

// Filter request types
type EntryFilterRequest struct {
	Tag      string `json:"tag"`      // Case-insensitive substring match on the tag label
	Page     int    `json:"page"`     // 1-based page number (default 1)
	PageSize int    `json:"pageSize"` // Entries per page (default 3)
}

// Common response types
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
