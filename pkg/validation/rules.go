// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"strings"
)

// FieldError represents a single failed rule on a named field
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator provides chained validation methods
type Validator struct {
	errors []FieldError
}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// Required validates that a field is not empty after trimming
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.errors = append(v.errors, FieldError{
			Field:   field,
			Message: "is required",
		})
	}
	return v
}

// MinLength validates minimum string length
func (v *Validator) MinLength(field, value string, min int) *Validator {
	if len(strings.TrimSpace(value)) < min {
		v.errors = append(v.errors, FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters", min),
		})
	}
	return v
}

// MaxLength validates maximum string length
func (v *Validator) MaxLength(field, value string, max int) *Validator {
	if len(value) > max {
		v.errors = append(v.errors, FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be no more than %d characters", max),
		})
	}
	return v
}

// Email validates email format (basic validation)
func (v *Validator) Email(field, value string) *Validator {
	if value != "" && !strings.Contains(value, "@") {
		v.errors = append(v.errors, FieldError{
			Field:   field,
			Message: "must be a valid email address",
		})
	}
	return v
}

// NonNegative validates that an integer field is not negative
func (v *Validator) NonNegative(field string, value int) *Validator {
	if value < 0 {
		v.errors = append(v.errors, FieldError{
			Field:   field,
			Message: "must not be negative",
		})
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// FirstError returns the first failed rule or the zero value if none failed
func (v *Validator) FirstError() FieldError {
	if len(v.errors) > 0 {
		return v.errors[0]
	}
	return FieldError{}
}

// RegisterRequest represents a registration form for validation
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

// ValidateRegistration validates a registration request
func ValidateRegistration(req RegisterRequest) *Validator {
	v := NewValidator()

	v.Required("username", req.Username).
		MinLength("username", req.Username, 3).
		MaxLength("username", req.Username, 50)

	v.Required("email", req.Email).
		Email("email", req.Email).
		MaxLength("email", req.Email, 255)

	v.Required("password", req.Password).
		MinLength("password", req.Password, 2).
		MaxLength("password", req.Password, 1000)

	if req.Password != req.Password2 {
		v.errors = append(v.errors, FieldError{
			Field:   "password2",
			Message: "passwords must match",
		})
	}

	return v
}

// EntryRequest represents a journal entry form for validation
type EntryRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Resources string `json:"resources"`
	TimeSpent int    `json:"timeSpent"`
	Tag       string `json:"tag"`
}

// ValidateEntry validates a journal entry request
func ValidateEntry(entry EntryRequest) *Validator {
	v := NewValidator()

	v.Required("title", entry.Title).
		MaxLength("title", entry.Title, 100)

	v.Required("content", entry.Content)

	v.NonNegative("timeSpent", entry.TimeSpent)

	v.MaxLength("tag", entry.Tag, 100)

	return v
}
