// Package apperr defines the typed errors raised by the journal's
// coordinator so callers can pick the right user-visible response.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports rejected input (empty title, negative time spent).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// AuthorizationError reports that the acting user does not own the entity
// it is trying to mutate. Maps to a 403-style response.
type AuthorizationError struct {
	UserID  int
	EntryID int
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %d is not allowed to modify entry %d", e.UserID, e.EntryID)
}

// NotFoundError reports that a referenced record does not exist.
// Maps to a 404-style response.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
	}
	return e.Resource + " not found"
}

// ConflictError reports a unique-constraint violation, e.g. a duplicate
// username or email at registration. Maps to a 409-style response.
type ConflictError struct {
	Resource string
	Message  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Resource, e.Message)
}

// Validation builds a ValidationError.
func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// Forbidden builds an AuthorizationError.
func Forbidden(userID, entryID int) error {
	return &AuthorizationError{UserID: userID, EntryID: entryID}
}

// NotFound builds a NotFoundError.
func NotFound(resource string, id int) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// Conflict builds a ConflictError.
func Conflict(resource, message string) error {
	return &ConflictError{Resource: resource, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsForbidden reports whether err is an AuthorizationError.
func IsForbidden(err error) bool {
	var e *AuthorizationError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}
