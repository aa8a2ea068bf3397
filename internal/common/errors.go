// Package common defines shared constants and sentinel errors used across
// Invoicor components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors raised at the create/update boundary.
	ErrorValidation = errors.New("validation error")

	// User registry errors.
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	// Authentication errors. Wrong password is reported separately from an
	// unknown user so the login screen can say which one happened.
	ErrWrongPassword    = errors.New("incorrect password")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")

	// Session token errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
