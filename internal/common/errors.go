// Package common contains shared helpers and sentinel errors used across
// the session store components. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Validation errors returned by registration and profile updates.
	ErrMissingField     = errors.New("missing required field")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrUsernameTooShort = errors.New("username too short")
	ErrPasswordTooShort = errors.New("password too short")

	// Invariant errors.
	ErrAlreadyExists = errors.New("username or email already exists")

	// Session errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Persistence errors. Wrapped around the underlying storage failure.
	ErrPersistence = errors.New("persistence failure")
)
