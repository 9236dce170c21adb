package cli

import (
	"errors"

	"github.com/tuneboxed/sessionstore/internal/common"
)

// errorMessage turns a store error kind into the line shown to the user.
// The store itself never formats user-facing strings.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrMissingField):
		return "Please fill in all required fields"
	case errors.Is(err, common.ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, common.ErrInvalidEmail):
		return "Please enter a valid email address"
	case errors.Is(err, common.ErrUsernameTooShort):
		return "Username must be at least 3 characters"
	case errors.Is(err, common.ErrPasswordTooShort):
		return "Password must be at least 6 characters"
	case errors.Is(err, common.ErrAlreadyExists):
		return "Username or email already exists"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, common.ErrNotAuthenticated):
		return "Please log in first"
	case errors.Is(err, common.ErrPersistence):
		return "Could not save your changes, please try again"
	default:
		return err.Error()
	}
}
