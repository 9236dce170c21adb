// Package validation implements the input checks applied by the session
// store before any account is created or mutated. Checks are ordered and
// short-circuit on the first failure, so callers always receive the error
// for the earliest violated rule.
package validation

import (
	"regexp"

	"github.com/tuneboxed/sessionstore/internal/common"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6
)

// emailPattern matches a basic local@domain.tld shape. Intentionally loose;
// the store never sends mail, it only rejects obvious typos.
var emailPattern = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)

// Registration validates the full set of sign-up inputs, in order:
// required fields, password confirmation, email format, username length,
// password length. Inputs are checked as provided, untrimmed.
func Registration(username, email, password, confirmPassword string) error {
	if username == "" || email == "" || password == "" {
		return common.ErrMissingField
	}
	if password != confirmPassword {
		return common.ErrPasswordMismatch
	}
	if !emailPattern.MatchString(email) {
		return common.ErrInvalidEmail
	}
	if err := Username(username); err != nil {
		return err
	}
	if len(password) < MinPasswordLength {
		return common.ErrPasswordTooShort
	}
	return nil
}

// Login validates sign-in inputs: both fields must be present.
func Login(username, password string) error {
	if username == "" || password == "" {
		return common.ErrMissingField
	}
	return nil
}

// Username validates a username on its own, used both at registration and
// when an existing account is renamed.
func Username(username string) error {
	if len(username) < MinUsernameLength {
		return common.ErrUsernameTooShort
	}
	return nil
}
