// Package errs contains sentinel errors shared across layers so handlers
// can map failures to stable HTTP responses.
package errs

import "errors"

var (
	// ErrValidation indicates a required request field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateAccount indicates a username or email uniqueness violation.
	// Callers must not reveal which field collided.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrInvalidCredentials indicates a failed login. Returned identically for
	// unknown accounts and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotFound indicates the requested record does not exist for the
	// calling account.
	ErrNotFound = errors.New("not found")
)
