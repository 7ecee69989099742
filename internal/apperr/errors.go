// Package apperr defines the sentinel errors shared across services and
// handlers. Services wrap them with context via fmt.Errorf("%w: ...") and
// handlers match them with errors.Is to pick a status code.
package apperr

import "errors"

var (
	// ErrValidation marks a missing or malformed input field.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a uniqueness violation, e.g. a duplicate email.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized covers bad credentials and invalid or expired tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound marks an unknown entity id.
	ErrNotFound = errors.New("not found")
)
