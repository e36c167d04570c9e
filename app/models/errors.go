package models

import "errors"

// Failure taxonomy shared by repositories, services and handlers. Handlers
// map these onto HTTP status codes; nothing here is process-fatal.
var (
	// ErrDataUnavailable wraps network or backend failures on reads.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrNotFound means no row matched. Distinct from an empty result set,
	// which is a valid outcome for listing queries.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks malformed input to a save or update operation.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized covers failed auth or admin checks. Always fail-closed.
	// The admin gate does not surface it over HTTP: middleware answers a
	// failed check with a sign-out and a login redirect instead.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrLoginRequired signals that the caller must authenticate first;
	// handlers answer with a redirect-to-login outcome instead of writing.
	ErrLoginRequired = errors.New("login required")
)
