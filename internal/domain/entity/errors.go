package entity

import "errors"

// Sentinel errors shared by all access layers. Repositories and usecases wrap
// these with context; handlers translate them to HTTP status codes.
var (
	// ErrInvalidArgument marks a caller mistake, e.g. an empty lookup key.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound means no document matched by slug or id.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers slug collisions and stale-version updates.
	ErrConflict = errors.New("conflict")
)
