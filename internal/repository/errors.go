package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert violates the unique
	// email constraint on users.
	ErrDuplicateEmail = errors.New("email already registered")
)
