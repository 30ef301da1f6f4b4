package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Storage Errors.

	// ErrConnection indicates the database backend could not be reached
	// or rejected the supplied credentials. It is fatal at startup.
	ErrConnection = errors.New("database connection failed")

	// ErrDuplicateKey indicates the backend rejected a write because the
	// keyword already exists.
	ErrDuplicateKey = errors.New("duplicate keyword")

	// ErrUnsupportedBackend indicates an unknown storage backend name.
	ErrUnsupportedBackend = errors.New("unsupported backend")
)
