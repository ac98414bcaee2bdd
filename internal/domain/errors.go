package domain

import "errors"

var (
	// ErrDependencyMissing signals a write whose parent row is absent.
	ErrDependencyMissing = errors.New("dependency missing")

	// ErrInvalidEntity signals a record the store cannot represent.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrPermissionDenied signals a 403 from the upstream API.
	ErrPermissionDenied = errors.New("permission denied")
)
