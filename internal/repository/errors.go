package repository

import (
	"errors"
)

// Failure classes shared by every storage backend. Handlers translate these
// to HTTP statuses; the store itself never partially mutates on failure.
var (
	// ErrNotFound is returned when a lookup by id or slug finds no match and
	// the operation requires existence (e.g. creating an article against an
	// unknown category).
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a uniqueness constraint (slug, name,
	// email) would be violated by a create.
	ErrConflict = errors.New("record already exists")

	// ErrInvalidArgument is returned for malformed input reaching the store
	// boundary, such as an empty search query or a negative limit.
	ErrInvalidArgument = errors.New("invalid argument")
)
