package repositories

import "errors"

var (
	// ErrNotFound is wrapped by every repository lookup that matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is wrapped when a write violates a unique key. It relies on
	// the connection being opened with TranslateError.
	ErrDuplicate = errors.New("duplicate key")
)
