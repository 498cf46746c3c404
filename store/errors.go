package store

import "errors"

var (
	// ErrNotFound is returned when a key holds no document.
	ErrNotFound = errors.New("redisdoc: key not found")

	// ErrSnapshot is wrapped by snapshot read/write failures.
	ErrSnapshot = errors.New("redisdoc: snapshot failed")
)
