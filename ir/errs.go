package ir

import "errors"

var (
	// ErrPath is wrapped by every path syntax failure.
	ErrPath = errors.New("ERR invalid path")

	// ErrStaticPath is returned when a write primitive needs a path that
	// addresses exactly one location.
	ErrStaticPath = errors.New("ERR wrong static path")
)
