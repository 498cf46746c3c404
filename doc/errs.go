package doc

import (
	"errors"
	"fmt"

	"github.com/RedisLabsModules/RedisDoc/ir"
)

var (
	// ErrPathNotExist is returned when a path resolves to no location in
	// the document.
	ErrPathNotExist = errors.New("ERR path does not exist")

	// ErrWrongType is wrapped by every container/scalar kind mismatch.
	ErrWrongType = errors.New("ERR wrong type of path value")

	// ErrIndexBounds is returned for array index violations.
	ErrIndexBounds = errors.New("ERR index out of bounds")

	// ErrNonFinite rejects numeric results that cannot be represented.
	ErrNonFinite = errors.New("ERR cannot represent result as Number")

	// ErrRootRequired is returned when a set on an absent key addresses a
	// non-root path.
	ErrRootRequired = errors.New("ERR new objects must be created at the root")

	// ErrAbsentKey is returned by mutations addressing a key that holds no
	// document.
	ErrAbsentKey = errors.New("ERR could not perform this operation on a key that doesn't exist")
)

func typeErr(expected string, got ir.Type) error {
	return fmt.Errorf("%w - expected %s but found %s", ErrWrongType, expected, got)
}
