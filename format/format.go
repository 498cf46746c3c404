// Package format names the payload formats a command argument can arrive
// in. The format governs parsing and rendering of raw payloads only; the
// in-memory document is always the canonical ir tree.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	JSONFormat Format = iota
	BSONFormat
)

var ErrBadFormat = errors.New("ERR wrong format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"JSON": JSONFormat,
		"BSON": BSONFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "JSON"
	case BSONFormat:
		return "BSON"
	default:
		return "<unknown format>"
	}
}
