// Package codec persists documents as a version tag plus a binary body.
// Version 2, the current encoding, stores the canonical serialized text of
// the root value. Version 0 bodies come from the legacy structural layout
// and are decoded for one-time migration only; new writes always produce
// version 2.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/RedisLabsModules/RedisDoc/debug"
	"github.com/RedisLabsModules/RedisDoc/doc"
	"github.com/RedisLabsModules/RedisDoc/encode"
	"github.com/RedisLabsModules/RedisDoc/format"
	"github.com/RedisLabsModules/RedisDoc/parse"
)

// EncodingVersion tags every persisted document produced by Save.
const EncodingVersion = 2

var (
	// ErrEncoding marks a persisted record that cannot be decoded. A load
	// failure is fatal for the record; there is no recovery path.
	ErrEncoding = errors.New("redisdoc: cannot load persisted document")
)

// Save renders a document to its persisted form: uvarint version tag,
// uvarint body length, canonical text body.
func Save(d *doc.Document) []byte {
	body := []byte(encode.MustString(d.Root()))
	buf := make([]byte, 0, len(body)+2*binary.MaxVarintLen64)
	buf = binary.AppendUvarint(buf, EncodingVersion)
	buf = binary.AppendUvarint(buf, uint64(len(body)))
	if debug.Codec() {
		debug.Logf("codec: save v%d, %d body bytes\n", EncodingVersion, len(body))
	}
	return append(buf, body...)
}

// Load reconstructs a document from its persisted form. Unknown versions
// are fatal.
func Load(data []byte) (*doc.Document, error) {
	r := bytes.NewReader(data)
	version, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if debug.Codec() {
		debug.Logf("codec: load v%d\n", version)
	}
	switch version {
	case EncodingVersion:
		body, err := readBytes(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		root, err := parse.Parse(body, format.JSONFormat)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		return doc.New(root), nil
	case 0:
		root, err := legacyDecode(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		return doc.New(root), nil
	default:
		return nil, fmt.Errorf("%w: unknown encoding version %d", ErrEncoding, version)
	}
}

// Free releases a document's tree.
func Free(d *doc.Document) {
	if d == nil {
		return
	}
	*d = doc.Document{}
}

func readBytes(r *bytes.Reader) ([]byte, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Len()) {
		return nil, fmt.Errorf("truncated body: want %d bytes, have %d", n, r.Len())
	}
	body := make([]byte, n)
	if _, err := r.Read(body); err != nil {
		return nil, err
	}
	return body, nil
}
