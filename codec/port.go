package codec

import (
	"io"

	"github.com/RedisLabsModules/RedisDoc/doc"
)

// Port is the persistence boundary a host integrates against: opaque
// length-delimited record streams in, documents out. The codec package
// provides the canonical implementation; hosts with their own storage
// primitives supply theirs.
type Port interface {
	Read(r io.Reader) (*doc.Document, error)
	Write(w io.Writer, d *doc.Document) error
	Free(d *doc.Document)
	EncodingVersion() int
}

// Record implements Port over Save/Load with a uvarint record length
// prefix.
type Record struct{}

var _ Port = Record{}

func (Record) Read(r io.Reader) (*doc.Document, error) {
	data, err := readRecord(r)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

func (Record) Write(w io.Writer, d *doc.Document) error {
	return writeRecord(w, Save(d))
}

func (Record) Free(d *doc.Document) {
	Free(d)
}

func (Record) EncodingVersion() int {
	return EncodingVersion
}
