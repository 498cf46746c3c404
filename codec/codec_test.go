package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/RedisLabsModules/RedisDoc/doc"
	"github.com/RedisLabsModules/RedisDoc/encode"
	"github.com/RedisLabsModules/RedisDoc/format"
	"github.com/RedisLabsModules/RedisDoc/ir"
)

func mustDoc(t *testing.T, src string) *doc.Document {
	t.Helper()
	d, err := doc.FromPayload([]byte(src), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	tests := []string{
		"null",
		"true",
		"42",
		"-1.5",
		`"hello"`,
		"[]",
		"{}",
		`{"a":[1,{"b":null}],"c":"x"}`,
		`{"big":9007199254740993}`,
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			d := mustDoc(t, src)
			got, err := Load(Save(d))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !ir.Equal(got.Root(), d.Root()) {
				t.Errorf("roundtrip mismatch for %s", src)
			}
			if !jsonpatch.Equal([]byte(encode.MustString(got.Root())), []byte(src)) {
				t.Errorf("persisted form is not JSON-equal to %s", src)
			}
		})
	}
}

func TestSave_Layout(t *testing.T) {
	d := mustDoc(t, `{"a":1}`)
	data := Save(d)
	r := bytes.NewReader(data)
	version, err := binary.ReadUvarint(r)
	if err != nil {
		t.Fatal(err)
	}
	if version != EncodingVersion {
		t.Errorf("version = %d, want %d", version, EncodingVersion)
	}
	n, err := binary.ReadUvarint(r)
	if err != nil {
		t.Fatal(err)
	}
	body := make([]byte, n)
	if _, err := r.Read(body); err != nil {
		t.Fatal(err)
	}
	if string(body) != `{"a":1}` {
		t.Errorf("body = %q", body)
	}
	if r.Len() != 0 {
		t.Errorf("%d trailing bytes", r.Len())
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"unknown version", binary.AppendUvarint(nil, 7)},
		{"future version", binary.AppendUvarint(nil, 99)},
		{
			"truncated body",
			func() []byte {
				buf := binary.AppendUvarint(nil, EncodingVersion)
				buf = binary.AppendUvarint(buf, 100)
				return append(buf, "{}"...)
			}(),
		},
		{
			"bad body",
			func() []byte {
				buf := binary.AppendUvarint(nil, EncodingVersion)
				buf = binary.AppendUvarint(buf, 3)
				return append(buf, "{{{"...)
			}(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.data); !errors.Is(err, ErrEncoding) {
				t.Errorf("got %v, want ErrEncoding", err)
			}
		})
	}
}

func TestFree(t *testing.T) {
	d := mustDoc(t, `{"a":1}`)
	Free(d)
	if d.Root() != nil {
		t.Error("Free should drop the tree")
	}
	Free(nil)
}

func TestRecord_Roundtrip(t *testing.T) {
	port := Record{}
	if port.EncodingVersion() != EncodingVersion {
		t.Fatalf("port version = %d", port.EncodingVersion())
	}
	buf := bytes.NewBuffer(nil)
	docs := []string{`{"a":1}`, "[1,2,3]", `"x"`}
	for _, src := range docs {
		if err := port.Write(buf, mustDoc(t, src)); err != nil {
			t.Fatal(err)
		}
	}
	for _, src := range docs {
		got, err := port.Read(buf)
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if encode.MustString(got.Root()) != src {
			t.Errorf("got %s, want %s", encode.MustString(got.Root()), src)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("%d bytes left over", buf.Len())
	}
}
