package doc

import (
	"errors"
	"testing"

	"github.com/RedisLabsModules/RedisDoc/parse"
)

func TestDocument_Merge(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		path  string
		patch string
		want  string
	}{
		{
			name:  "add member",
			src:   `{"a":1}`,
			path:  "$",
			patch: `{"b":2}`,
			want:  `{"a":1,"b":2}`,
		},
		{
			name:  "replace member",
			src:   `{"a":1,"b":2}`,
			path:  "$",
			patch: `{"a":9}`,
			want:  `{"a":9,"b":2}`,
		},
		{
			name:  "null deletes",
			src:   `{"a":1,"b":2}`,
			path:  "$",
			patch: `{"a":null}`,
			want:  `{"b":2}`,
		},
		{
			name:  "recursive",
			src:   `{"o":{"x":1,"y":2}}`,
			path:  "$",
			patch: `{"o":{"y":9,"z":3}}`,
			want:  `{"o":{"x":1,"y":9,"z":3}}`,
		},
		{
			name:  "scalar patch replaces wholesale",
			src:   `{"o":{"x":1}}`,
			path:  "$.o",
			patch: `5`,
			want:  `{"o":5}`,
		},
		{
			name:  "array patch replaces wholesale",
			src:   `{"a":[1,2]}`,
			path:  "$.a",
			patch: `[9]`,
			want:  `{"a":[9]}`,
		},
		{
			name:  "object patch over scalar target",
			src:   `{"a":1}`,
			path:  "$.a",
			patch: `{"b":2}`,
			want:  `{"a":{"b":2}}`,
		},
		{
			name:  "at subpath",
			src:   `{"a":{"v":{"x":1}},"b":1}`,
			path:  "$.a.v",
			patch: `{"y":2}`,
			want:  `{"a":{"v":{"x":1,"y":2}},"b":1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustDoc(t, tt.src)
			if err := d.Merge(tt.path, []byte(tt.patch)); err != nil {
				t.Fatalf("Merge: %v", err)
			}
			if got := mustSerialize(t, d, "$"); got != tt.want {
				t.Errorf("merged document differs:\n%s", textDiff(tt.want, got))
			}
		})
	}
}

func TestDocument_Merge_Errors(t *testing.T) {
	d := mustDoc(t, `{"a":1}`)
	if err := d.Merge("$", []byte(`{"bad"`)); !errors.Is(err, parse.ErrParse) {
		t.Errorf("bad patch: got %v, want ErrParse", err)
	}
	if err := d.Merge("$.x", []byte(`{"b":2}`)); !errors.Is(err, ErrPathNotExist) {
		t.Errorf("missing path: got %v, want ErrPathNotExist", err)
	}
	if got := mustSerialize(t, d, "$"); got != `{"a":1}` {
		t.Errorf("failed merges changed the document: %s", got)
	}
}
