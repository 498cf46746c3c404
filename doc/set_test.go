package doc

import (
	"errors"
	"testing"

	"github.com/RedisLabsModules/RedisDoc/ir"
)

func TestDocument_Set(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		path  string
		value *ir.Node
		opt   SetOption
		wrote bool
		want  string
	}{
		{
			name:  "root swap",
			src:   `{"a":1}`,
			path:  "$",
			value: ir.FromInt(2),
			wrote: true,
			want:  "2",
		},
		{
			name:  "root nx is a no-op",
			src:   `{"a":1}`,
			path:  "$",
			value: ir.FromInt(2),
			opt:   SetNotExists,
			wrote: false,
			want:  `{"a":1}`,
		},
		{
			name:  "overwrite existing",
			src:   `{"a":1,"b":2}`,
			path:  "$.a",
			value: ir.FromString("x"),
			wrote: true,
			want:  `{"a":"x","b":2}`,
		},
		{
			name:  "insert new member",
			src:   `{"a":1}`,
			path:  "$.b",
			value: ir.FromInt(2),
			wrote: true,
			want:  `{"a":1,"b":2}`,
		},
		{
			name:  "insert nested member",
			src:   `{"a":{"b":1}}`,
			path:  "$.a.c",
			value: ir.FromInt(2),
			wrote: true,
			want:  `{"a":{"b":1,"c":2}}`,
		},
		{
			name:  "nx skips existing",
			src:   `{"a":1}`,
			path:  "$.a",
			value: ir.FromInt(9),
			opt:   SetNotExists,
			wrote: false,
			want:  `{"a":1}`,
		},
		{
			name:  "nx inserts missing",
			src:   `{"a":1}`,
			path:  "$.b",
			value: ir.FromInt(9),
			opt:   SetNotExists,
			wrote: true,
			want:  `{"a":1,"b":9}`,
		},
		{
			name:  "xx overwrites existing",
			src:   `{"a":1}`,
			path:  "$.a",
			value: ir.FromInt(9),
			opt:   SetAlreadyExists,
			wrote: true,
			want:  `{"a":9}`,
		},
		{
			name:  "xx skips missing",
			src:   `{"a":1}`,
			path:  "$.b",
			value: ir.FromInt(9),
			opt:   SetAlreadyExists,
			wrote: false,
			want:  `{"a":1}`,
		},
		{
			name:  "multi-match overwrite",
			src:   `{"a":{"v":1},"b":{"v":2}}`,
			path:  "$..v",
			value: ir.FromInt(0),
			wrote: true,
			want:  `{"a":{"v":0},"b":{"v":0}}`,
		},
		{
			name:  "array element",
			src:   `{"a":[1,2,3]}`,
			path:  "$.a[1]",
			value: ir.FromString("mid"),
			wrote: true,
			want:  `{"a":[1,"mid",3]}`,
		},
		{
			name:  "insert under static prefix",
			src:   `{"a":{"o":{}},"b":{"o":{}}}`,
			path:  "$.a.o.k",
			value: ir.FromInt(1),
			wrote: true,
			want:  `{"a":{"o":{"k":1}},"b":{"o":{}}}`,
		},
		{
			name:  "insert under scalar fails quietly",
			src:   `{"a":1}`,
			path:  "$.a.b",
			value: ir.FromInt(2),
			wrote: false,
			want:  `{"a":1}`,
		},
		{
			name:  "insert under missing prefix fails quietly",
			src:   `{"a":1}`,
			path:  "$.x.y",
			value: ir.FromInt(2),
			wrote: false,
			want:  `{"a":1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustDoc(t, tt.src)
			wrote, err := d.Set(tt.path, tt.value, tt.opt)
			if err != nil {
				t.Fatalf("Set: %v", err)
			}
			if wrote != tt.wrote {
				t.Errorf("wrote = %v, want %v", wrote, tt.wrote)
			}
			got, err := d.Serialize("$")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("document = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDocument_Set_Errors(t *testing.T) {
	d := mustDoc(t, `{"a":1}`)
	if _, err := d.Set("$bad", ir.Null(), SetAlways); !errors.Is(err, ir.ErrPath) {
		t.Errorf("bad path: got %v, want ErrPath", err)
	}
	// inserting through a wildcard has no single place to add the member
	if _, err := d.Set("$.x[*].y", ir.Null(), SetAlways); !errors.Is(err, ir.ErrStaticPath) {
		t.Errorf("wildcard insert: got %v, want ErrStaticPath", err)
	}
}
