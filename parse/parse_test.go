package parse

import (
	"errors"
	"testing"

	"github.com/RedisLabsModules/RedisDoc/format"
	"github.com/RedisLabsModules/RedisDoc/ir"
)

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *ir.Node
	}{
		{"null", "null", ir.Null()},
		{"true", "true", ir.FromBool(true)},
		{"string", `"hi"`, ir.FromString("hi")},
		{"int", "42", ir.FromInt(42)},
		{"float", "1.5", ir.FromFloat(1.5)},
		{"negative", "-7", ir.FromInt(-7)},
		{"empty array", "[]", ir.FromSlice(nil)},
		{"empty object", "{}", ir.FromKeyVals(nil)},
		{
			"array",
			`[1, "two", null]`,
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("two"), ir.Null()}),
		},
		{
			"object",
			`{"a": 1, "b": {"c": [true]}}`,
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "a", Val: ir.FromInt(1)},
				{Key: "b", Val: ir.FromKeyVals([]ir.KeyVal{
					{Key: "c", Val: ir.FromSlice([]*ir.Node{ir.FromBool(true)})},
				})},
			}),
		},
		{
			"whitespace", " { \"a\" :\n1 } ",
			ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in), format.JSONFormat)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("Parse(%q) mismatch", tt.in)
			}
		})
	}
}

func TestParseJSON_KeyOrder(t *testing.T) {
	got, err := Parse([]byte(`{"z": 1, "a": 2, "m": 3}`), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	for i, f := range want {
		if got.Fields[i] != f {
			t.Fatalf("field order %v, want %v", got.Fields, want)
		}
	}
}

func TestParseJSON_DuplicateKeys(t *testing.T) {
	got, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(got.Fields))
	}
	if got.Fields[0] != "a" || got.Get("a").Float() != 3 {
		t.Errorf("duplicate key should keep first position, last value: %v %v",
			got.Fields, got.Get("a"))
	}
}

func TestParseJSON_Numbers(t *testing.T) {
	got, err := Parse([]byte("9007199254740993"), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if got.Int64 == nil || *got.Int64 != 9007199254740993 {
		t.Error("large integer should stay exact")
	}
	if got.Number != "9007199254740993" {
		t.Errorf("raw literal lost: %q", got.Number)
	}

	got, err = Parse([]byte("1e2"), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if got.Float64 == nil || *got.Float64 != 100 {
		t.Error("exponent form should parse as float")
	}
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"garbage", "{"},
		{"bare word", "tru"},
		{"trailing data", `{"a": 1} extra`},
		{"two values", "1 2"},
		{"unterminated string", `"abc`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.in), format.JSONFormat); !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) = %v, want ErrParse", tt.in, err)
			}
		})
	}
}

func TestParse_BadFormat(t *testing.T) {
	if _, err := Parse([]byte("{}"), format.Format(99)); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v, want ErrBadFormat", err)
	}
}
