package parse

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/RedisLabsModules/RedisDoc/format"
	"github.com/RedisLabsModules/RedisDoc/ir"
)

func mustBSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := bson.Marshal(bson.D{{Key: "v", Value: v}})
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestParseBSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *ir.Node
	}{
		{"null", nil, ir.Null()},
		{"bool", true, ir.FromBool(true)},
		{"int32", int32(7), ir.FromInt(7)},
		{"int64", int64(1 << 40), ir.FromInt(1 << 40)},
		{"double", 2.5, ir.FromFloat(2.5)},
		{"string", "hello", ir.FromString("hello")},
		{
			"document",
			bson.D{{Key: "a", Value: int32(1)}, {Key: "b", Value: "x"}},
			ir.FromKeyVals([]ir.KeyVal{
				{Key: "a", Val: ir.FromInt(1)},
				{Key: "b", Val: ir.FromString("x")},
			}),
		},
		{
			"array",
			bson.A{int32(1), "two", nil},
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("two"), ir.Null()}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(mustBSON(t, tt.in), format.BSONFormat)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("decoded value mismatch")
			}
		})
	}
}

func TestParseBSON_EmptyDocument(t *testing.T) {
	data, err := bson.Marshal(bson.D{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse(data, format.BSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != ir.NullType {
		t.Errorf("empty document should decode to null, got %s", got.Type)
	}
}

func TestParseBSON_Invalid(t *testing.T) {
	if _, err := Parse([]byte{0x01, 0x02, 0x03}, format.BSONFormat); !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}

func TestParseBSON_UnsupportedType(t *testing.T) {
	// binary values have no document representation
	data := mustBSON(t, []byte{1, 2, 3})
	if _, err := Parse(data, format.BSONFormat); !errors.Is(err, ErrParse) {
		t.Errorf("got %v, want ErrParse", err)
	}
}
