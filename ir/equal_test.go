package ir

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"null", Null(), Null(), true},
		{"null vs false", Null(), FromBool(false), false},
		{"bool", FromBool(true), FromBool(true), true},
		{"bool mismatch", FromBool(true), FromBool(false), false},
		{"string", FromString("a"), FromString("a"), true},
		{"string mismatch", FromString("a"), FromString("b"), false},
		{"int", FromInt(1), FromInt(1), true},
		{"int vs float same value", FromInt(1), &Node{Type: NumberType, Float64: ptrFloat(1.0)}, true},
		{"int vs float different", FromInt(1), &Node{Type: NumberType, Float64: ptrFloat(1.5)}, false},
		{"number vs string", FromInt(1), FromString("1"), false},
		{
			"array",
			FromSlice([]*Node{FromInt(1), FromString("a")}),
			FromSlice([]*Node{FromInt(1), FromString("a")}),
			true,
		},
		{
			"array length mismatch",
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			false,
		},
		{
			"array order matters",
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(2), FromInt(1)}),
			false,
		},
		{
			"object key order ignored",
			FromKeyVals([]KeyVal{kv("a", FromInt(1)), kv("b", FromInt(2))}),
			FromKeyVals([]KeyVal{kv("b", FromInt(2)), kv("a", FromInt(1))}),
			true,
		},
		{
			"object value mismatch",
			FromKeyVals([]KeyVal{kv("a", FromInt(1))}),
			FromKeyVals([]KeyVal{kv("a", FromInt(2))}),
			false,
		},
		{
			"object extra key",
			FromKeyVals([]KeyVal{kv("a", FromInt(1))}),
			FromKeyVals([]KeyVal{kv("a", FromInt(1)), kv("b", FromInt(2))}),
			false,
		},
		{
			"nested",
			storeDoc(),
			storeDoc(),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func ptrFloat(f float64) *float64 { return &f }

func TestNode_FromFloat(t *testing.T) {
	if y := FromFloat(3.0); y.Int64 == nil || *y.Int64 != 3 {
		t.Error("integral float should normalize to Int64")
	}
	if y := FromFloat(3.5); y.Float64 == nil || *y.Float64 != 3.5 {
		t.Error("fractional float should keep Float64")
	}
	big := 1e300
	if y := FromFloat(big); y.Float64 == nil || *y.Float64 != big {
		t.Error("huge integral float must not truncate to Int64")
	}
}

func TestNode_InsertField(t *testing.T) {
	y := FromKeyVals([]KeyVal{kv("a", FromInt(1))})
	if !y.InsertField("b", FromInt(2)) {
		t.Fatal("inserting a fresh key should report true")
	}
	if y.InsertField("a", FromInt(3)) {
		t.Fatal("inserting an existing key should report false")
	}
	if len(y.Fields) != 2 || y.Get("a").Float() != 1 || y.Get("b").Float() != 2 {
		t.Errorf("unexpected object state: %v %v", y.Fields, y.Values)
	}
}

func TestNode_CloneIsDeep(t *testing.T) {
	y := storeDoc()
	c := y.Clone()
	c.Get("meta").Values[0] = FromString("other")
	c.Get("inventory").Values[0].Values[1] = FromInt(99)
	if !Equal(y, storeDoc()) {
		t.Error("mutating the clone changed the original")
	}
}
