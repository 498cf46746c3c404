// Package ir contains the document value model: a tagged JSON tree
// together with the path language used to address and rewrite parts of it.
package ir

import (
	"math"
	"strconv"
)

// Node is one value in a document tree. Objects keep Fields and Values in
// parallel, with keys unique and insertion order preserved; arrays use
// Values only. Numbers carry either an exact integer or a double, plus the
// raw source literal when the node came from a parser.
type Node struct {
	Type Type

	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Int64   *int64
	Float64 *float64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	if f == math.Trunc(f) && math.Abs(f) < (1<<53) {
		return FromInt(int64(f))
	}
	return &Node{Type: NumberType, Float64: &f}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

// Float returns the numeric value of a number node.
func (y *Node) Float() float64 {
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	if y.Float64 != nil {
		return *y.Float64
	}
	f, _ := strconv.ParseFloat(y.Number, 64)
	return f
}

// Get returns the value under field, or nil when absent or y is not an
// object.
func (y *Node) Get(field string) *Node {
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// InsertField adds a new member to an object node. It reports false without
// touching y when y is not an object or the key already exists.
func (y *Node) InsertField(key string, v *Node) bool {
	if y.Type != ObjectType {
		return false
	}
	if y.Get(key) != nil {
		return false
	}
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
	return true
}

func (y *Node) Clone() *Node {
	dst := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Fields != nil {
		dst.Fields = make([]string, len(y.Fields))
		copy(dst.Fields, y.Fields)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// Visit walks the tree in preorder and postorder. The callback returns
// whether to descend into container values.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// ToAny converts the tree to the encoding/json value shapes, for handing a
// node to expression evaluation or external JSON tooling.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i := range y.Fields {
			res[y.Fields[i]] = ToAny(y.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, elt := range y.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		return y.Float()
	case BoolType:
		return y.Bool
	case NullType:
		return nil
	default:
		panic("type")
	}
}
