package ir

// Equal reports structural equality of two trees. Numbers compare by
// numeric value, so 1 and 1.0 are equal. Scalar matching in searches relies
// on this; array and object needles are rejected before equality is ever
// consulted.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		if a.Int64 != nil && b.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		return a.Float() == b.Float()
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			bv := b.Get(a.Fields[i])
			if bv == nil || !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}
