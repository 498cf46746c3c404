package ir

// ListPath appends to dst every node matched by the path expression, in
// document order. An empty result means the path does not exist in y.
// Matches are clones; mutating them does not affect the tree.
func (y *Node) ListPath(dst []*Node, path string) ([]*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if yp.IsRoot() {
		return append(dst, y.Clone()), nil
	}
	return y.listPath(dst, yp)
}

func (y *Node) listPath(dst []*Node, yp *Path) ([]*Node, error) {
	if yp == nil {
		return append(dst, y.Clone()), nil
	}
	var err error
	if yp.Subtree {
		if yp.Next != nil && yp.Next.Subtree {
			return y.listPath(dst, yp.Next)
		}
		if err := y.Visit(func(node *Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			dst, err = node.listPath(dst, yp.Next)
			if err != nil {
				return false, err
			}
			return true, nil
		}); err != nil {
			return nil, err
		}
		return dst, nil
	}
	if yp.Filter != nil {
		for _, yv := range y.Values {
			if !yp.Filter.Match(yv) {
				continue
			}
			dst, err = yv.listPath(dst, yp.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	}
	switch y.Type {
	case ObjectType:
		if yp.IndexAll || yp.Index != nil {
			return dst, nil
		}
		if yp.FieldAll {
			for _, yv := range y.Values {
				dst, err = yv.listPath(dst, yp.Next)
				if err != nil {
					return nil, err
				}
			}
			return dst, nil
		}
		if yp.Field == nil && yp.Next == nil {
			return append(dst, y.Clone()), nil
		}
		field := *yp.Field
		for i := range y.Fields {
			if y.Fields[i] != field {
				continue
			}
			dst, err = y.Values[i].listPath(dst, yp.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil

	case ArrayType:
		if yp.Field != nil || yp.FieldAll {
			return dst, nil
		}
		if yp.Index == nil && !yp.IndexAll && yp.Next == nil {
			return append(dst, y.Clone()), nil
		}
		if yp.Index != nil {
			idx := *yp.Index
			if 0 <= idx && idx < len(y.Values) {
				dst, err = y.Values[idx].listPath(dst, yp.Next)
				if err != nil {
					return nil, err
				}
			}
			return dst, nil
		}
		if !yp.IndexAll {
			return dst, nil
		}
		for _, yv := range y.Values {
			dst, err = yv.listPath(dst, yp.Next)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil

	case StringType, NumberType, NullType, BoolType:
		if yp.Next == nil && yp.Field == nil && yp.Index == nil &&
			!yp.IndexAll && !yp.FieldAll {
			return append(dst, y.Clone()), nil
		}
		return dst, nil
	default:
		panic("type")
	}
}
