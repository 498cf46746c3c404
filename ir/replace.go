package ir

import "errors"

// ReplaceFunc is applied to every node a path matches during a rebuild.
// Returning a replacement swaps the node; returning nil removes it from its
// container. The argument must not be mutated.
type ReplaceFunc func(y *Node) (*Node, error)

// ReplacePath rebuilds the tree with fn applied at every match and returns
// the new root. The root path applies fn to y itself; removing the root
// yields a null document. Matches are processed independently: a failing
// match keeps its original value in the rebuilt tree, and the failures are
// aggregated into the returned error. Callers that need all-or-nothing
// semantics install the returned root only when the error is nil.
func (y *Node) ReplacePath(path string, fn ReplaceFunc) (*Node, error) {
	yp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if yp.IsRoot() {
		yp = nil
	}
	var errs []error
	res, keep := replacePath(y, yp, fn, &errs)
	if !keep {
		res = Null()
	}
	switch len(errs) {
	case 0:
		return res, nil
	case 1:
		return res, errs[0]
	default:
		return res, errors.Join(errs...)
	}
}

func replacePath(y *Node, yp *Path, fn ReplaceFunc, errs *[]error) (*Node, bool) {
	if yp == nil {
		nv, err := fn(y)
		if err != nil {
			*errs = append(*errs, err)
			return y, true
		}
		if nv == nil {
			return nil, false
		}
		return nv, true
	}
	if yp.Subtree {
		if yp.Next != nil && yp.Next.Subtree {
			return replacePath(y, yp.Next, fn, errs)
		}
		return replaceSubtree(y, yp, fn, errs)
	}
	if yp.Filter != nil {
		return replaceInChildren(y, func(yv *Node) (*Node, bool) {
			if !yp.Filter.Match(yv) {
				return yv, true
			}
			return replacePath(yv, yp.Next, fn, errs)
		})
	}
	switch y.Type {
	case ObjectType:
		if yp.Index != nil || yp.IndexAll {
			return y, true
		}
		return replaceObject(y, yp, fn, errs)
	case ArrayType:
		if yp.Field != nil || yp.FieldAll {
			return y, true
		}
		return replaceArray(y, yp, fn, errs)
	default:
		return y, true
	}
}

func replaceObject(y *Node, yp *Path, fn ReplaceFunc, errs *[]error) (*Node, bool) {
	res := &Node{Type: ObjectType}
	changed := false
	for i := range y.Fields {
		yv := y.Values[i]
		if yp.FieldAll || yp.Field != nil && y.Fields[i] == *yp.Field {
			nv, keep := replacePath(yv, yp.Next, fn, errs)
			if !keep {
				changed = true
				continue
			}
			if nv != yv {
				changed = true
			}
			yv = nv
		}
		res.Fields = append(res.Fields, y.Fields[i])
		res.Values = append(res.Values, yv)
	}
	if !changed {
		return y, true
	}
	return res, true
}

func replaceArray(y *Node, yp *Path, fn ReplaceFunc, errs *[]error) (*Node, bool) {
	res := &Node{Type: ArrayType}
	changed := false
	for i, yv := range y.Values {
		if yp.IndexAll || yp.Index != nil && i == *yp.Index {
			nv, keep := replacePath(yv, yp.Next, fn, errs)
			if !keep {
				changed = true
				continue
			}
			if nv != yv {
				changed = true
			}
			yv = nv
		}
		res.Values = append(res.Values, yv)
	}
	if !changed {
		return y, true
	}
	return res, true
}

// replaceSubtree walks the original tree pre-order applying the tail of a
// ".." segment at every visited node. A child the tail matched is handled
// by the tail alone and never descended into, so an installed replacement
// value cannot be matched again.
func replaceSubtree(y *Node, yp *Path, fn ReplaceFunc, errs *[]error) (*Node, bool) {
	tail := yp.Next
	if tail == nil || y.Type != ObjectType && y.Type != ArrayType {
		return y, true
	}
	res := &Node{Type: y.Type}
	changed := false
	for i, yv := range y.Values {
		var nv *Node
		var keep bool
		if subtreeTailMatch(y, i, tail) {
			nv, keep = replacePath(yv, tail.Next, fn, errs)
		} else {
			nv, keep = replaceSubtree(yv, yp, fn, errs)
		}
		if !keep {
			changed = true
			continue
		}
		if nv != yv {
			changed = true
		}
		if y.Type == ObjectType {
			res.Fields = append(res.Fields, y.Fields[i])
		}
		res.Values = append(res.Values, nv)
	}
	if !changed {
		return y, true
	}
	return res, true
}

// subtreeTailMatch reports whether the first tail segment addresses child i
// of y.
func subtreeTailMatch(y *Node, i int, seg *Path) bool {
	switch {
	case seg.Filter != nil:
		return seg.Filter.Match(y.Values[i])
	case seg.FieldAll:
		return y.Type == ObjectType
	case seg.Field != nil:
		return y.Type == ObjectType && y.Fields[i] == *seg.Field
	case seg.IndexAll:
		return y.Type == ArrayType
	case seg.Index != nil:
		return y.Type == ArrayType && i == *seg.Index
	}
	return false
}

// replaceInChildren rebuilds a container applying step to every child,
// keeping non-containers as they are.
func replaceInChildren(y *Node, step func(*Node) (*Node, bool)) (*Node, bool) {
	if y.Type != ObjectType && y.Type != ArrayType {
		return y, true
	}
	res := &Node{Type: y.Type}
	changed := false
	for i, yv := range y.Values {
		nv, keep := step(yv)
		if !keep {
			changed = true
			continue
		}
		if nv != yv {
			changed = true
		}
		if y.Type == ObjectType {
			res.Fields = append(res.Fields, y.Fields[i])
		}
		res.Values = append(res.Values, nv)
	}
	if !changed {
		return y, true
	}
	return res, true
}
