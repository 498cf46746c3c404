package doc

import (
	"slices"

	"github.com/RedisLabsModules/RedisDoc/ir"
)

// ArrAppend appends items in argument order to every array matched by
// path, returning the resulting length.
func (d *Document) ArrAppend(path string, items []*ir.Node) (int, error) {
	res, err := d.valueOp(path, func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.ArrayType {
			return nil, typeErr("array", y.Type)
		}
		vals := slices.Clone(y.Values)
		for _, item := range items {
			vals = append(vals, item.Clone())
		}
		return ir.FromSlice(vals), nil
	})
	if err != nil {
		return 0, err
	}
	return len(res.Values), nil
}

// ArrInsert inserts items at increasing offsets starting at index, which
// may be negative to count from the end. An index whose magnitude reaches
// the array length is out of bounds.
func (d *Document) ArrInsert(path string, index int64, items []*ir.Node) (int, error) {
	res, err := d.valueOp(path, func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.ArrayType {
			return nil, typeErr("array", y.Type)
		}
		n := int64(len(y.Values))
		if index >= n || -index >= n {
			return nil, ErrIndexBounds
		}
		at := index
		if at < 0 {
			at += n
		}
		vals := make([]*ir.Node, 0, len(y.Values)+len(items))
		vals = append(vals, y.Values[:at]...)
		for _, item := range items {
			vals = append(vals, item.Clone())
		}
		vals = append(vals, y.Values[at:]...)
		return ir.FromSlice(vals), nil
	})
	if err != nil {
		return 0, err
	}
	return len(res.Values), nil
}

// ArrPop removes and returns the element at index, default the last one.
// Negative indices count from the end and are clamped to the front; an
// empty array is out of bounds.
func (d *Document) ArrPop(path string, index int64) (*ir.Node, error) {
	var popped *ir.Node
	_, err := d.valueOp(path, func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.ArrayType {
			return nil, typeErr("array", y.Type)
		}
		n := int64(len(y.Values))
		at := min(index, n-1)
		if at < 0 {
			at += n
		}
		if at < 0 && n > 0 {
			at = 0
		}
		if at < 0 || at >= n {
			return nil, ErrIndexBounds
		}
		popped = y.Values[at].Clone()
		vals := make([]*ir.Node, 0, n-1)
		vals = append(vals, y.Values[:at]...)
		vals = append(vals, y.Values[at+1:]...)
		return ir.FromSlice(vals), nil
	})
	if err != nil {
		return nil, err
	}
	return popped, nil
}

// ArrTrim keeps the inclusive slice [start, stop], clamping stop into the
// array bounds and start into [0, stop]. A requested start beyond stop is
// pulled down to stop, never the reverse. Returns the resulting length.
func (d *Document) ArrTrim(path string, start, stop int64) (int, error) {
	res, err := d.valueOp(path, func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.ArrayType {
			return nil, typeErr("array", y.Type)
		}
		n := int64(len(y.Values))
		if n == 0 {
			return ir.FromSlice(nil), nil
		}
		lo, hi := start, stop
		if hi > n-1 {
			hi = n - 1
		}
		if hi < 0 {
			hi = 0
		}
		if lo < 0 {
			lo = 0
		}
		if lo > hi {
			lo = hi
		}
		return ir.FromSlice(slices.Clone(y.Values[lo : hi+1])), nil
	})
	if err != nil {
		return 0, err
	}
	return len(res.Values), nil
}

// ArrIndex scans the array at path for the first element structurally
// equal to needle within [start, stop], both clamped into bounds, and
// returns the absolute index or -1. Only scalar needles can match.
func (d *Document) ArrIndex(path string, needle *ir.Node, start, stop int64) (int64, error) {
	y, err := d.getFirst(path)
	if err != nil {
		return 0, err
	}
	if y.Type != ir.ArrayType {
		return -1, nil
	}
	if !needle.Type.IsScalar() {
		return -1, nil
	}
	n := int64(len(y.Values))
	if n == 0 {
		return -1, nil
	}
	lo := max(start, 0)
	hi := min(stop, n-1)
	if hi < 0 {
		return -1, nil
	}
	lo = min(lo, hi)
	for i := lo; i <= hi; i++ {
		if ir.Equal(y.Values[i], needle) {
			return i, nil
		}
	}
	return -1, nil
}

func (d *Document) ArrLen(path string) (int, error) {
	y, err := d.getFirst(path)
	if err != nil {
		return 0, err
	}
	if y.Type != ir.ArrayType {
		return 0, typeErr("array", y.Type)
	}
	return len(y.Values), nil
}
