package doc

import "github.com/RedisLabsModules/RedisDoc/ir"

// SetOption restricts when a set takes effect.
type SetOption int

const (
	SetAlways SetOption = iota
	// SetNotExists only writes where the path does not resolve yet.
	SetNotExists
	// SetAlreadyExists only overwrites an existing value.
	SetAlreadyExists
)

// Set writes value at path. The root path swaps the whole document.
// Elsewhere an existing match is replaced; failing that, the value is
// inserted as a new object member. Reports whether anything was written;
// a guarded no-op is not an error.
func (d *Document) Set(path string, value *ir.Node, opt SetOption) (bool, error) {
	yp, err := ir.ParsePath(path)
	if err != nil {
		return false, err
	}
	if yp.IsRoot() {
		if opt == SetNotExists {
			return false, nil
		}
		d.root = value
		return true, nil
	}
	if opt != SetNotExists {
		replaced := false
		newRoot, err := d.root.ReplacePath(path, func(*ir.Node) (*ir.Node, error) {
			replaced = true
			return value.Clone(), nil
		})
		if err != nil {
			return false, err
		}
		if replaced {
			d.root = newRoot
			return true, nil
		}
	}
	if opt != SetAlreadyExists {
		return d.addValue(yp, value)
	}
	return false, nil
}

// addValue inserts value as a new object member named by the path's last
// segment, everywhere the prefix resolves to an object that lacks the key.
// The path must be static.
func (d *Document) addValue(yp *ir.Path, value *ir.Node) (bool, error) {
	if !yp.IsStatic() {
		return false, ir.ErrStaticPath
	}
	prefix, key, ok := yp.SplitLast()
	if !ok {
		return false, ir.ErrStaticPath
	}
	if prefix == nil {
		return d.root.InsertField(key, value.Clone()), nil
	}
	set := false
	newRoot, err := d.root.ReplacePath(prefix.String(), func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.ObjectType {
			return y, nil
		}
		ny := y.Clone()
		if ny.InsertField(key, value.Clone()) {
			set = true
			return ny, nil
		}
		return y, nil
	})
	if err != nil {
		return false, err
	}
	if set {
		d.root = newRoot
	}
	return set, nil
}
