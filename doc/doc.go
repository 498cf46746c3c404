// Package doc implements the document data type: one JSON value tree per
// store key, with the per-command operation semantics layered over the
// path resolution and rebuild engine in ir.
package doc

import (
	"bytes"

	"github.com/RedisLabsModules/RedisDoc/debug"
	"github.com/RedisLabsModules/RedisDoc/encode"
	"github.com/RedisLabsModules/RedisDoc/format"
	"github.com/RedisLabsModules/RedisDoc/ir"
	"github.com/RedisLabsModules/RedisDoc/parse"
)

// Document holds the value tree stored under one key. The host guarantees
// exclusive write access per key; Document itself does no locking.
type Document struct {
	root *ir.Node
}

func New(root *ir.Node) *Document {
	return &Document{root: root}
}

// FromPayload parses a raw payload in the given format into a new
// document.
func FromPayload(data []byte, f format.Format) (*Document, error) {
	root, err := parse.Parse(data, f)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

func (d *Document) Root() *ir.Node {
	return d.root
}

// Serialize renders the first match of path.
func (d *Document) Serialize(path string, opts ...encode.EncodeOption) (string, error) {
	y, err := d.getFirst(path)
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SerializePaths renders an object mapping each path to its first match,
// with null standing in for paths that resolve nowhere.
func (d *Document) SerializePaths(paths []string) string {
	kvs := make([]ir.KeyVal, 0, len(paths))
	for _, p := range paths {
		v := ir.Null()
		if matches, err := d.root.ListPath(nil, p); err == nil && len(matches) > 0 {
			v = matches[0]
		}
		kvs = append(kvs, ir.KeyVal{Key: p, Val: v})
	}
	return encode.MustString(ir.FromKeyVals(kvs))
}

// getFirst resolves a path for a read; an empty result means the path does
// not exist.
func (d *Document) getFirst(path string) (*ir.Node, error) {
	matches, err := d.root.ListPath(nil, path)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrPathNotExist
	}
	return matches[0], nil
}

// valueOp applies fn to every node matched by path and installs the
// rebuilt tree. The returned node is the last replacement produced. The
// tree is left untouched when any match fails or when nothing matched.
func (d *Document) valueOp(path string, fn func(*ir.Node) (*ir.Node, error)) (*ir.Node, error) {
	var result *ir.Node
	applied := 0
	newRoot, err := d.root.ReplacePath(path, func(y *ir.Node) (*ir.Node, error) {
		nv, err := fn(y)
		if err != nil {
			return nil, err
		}
		applied++
		result = nv
		return nv, nil
	})
	if err != nil {
		return nil, err
	}
	if applied == 0 {
		return nil, ErrPathNotExist
	}
	if debug.Replace() {
		debug.Logf("replace %s applied %d times\n", path, applied)
	}
	d.root = newRoot
	return result, nil
}
