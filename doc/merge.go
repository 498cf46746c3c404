package doc

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/RedisLabsModules/RedisDoc/encode"
	"github.com/RedisLabsModules/RedisDoc/format"
	"github.com/RedisLabsModules/RedisDoc/ir"
	"github.com/RedisLabsModules/RedisDoc/parse"
)

// Merge applies an RFC 7396 merge patch to every node matched by path:
// object members merge recursively, null patch members delete, anything
// else replaces.
func (d *Document) Merge(path string, patch []byte) error {
	pv, err := parse.Parse(patch, format.JSONFormat)
	if err != nil {
		return err
	}
	_, err = d.valueOp(path, func(y *ir.Node) (*ir.Node, error) {
		// A non-object patch replaces the target wholesale, and a
		// non-object target contributes nothing to the merge.
		if pv.Type != ir.ObjectType {
			return pv.Clone(), nil
		}
		target := []byte(encode.MustString(y))
		if y.Type != ir.ObjectType {
			target = []byte("{}")
		}
		merged, err := jsonpatch.MergePatch(target, patch)
		if err != nil {
			return nil, err
		}
		return parse.Parse(merged, format.JSONFormat)
	})
	return err
}
