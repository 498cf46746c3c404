package doc

import "github.com/RedisLabsModules/RedisDoc/ir"

// Delete removes every node matched by path and returns how many non-null
// matches were removed. Removing a subtree counts once regardless of how
// many descendants go with it.
func (d *Document) Delete(path string) (int, error) {
	deleted := 0
	newRoot, err := d.root.ReplacePath(path, func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.NullType {
			deleted++
		}
		return nil, nil
	})
	if err != nil {
		return 0, err
	}
	d.root = newRoot
	return deleted, nil
}
