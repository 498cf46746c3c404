package doc

import "github.com/RedisLabsModules/RedisDoc/ir"

// Type reports the JSON type name of the first match of path.
func (d *Document) Type(path string) (string, error) {
	y, err := d.getFirst(path)
	if err != nil {
		return "", err
	}
	return y.Type.String(), nil
}

// Memory reports a rough in-memory byte count for the value at path.
func (d *Document) Memory(path string) (int, error) {
	y, err := d.getFirst(path)
	if err != nil {
		return 0, err
	}
	size := 0
	if err := y.Visit(func(node *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		switch node.Type {
		case ir.NullType:
			// free
		case ir.BoolType:
			size++
		case ir.NumberType:
			size += 8
		case ir.StringType:
			size += len(node.String)
		case ir.ArrayType, ir.ObjectType:
			size += 8 * len(node.Values)
			for _, f := range node.Fields {
				size += len(f)
			}
		}
		return true, nil
	}); err != nil {
		return 0, err
	}
	return size, nil
}
