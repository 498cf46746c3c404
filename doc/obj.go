package doc

import (
	"slices"

	"github.com/RedisLabsModules/RedisDoc/ir"
)

// ObjKeys returns the member names of the object at path, in insertion
// order.
func (d *Document) ObjKeys(path string) ([]string, error) {
	y, err := d.getFirst(path)
	if err != nil {
		return nil, err
	}
	if y.Type != ir.ObjectType {
		return nil, typeErr("object", y.Type)
	}
	return slices.Clone(y.Fields), nil
}

func (d *Document) ObjLen(path string) (int, error) {
	y, err := d.getFirst(path)
	if err != nil {
		return 0, err
	}
	if y.Type != ir.ObjectType {
		return 0, typeErr("object", y.Type)
	}
	return len(y.Fields), nil
}
