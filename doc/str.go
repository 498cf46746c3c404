package doc

import "github.com/RedisLabsModules/RedisDoc/ir"

// StrAppend concatenates s onto every string matched by path, returning
// the resulting length in bytes.
func (d *Document) StrAppend(path, s string) (int, error) {
	res, err := d.valueOp(path, func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.StringType {
			return nil, typeErr("string", y.Type)
		}
		return ir.FromString(y.String + s), nil
	})
	if err != nil {
		return 0, err
	}
	return len(res.String), nil
}

func (d *Document) StrLen(path string) (int, error) {
	y, err := d.getFirst(path)
	if err != nil {
		return 0, err
	}
	if y.Type != ir.StringType {
		return 0, typeErr("string", y.Type)
	}
	return len(y.String), nil
}
