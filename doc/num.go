package doc

import (
	"math"

	"github.com/RedisLabsModules/RedisDoc/ir"
)

// NumOp applies a binary numeric operation at every match of path. The
// target must be a number and the mathematical result must be finite.
// INCRBY, MULTBY, and POWBY all route through here.
func (d *Document) NumOp(path string, number float64, op func(a, b float64) float64) (*ir.Node, error) {
	return d.valueOp(path, func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.NumberType {
			return nil, typeErr("number", y.Type)
		}
		res := op(y.Float(), number)
		if math.IsNaN(res) || math.IsInf(res, 0) {
			return nil, ErrNonFinite
		}
		return ir.FromFloat(res), nil
	})
}
