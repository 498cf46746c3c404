package parse

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/RedisLabsModules/RedisDoc/ir"
)

// parseBSON decodes a BSON document payload. The document's first element
// carries the value; an empty document decodes to null. This mirrors how
// BSON payloads wrap a single value, since top-level BSON is always a
// document.
func parseBSON(data []byte) (*ir.Node, error) {
	raw := bson.Raw(data)
	if err := raw.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	elems, err := raw.Elements()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(elems) == 0 {
		return ir.Null(), nil
	}
	node, err := bsonValue(elems[0].Value())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return node, nil
}

func bsonValue(v bson.RawValue) (*ir.Node, error) {
	switch v.Type {
	case bsontype.Null, bsontype.Undefined:
		return ir.Null(), nil
	case bsontype.Boolean:
		return ir.FromBool(v.Boolean()), nil
	case bsontype.Int32:
		return ir.FromInt(int64(v.Int32())), nil
	case bsontype.Int64:
		return ir.FromInt(v.Int64()), nil
	case bsontype.Double:
		return ir.FromFloat(v.Double()), nil
	case bsontype.String:
		return ir.FromString(v.StringValue()), nil
	case bsontype.EmbeddedDocument:
		elems, err := v.Document().Elements()
		if err != nil {
			return nil, err
		}
		res := &ir.Node{Type: ir.ObjectType}
		for _, el := range elems {
			key, err := el.KeyErr()
			if err != nil {
				return nil, err
			}
			val, err := bsonValue(el.Value())
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, key)
			res.Values = append(res.Values, val)
		}
		return res, nil
	case bsontype.Array:
		vals, err := v.Array().Values()
		if err != nil {
			return nil, err
		}
		res := &ir.Node{Type: ir.ArrayType}
		for _, av := range vals {
			val, err := bsonValue(av)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, val)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported BSON type %s", v.Type)
	}
}
