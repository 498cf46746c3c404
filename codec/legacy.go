package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/RedisLabsModules/RedisDoc/ir"
)

// Legacy structural layout (version 0): a preorder dump of the tree. Each
// node starts with a uvarint kind tag; scalars carry their payload inline,
// containers a uvarint count followed by their children (objects as
// key/value pairs, keys length-prefixed). Kept only to migrate records
// written before the text encoding; nothing produces it anymore.
const (
	legacyNull = iota
	legacyFalse
	legacyTrue
	legacyInt
	legacyFloat
	legacyString
	legacyArray
	legacyObject
)

func legacyDecode(r *bytes.Reader) (*ir.Node, error) {
	kind, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	switch kind {
	case legacyNull:
		return ir.Null(), nil
	case legacyFalse:
		return ir.FromBool(false), nil
	case legacyTrue:
		return ir.FromBool(true), nil
	case legacyInt:
		i, err := binary.ReadVarint(r)
		if err != nil {
			return nil, err
		}
		return ir.FromInt(i), nil
	case legacyFloat:
		var bits uint64
		if err := binary.Read(r, binary.LittleEndian, &bits); err != nil {
			return nil, err
		}
		return &ir.Node{Type: ir.NumberType, Float64: ptr(math.Float64frombits(bits))}, nil
	case legacyString:
		s, err := legacyReadString(r)
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case legacyArray:
		n, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, err
		}
		res := &ir.Node{Type: ir.ArrayType}
		for range n {
			v, err := legacyDecode(r)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, v)
		}
		return res, nil
	case legacyObject:
		n, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, err
		}
		res := &ir.Node{Type: ir.ObjectType}
		for range n {
			key, err := legacyReadString(r)
			if err != nil {
				return nil, err
			}
			v, err := legacyDecode(r)
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, key)
			res.Values = append(res.Values, v)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unknown legacy node kind %d", kind)
	}
}

func legacyReadString(r *bytes.Reader) (string, error) {
	d, err := readBytes(r)
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func ptr[T any](v T) *T { return &v }
