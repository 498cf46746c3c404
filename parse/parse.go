// Package parse decodes raw command payloads into document trees.
package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/RedisLabsModules/RedisDoc/format"
	"github.com/RedisLabsModules/RedisDoc/ir"
)

// ErrParse is wrapped by every payload decoding failure.
var ErrParse = errors.New("ERR invalid payload")

// Parse decodes a payload in the given format into a tree. JSON objects
// keep their key order and integral numbers stay exact.
func Parse(data []byte, f format.Format) (*ir.Node, error) {
	switch f {
	case format.JSONFormat:
		return parseJSON(data)
	case format.BSONFormat:
		return parseBSON(data)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}

func parseJSON(data []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	node, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after value", ErrParse)
	}
	return node, nil
}

func parseValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("unexpected %q", t)
		}
	case string:
		return ir.FromString(t), nil
	case json.Number:
		return numberNode(t)
	case bool:
		return ir.FromBool(t), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ObjectType}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return res, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, err
		}
		// last duplicate wins, order of first occurrence kept
		if prev := res.Get(key); prev != nil {
			for i := range res.Fields {
				if res.Fields[i] == key {
					res.Values[i] = val
					break
				}
			}
			continue
		}
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, val)
	}
}

func parseArray(dec *json.Decoder) (*ir.Node, error) {
	res := &ir.Node{Type: ir.ArrayType}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return res, nil
		}
		val, err := parseToken(dec, tok)
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, val)
	}
}

func numberNode(n json.Number) (*ir.Node, error) {
	res := &ir.Node{Type: ir.NumberType, Number: n.String()}
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		res.Int64 = &i
		return res, nil
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return nil, err
	}
	res.Float64 = &f
	return res, nil
}
