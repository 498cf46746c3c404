// Package encode renders document trees as JSON text. The zero
// configuration produces the canonical compact form used for replies and
// persistence; options add the GET command's indent/newline/space styling
// and terminal colors.
package encode

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/RedisLabsModules/RedisDoc/ir"
)

type EncState struct {
	indent  string
	newline string
	space   string
	depth   int

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(y *ir.Node, w io.Writer, es *EncState) error {
	switch y.Type {
	case ir.NullType:
		return writeValue(w, es, y.Type, "null")
	case ir.BoolType:
		return writeValue(w, es, y.Type, strconv.FormatBool(y.Bool))
	case ir.NumberType:
		return writeValue(w, es, y.Type, numberLiteral(y))
	case ir.StringType:
		return writeValue(w, es, y.Type, quote(y.String))
	case ir.ArrayType:
		return encodeArray(y, w, es)
	case ir.ObjectType:
		return encodeObject(y, w, es)
	default:
		panic("type")
	}
}

func encodeArray(y *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, yv := range y.Values {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeBreak(w, es); err != nil {
			return err
		}
		if err := encode(yv, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(y.Values) > 0 {
		if err := writeBreak(w, es); err != nil {
			return err
		}
	}
	return writeString(w, "]")
}

func encodeObject(y *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	for i := range y.Fields {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeBreak(w, es); err != nil {
			return err
		}
		key := quote(y.Fields[i])
		if es.Color != nil {
			key = es.Color(ir.ObjectType, FieldColor, key)
		}
		if err := writeString(w, key+":"+es.space); err != nil {
			return err
		}
		if err := encode(y.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(y.Fields) > 0 {
		if err := writeBreak(w, es); err != nil {
			return err
		}
	}
	return writeString(w, "}")
}

// numberLiteral keeps the source literal when the node came from a parser,
// so documents read back exactly as written.
func numberLiteral(y *ir.Node) string {
	if y.Number != "" {
		return y.Number
	}
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
}

func quote(s string) string {
	d, err := json.Marshal(s)
	if err != nil {
		// strings always marshal
		panic(err)
	}
	return string(d)
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeBreak(w io.Writer, es *EncState) error {
	if es.newline == "" && es.indent == "" {
		return nil
	}
	out := es.newline
	for range es.depth {
		out += es.indent
	}
	return writeString(w, out)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
