package encode

import (
	"bytes"
	"strings"

	"github.com/RedisLabsModules/RedisDoc/ir"
)

// MustString renders a node in canonical compact form.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
