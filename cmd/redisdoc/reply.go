package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/RedisLabsModules/RedisDoc/commands"
)

// printReply renders a command result one line per value, the way a
// redis client would.
func printReply(w io.Writer, v any) {
	switch t := v.(type) {
	case nil:
		fmt.Fprintln(w, "(nil)")
	case commands.Status:
		fmt.Fprintln(w, string(t))
	case string:
		fmt.Fprintln(w, t)
	case int64:
		fmt.Fprintf(w, "(integer) %d\n", t)
	case float64:
		fmt.Fprintln(w, strconv.FormatFloat(t, 'g', -1, 64))
	case []any:
		for i, el := range t {
			fmt.Fprintf(w, "%d) ", i+1)
			printReply(w, el)
		}
	default:
		fmt.Fprintf(w, "%v\n", t)
	}
}
