// Package debug gates diagnostic logging on REDISDOC_DEBUG_* environment
// variables.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Path    bool
	Replace bool
	Codec   bool
	Command bool
	Server  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Path = boolEnv("REDISDOC_DEBUG_PATH")
	d.Replace = boolEnv("REDISDOC_DEBUG_REPLACE")
	d.Codec = boolEnv("REDISDOC_DEBUG_CODEC")
	d.Command = boolEnv("REDISDOC_DEBUG_COMMAND")
	d.Server = boolEnv("REDISDOC_DEBUG_SERVER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Path() bool {
	return d.Path
}
func Replace() bool {
	return d.Replace
}
func Codec() bool {
	return d.Codec
}
func Command() bool {
	return d.Command
}
func Server() bool {
	return d.Server
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	res, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(res)
}
