// Package commands translates positional string arguments into typed calls
// against the store, one handler per command. Replies use the host's wire
// shapes: nil, int64, string, Status, or a slice of replies.
package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RedisLabsModules/RedisDoc/debug"
	"github.com/RedisLabsModules/RedisDoc/store"
)

// Status is a simple-status reply.
type Status string

const OK Status = "OK"

var (
	ErrWrongArity     = errors.New("ERR wrong number of arguments")
	ErrSyntax         = errors.New("ERR syntax error")
	ErrUnknownCommand = errors.New("ERR unknown command")
)

// Handler runs one command. args start at the key.
type Handler func(s *store.Store, args []string) (any, error)

var table = map[string]Handler{
	"JSON.DEL":       Del,
	"JSON.FORGET":    Del,
	"JSON.GET":       Get,
	"JSON.MGET":      MGet,
	"JSON.SET":       Set,
	"JSON.MERGE":     Merge,
	"JSON.TYPE":      Type,
	"JSON.NUMINCRBY": NumIncrBy,
	"JSON.NUMMULTBY": NumMultBy,
	"JSON.NUMPOWBY":  NumPowBy,
	"JSON.STRAPPEND": StrAppend,
	"JSON.STRLEN":    StrLen,
	"JSON.ARRAPPEND": ArrAppend,
	"JSON.ARRINDEX":  ArrIndex,
	"JSON.ARRINSERT": ArrInsert,
	"JSON.ARRLEN":    ArrLen,
	"JSON.ARRPOP":    ArrPop,
	"JSON.ARRTRIM":   ArrTrim,
	"JSON.OBJKEYS":   ObjKeys,
	"JSON.OBJLEN":    ObjLen,
	"JSON.DEBUG":     Debug,
}

// Commands lists the available command names.
func Commands() []string {
	res := make([]string, 0, len(table))
	for name := range table {
		res = append(res, name)
	}
	return res
}

// Dispatch routes one command invocation by name.
func Dispatch(s *store.Store, name string, args []string) (any, error) {
	h, ok := table[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	if debug.Command() {
		debug.Logf("command %s %s\n", strings.ToUpper(name), debug.JSON(args))
	}
	return h(s, args)
}

// argIter consumes positional arguments the way the host hands them over.
type argIter struct {
	args []string
	i    int
}

func (a *argIter) Next() (string, error) {
	if a.i >= len(a.args) {
		return "", ErrWrongArity
	}
	v := a.args[a.i]
	a.i++
	return v, nil
}

func (a *argIter) More() bool {
	return a.i < len(a.args)
}

func (a *argIter) Rest() []string {
	res := a.args[a.i:]
	a.i = len(a.args)
	return res
}

// backwardsCompatPath rewrites paths from clients predating the '$'
// syntax: "." means the root, anything else is a child of it.
func backwardsCompatPath(path string) string {
	if strings.HasPrefix(path, "$") {
		return path
	}
	if path == "." {
		return "$"
	}
	if strings.HasPrefix(path, ".") {
		return "$" + path
	}
	return "$." + path
}

// nextPath reads an optional trailing path argument.
func nextPath(a *argIter) string {
	if !a.More() {
		return "$"
	}
	p, _ := a.Next()
	return backwardsCompatPath(p)
}
