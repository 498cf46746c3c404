package commands

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/RedisLabsModules/RedisDoc/doc"
	"github.com/RedisLabsModules/RedisDoc/encode"
	"github.com/RedisLabsModules/RedisDoc/format"
	"github.com/RedisLabsModules/RedisDoc/ir"
	"github.com/RedisLabsModules/RedisDoc/parse"
	"github.com/RedisLabsModules/RedisDoc/store"
)

// Set implements JSON.SET key path json [NX|XX] [FORMAT JSON|BSON].
func Set(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	rawPath, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := backwardsCompatPath(rawPath)
	payload, err := it.Next()
	if err != nil {
		return nil, err
	}
	opt := doc.SetAlways
	f := format.JSONFormat
	for it.More() {
		arg, _ := it.Next()
		switch strings.ToUpper(arg) {
		case "NX":
			opt = doc.SetNotExists
		case "XX":
			opt = doc.SetAlreadyExists
		case "FORMAT":
			v, err := it.Next()
			if err != nil {
				return nil, err
			}
			if f, err = format.ParseFormat(v); err != nil {
				return nil, err
			}
		default:
			return nil, ErrSyntax
		}
	}

	var res any
	err = s.Update(key, func(cur *doc.Document) (*doc.Document, error) {
		if cur == nil {
			if opt == doc.SetAlreadyExists {
				return nil, nil
			}
			if path != "$" {
				return nil, doc.ErrRootRequired
			}
			nd, err := doc.FromPayload([]byte(payload), f)
			if err != nil {
				return nil, err
			}
			res = OK
			return nd, nil
		}
		node, err := parse.Parse([]byte(payload), f)
		if err != nil {
			return nil, err
		}
		wrote, err := cur.Set(path, node, opt)
		if err != nil {
			return nil, err
		}
		if wrote {
			res = OK
		}
		return cur, nil
	})
	return res, err
}

// Del implements JSON.DEL key [path] and its FORGET alias. The root path
// removes the key itself.
func Del(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := nextPath(it)
	if path == "$" {
		if s.Delete(key) {
			return int64(1), nil
		}
		return int64(0), nil
	}
	deleted := int64(0)
	err = s.Update(key, func(cur *doc.Document) (*doc.Document, error) {
		if cur == nil {
			return nil, nil
		}
		n, err := cur.Delete(path)
		if err != nil {
			return nil, err
		}
		deleted = int64(n)
		return cur, nil
	})
	return deleted, err
}

// Merge implements JSON.MERGE key path json, an RFC 7396 merge patch at
// every match. A root merge on an absent key creates the document.
func Merge(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	rawPath, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := backwardsCompatPath(rawPath)
	payload, err := it.Next()
	if err != nil {
		return nil, err
	}
	err = s.Update(key, func(cur *doc.Document) (*doc.Document, error) {
		if cur == nil {
			if path != "$" {
				return nil, doc.ErrRootRequired
			}
			return doc.FromPayload([]byte(payload), format.JSONFormat)
		}
		if err := cur.Merge(path, []byte(payload)); err != nil {
			return nil, err
		}
		return cur, nil
	})
	if err != nil {
		return nil, err
	}
	return OK, nil
}

func NumIncrBy(s *store.Store, args []string) (any, error) {
	return numOp(s, args, func(a, b float64) float64 { return a + b })
}

func NumMultBy(s *store.Store, args []string) (any, error) {
	return numOp(s, args, func(a, b float64) float64 { return a * b })
}

func NumPowBy(s *store.Store, args []string) (any, error) {
	return numOp(s, args, math.Pow)
}

// numOp is the shared binary numeric routine behind the three JSON.NUM*
// commands. The reply is the serialized result number.
func numOp(s *store.Store, args []string, op func(a, b float64) float64) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	rawPath, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := backwardsCompatPath(rawPath)
	numArg, err := it.Next()
	if err != nil {
		return nil, err
	}
	number, err := strconv.ParseFloat(numArg, 64)
	if err != nil {
		return nil, errors.New("ERR value is not a number")
	}
	var res any
	err = s.Update(key, func(cur *doc.Document) (*doc.Document, error) {
		if cur == nil {
			return nil, doc.ErrAbsentKey
		}
		node, err := cur.NumOp(path, number, op)
		if err != nil {
			return nil, err
		}
		res = encode.MustString(node)
		return cur, nil
	})
	return res, err
}

// StrAppend implements JSON.STRAPPEND key [path] json-string. The path is
// optional and defaults to the root.
func StrAppend(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := "$"
	payload, err := it.Next()
	if err != nil {
		return nil, err
	}
	if it.More() {
		path = backwardsCompatPath(payload)
		payload, _ = it.Next()
	}
	node, err := parse.Parse([]byte(payload), format.JSONFormat)
	if err != nil {
		return nil, err
	}
	if node.Type != ir.StringType {
		return nil, errors.New("ERR expected a JSON string argument")
	}
	var res any
	err = s.Update(key, func(cur *doc.Document) (*doc.Document, error) {
		if cur == nil {
			return nil, doc.ErrAbsentKey
		}
		n, err := cur.StrAppend(path, node.String)
		if err != nil {
			return nil, err
		}
		res = int64(n)
		return cur, nil
	})
	return res, err
}

// ArrAppend implements JSON.ARRAPPEND key path json [json ...].
func ArrAppend(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	rawPath, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := backwardsCompatPath(rawPath)
	items, err := parseItems(it)
	if err != nil {
		return nil, err
	}
	var res any
	err = s.Update(key, func(cur *doc.Document) (*doc.Document, error) {
		if cur == nil {
			return nil, doc.ErrAbsentKey
		}
		n, err := cur.ArrAppend(path, items)
		if err != nil {
			return nil, err
		}
		res = int64(n)
		return cur, nil
	})
	return res, err
}

// ArrInsert implements JSON.ARRINSERT key path index json [json ...].
func ArrInsert(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	rawPath, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := backwardsCompatPath(rawPath)
	index, err := nextInt(it)
	if err != nil {
		return nil, err
	}
	items, err := parseItems(it)
	if err != nil {
		return nil, err
	}
	var res any
	err = s.Update(key, func(cur *doc.Document) (*doc.Document, error) {
		if cur == nil {
			return nil, doc.ErrAbsentKey
		}
		n, err := cur.ArrInsert(path, index, items)
		if err != nil {
			return nil, err
		}
		res = int64(n)
		return cur, nil
	})
	return res, err
}

// ArrPop implements JSON.ARRPOP key [path [index]].
func ArrPop(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := "$"
	index := int64(math.MaxInt64)
	if it.More() {
		p, _ := it.Next()
		path = backwardsCompatPath(p)
		if it.More() {
			if index, err = nextInt(it); err != nil {
				return nil, err
			}
		}
	}
	var res any
	err = s.Update(key, func(cur *doc.Document) (*doc.Document, error) {
		if cur == nil {
			return nil, doc.ErrAbsentKey
		}
		popped, err := cur.ArrPop(path, index)
		if err != nil {
			return nil, err
		}
		res = encode.MustString(popped)
		return cur, nil
	})
	return res, err
}

// ArrTrim implements JSON.ARRTRIM key path start stop.
func ArrTrim(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	rawPath, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := backwardsCompatPath(rawPath)
	start, err := nextInt(it)
	if err != nil {
		return nil, err
	}
	stop, err := nextInt(it)
	if err != nil {
		return nil, err
	}
	var res any
	err = s.Update(key, func(cur *doc.Document) (*doc.Document, error) {
		if cur == nil {
			return nil, doc.ErrAbsentKey
		}
		n, err := cur.ArrTrim(path, start, stop)
		if err != nil {
			return nil, err
		}
		res = int64(n)
		return cur, nil
	})
	return res, err
}

func parseItems(it *argIter) ([]*ir.Node, error) {
	rest := it.Rest()
	if len(rest) == 0 {
		return nil, ErrWrongArity
	}
	items := make([]*ir.Node, 0, len(rest))
	for _, raw := range rest {
		node, err := parse.Parse([]byte(raw), format.JSONFormat)
		if err != nil {
			return nil, err
		}
		items = append(items, node)
	}
	return items, nil
}

func nextInt(it *argIter) (int64, error) {
	v, err := it.Next()
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, errors.New("ERR value is not an integer or out of range")
	}
	return i, nil
}
