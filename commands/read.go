package commands

import (
	"errors"
	"math"
	"strings"

	"github.com/RedisLabsModules/RedisDoc/doc"
	"github.com/RedisLabsModules/RedisDoc/encode"
	"github.com/RedisLabsModules/RedisDoc/format"
	"github.com/RedisLabsModules/RedisDoc/parse"
	"github.com/RedisLabsModules/RedisDoc/store"
)

// Get implements JSON.GET key [INDENT s] [NEWLINE s] [SPACE s] [NOESCAPE]
// [path ...]. With several paths the reply is an object keyed by path.
// Absent keys and unmatched paths reply nil.
func Get(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	var encOpts []encode.EncodeOption
	var paths []string
	for it.More() {
		arg, _ := it.Next()
		switch strings.ToUpper(arg) {
		case "INDENT":
			v, err := it.Next()
			if err != nil {
				return nil, err
			}
			encOpts = append(encOpts, encode.Indent(v))
		case "NEWLINE":
			v, err := it.Next()
			if err != nil {
				return nil, err
			}
			encOpts = append(encOpts, encode.Newline(v))
		case "SPACE":
			v, err := it.Next()
			if err != nil {
				return nil, err
			}
			encOpts = append(encOpts, encode.Space(v))
		case "NOESCAPE":
			// accepted for compatibility, escaping is never applied
		default:
			paths = append(paths, backwardsCompatPath(arg))
		}
	}
	if len(paths) == 0 {
		paths = []string{"$"}
	}
	var res any
	err = s.View(key, func(cur *doc.Document) error {
		if cur == nil {
			return nil
		}
		if len(paths) > 1 {
			res = cur.SerializePaths(paths)
			return nil
		}
		out, err := cur.Serialize(paths[0], encOpts...)
		if err != nil {
			if errors.Is(err, doc.ErrPathNotExist) {
				return nil
			}
			return err
		}
		res = out
		return nil
	})
	return res, err
}

// MGet implements JSON.MGET key [key ...] path: the same path serialized
// from every key, nil where the key is absent or the path unmatched.
func MGet(s *store.Store, args []string) (any, error) {
	if len(args) < 2 {
		return nil, ErrWrongArity
	}
	path := backwardsCompatPath(args[len(args)-1])
	keys := args[:len(args)-1]
	res := make([]any, len(keys))
	for i, key := range keys {
		err := s.View(key, func(cur *doc.Document) error {
			if cur == nil {
				return nil
			}
			out, err := cur.Serialize(path)
			if err != nil {
				if errors.Is(err, doc.ErrPathNotExist) {
					return nil
				}
				return err
			}
			res[i] = out
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Type implements JSON.TYPE key [path].
func Type(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := nextPath(it)
	var res any
	err = s.View(key, func(cur *doc.Document) error {
		if cur == nil {
			return nil
		}
		t, err := cur.Type(path)
		if err != nil {
			if errors.Is(err, doc.ErrPathNotExist) {
				return nil
			}
			return err
		}
		res = t
		return nil
	})
	return res, err
}

func StrLen(s *store.Store, args []string) (any, error) {
	return lenOp(s, args, (*doc.Document).StrLen)
}

func ArrLen(s *store.Store, args []string) (any, error) {
	return lenOp(s, args, (*doc.Document).ArrLen)
}

func ObjLen(s *store.Store, args []string) (any, error) {
	return lenOp(s, args, (*doc.Document).ObjLen)
}

// lenOp shares the key/path plumbing of the three length commands.
func lenOp(s *store.Store, args []string, fn func(*doc.Document, string) (int, error)) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := nextPath(it)
	var res any
	err = s.View(key, func(cur *doc.Document) error {
		if cur == nil {
			return nil
		}
		n, err := fn(cur, path)
		if err != nil {
			return err
		}
		res = int64(n)
		return nil
	})
	return res, err
}

// ObjKeys implements JSON.OBJKEYS key [path].
func ObjKeys(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	key, err := it.Next()
	if err != nil {
		return nil, err
	}
	path := nextPath(it)
	var res any
	err = s.View(key, func(cur *doc.Document) error {
		if cur == nil {
			return nil
		}
		keys, err := cur.ObjKeys(path)
		if err != nil {
			return err
		}
		out := make([]any, len(keys))
		for i, k := range keys {
			out[i] = k
		}
		res = out
		return nil
	})
	return res, err
}

// ArrIndex implements JSON.ARRINDEX key path json-scalar [start [stop]].
func ArrIndex(s *store.Store, args []string) (any, error) {
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
	raw, err := it.Next()
	if err != nil {
		return nil, err
	}
	needle, err := parse.Parse([]byte(raw), format.JSONFormat)
	if err != nil {
		return nil, err
	}
	start := int64(0)
	stop := int64(math.MaxInt64)
	if it.More() {
		if start, err = nextInt(it); err != nil {
			return nil, err
		}
	}
	if it.More() {
		if stop, err = nextInt(it); err != nil {
			return nil, err
		}
	}
	res := int64(-1)
	err = s.View(key, func(cur *doc.Document) error {
		if cur == nil {
			return nil
		}
		i, err := cur.ArrIndex(path, needle, start, stop)
		if err != nil {
			return err
		}
		res = i
		return nil
	})
	return res, err
}

// Debug implements JSON.DEBUG MEMORY key [path] and JSON.DEBUG HELP.
func Debug(s *store.Store, args []string) (any, error) {
	it := &argIter{args: args}
	sub, err := it.Next()
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(sub) {
	case "MEMORY":
		key, err := it.Next()
		if err != nil {
			return nil, err
		}
		path := nextPath(it)
		res := int64(0)
		err = s.View(key, func(cur *doc.Document) error {
			if cur == nil {
				return nil
			}
			n, err := cur.Memory(path)
			if err != nil {
				return err
			}
			res = int64(n)
			return nil
		})
		return res, err
	case "HELP":
		return []any{
			"MEMORY <key> [path] - reports memory usage",
			"HELP                - this message",
		}, nil
	default:
		return nil, errors.New("ERR unknown subcommand - try `JSON.DEBUG HELP`")
	}
}
