package ir

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// currentNodeVar is the identifier the filter's '@' is rewritten to before
// handing the expression to the evaluator.
const currentNodeVar = "__it"

// Filter is a compiled "[?( ... )]" predicate. Inside the expression '@'
// denotes the candidate node.
type Filter struct {
	src string
	prg *vm.Program
}

func parseFilter(src string) (*Filter, error) {
	prg, err := expr.Compile(rewriteAt(src))
	if err != nil {
		return nil, err
	}
	return &Filter{src: src, prg: prg}, nil
}

// Match evaluates the predicate against y. Evaluation failures (missing
// fields, type mismatches) mean the candidate does not match; they are not
// surfaced as errors.
func (f *Filter) Match(y *Node) bool {
	out, err := expr.Run(f.prg, map[string]any{currentNodeVar: ToAny(y)})
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

// rewriteAt replaces '@' with the evaluator's variable name, skipping
// quoted strings.
func rewriteAt(src string) string {
	res := make([]byte, 0, len(src)+8)
	var quote byte
	for i := 0; i < len(src); i++ {
		c := src[i]
		if quote != 0 {
			if c == quote && src[i-1] != '\\' {
				quote = 0
			}
			res = append(res, c)
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
			res = append(res, c)
		case '@':
			res = append(res, currentNodeVar...)
		default:
			res = append(res, c)
		}
	}
	return string(res)
}
