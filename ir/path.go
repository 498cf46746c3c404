package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path is one parsed segment of a path expression, chained through Next.
// The zero segment with no Next addresses the root.
type Path struct {
	IndexAll bool
	FieldAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Filter   *Filter
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	sub := false
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
			sub = true
			continue
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.FieldAll:
			if !sub {
				buf.WriteByte('.')
			}
			buf.WriteByte('*')
		case x.Filter != nil:
			fmt.Fprintf(buf, "[?(%s)]", x.Filter.src)
		case x.Field != nil:
			if !sub {
				buf.WriteByte('.')
			}
			buf.WriteString(pathString(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
		sub = false
	}
	return buf.String()
}

func pathString(f string) string {
	if strings.IndexAny(f, "'.*$[]?") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

// IsRoot reports whether p addresses the whole document.
func (p *Path) IsRoot() bool {
	return p.Field == nil && p.Index == nil && !p.IndexAll &&
		!p.FieldAll && !p.Subtree && p.Filter == nil && p.Next == nil
}

// IsStatic reports whether p addresses at most one location: no wildcards,
// recursion, or filters anywhere along the chain.
func (p *Path) IsStatic() bool {
	for x := p; x != nil; x = x.Next {
		if x.IndexAll || x.FieldAll || x.Subtree || x.Filter != nil {
			return false
		}
	}
	return true
}

// SplitLast splits off the final segment, which must be a field access.
// The returned prefix is nil when the path is a single field under the
// root.
func (p *Path) SplitLast() (prefix *Path, field string, ok bool) {
	if p.IsRoot() || p.Field == nil && p.Next == nil {
		return nil, "", false
	}
	if p.Next == nil {
		return nil, *p.Field, true
	}
	head := &Path{}
	*head = *p
	cur := head
	for cur.Next.Next != nil {
		next := &Path{}
		*next = *cur.Next
		cur.Next = next
		cur = next
	}
	last := cur.Next
	if last.Field == nil {
		return nil, "", false
	}
	cur.Next = nil
	return head, *last.Field, true
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: %q should start with '$'", ErrPath, p)
	}
	root := &Path{}
	if len(p) == 1 {
		return root, nil
	}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPath, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) > 1 && frag[1] == '.' {
			parent.Subtree = true
			rest := frag[2:]
			if len(rest) == 0 {
				return fmt.Errorf("expected name, '*', or '[' after '..'")
			}
			next := &Path{}
			parent.Next = next
			switch rest[0] {
			case '.', '[':
				return parseFrag(rest, next)
			case '*':
				next.FieldAll = true
				return parseRest(rest[1:], next)
			default:
				field, r, err := parseField(rest)
				if err != nil {
					return err
				}
				next.Field = &field
				return parseRest(r, next)
			}
		}
		if len(frag) > 1 && frag[1] == '*' {
			parent.FieldAll = true
			return parseRest(frag[2:], parent)
		}
		if len(frag) > 1 && frag[1] == '[' {
			return parseFrag(frag[1:], parent)
		}
		field, rest, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		return parseRest(rest, parent)
	case '[':
		if len(frag) > 2 && frag[1] == '?' {
			return parseFilterFrag(frag, parent)
		}
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, all, err := parseIndex(frag[1 : i+1])
		if err != nil {
			return err
		}
		parent.IndexAll = all
		if !all {
			parent.Index = &index
		}
		return parseRest(frag[i+2:], parent)
	default:
		return fmt.Errorf("expected '.' or '['")
	}
}

func parseRest(rest string, parent *Path) error {
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

// parseFilterFrag consumes a "[?( ... )]" segment, honoring nested
// parentheses and quoted strings inside the expression.
func parseFilterFrag(frag string, parent *Path) error {
	if !strings.HasPrefix(frag, "[?(") {
		return fmt.Errorf("expected '[?('")
	}
	depth := 1
	var quote byte
	for i := 3; i < len(frag); i++ {
		c := frag[i]
		if quote != 0 {
			if c == quote && frag[i-1] != '\\' {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if i+1 >= len(frag) || frag[i+1] != ']' {
					return fmt.Errorf("expected ')]' to close filter")
				}
				f, err := parseFilter(frag[3:i])
				if err != nil {
					return err
				}
				parent.Filter = f
				return parseRest(frag[i+2:], parent)
			}
		}
	}
	return fmt.Errorf("unterminated filter")
}

func parseIndex(is string) (index int, all bool, err error) {
	if len(is) == 1 && is[0] == '*' {
		return 0, true, nil
	}
	u64, err := strconv.ParseUint(is, 10, 32)
	if err != nil {
		return 0, false, err
	}
	return int(u64), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}
