package query

import (
	"strconv"
	"strings"
)

// Supported predicate operators.
const (
	OpEqual        = "="
	OpGreaterEqual = ">="
	OpILike        = "ILIKE"
	OpBetween      = "BETWEEN"
)

// Predicate is a single comparison of a column (or aggregate expression)
// against bound values. BETWEEN takes two values, every other operator one.
type Predicate struct {
	Column string
	Op     string
	Args   []any
}

// Statement is a rendered query with its positional arguments.
type Statement struct {
	SQL  string
	Args []any
}

// binder hands out $n placeholders in the order values are bound.
type binder struct {
	args []any
}

func (b *binder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *binder) render(p Predicate) string {
	if p.Op == OpBetween {
		lo := b.bind(p.Args[0])
		hi := b.bind(p.Args[1])
		return p.Column + " BETWEEN " + lo + " AND " + hi
	}
	return p.Column + " " + p.Op + " " + b.bind(p.Args[0])
}

// writeClause appends "<keyword> p1 AND p2 ..." to sb. Nothing is written
// for an empty predicate list.
func (b *binder) writeClause(sb *strings.Builder, keyword string, preds []Predicate) {
	for i, p := range preds {
		if i == 0 {
			sb.WriteString(" " + keyword + " ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(b.render(p))
	}
}
