package utils

import (
	"fmt"
	"strings"
)

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins a slice of strings with OR operator
func JoinWithOr(clauses []string) string {
	return strings.Join(clauses, " OR ")
}

// condition is one WHERE predicate with its bound value.
// Expr carries a single "?" standing for the value's slot.
type condition struct {
	expr string
	arg  any
}

// WhereBuilder collects predicates independently of their final
// positional numbering. Placeholders are assigned only in Build, in the
// order conditions were added, so optional filters can be added or skipped
// in any combination.
type WhereBuilder struct {
	conditions []condition
}

func NewWhereBuilder() *WhereBuilder {
	return &WhereBuilder{}
}

// Add appends a predicate such as "category = ?" bound to arg.
func (b *WhereBuilder) Add(expr string, arg any) *WhereBuilder {
	b.conditions = append(b.conditions, condition{expr: expr, arg: arg})
	return b
}

// AddIf appends the predicate only when ok is true.
func (b *WhereBuilder) AddIf(ok bool, expr string, arg any) *WhereBuilder {
	if ok {
		b.Add(expr, arg)
	}
	return b
}

func (b *WhereBuilder) Len() int {
	return len(b.conditions)
}

// Build renders " WHERE a = $1 AND b = $2" and the matching args.
// With no conditions it returns an empty clause and no args.
func (b *WhereBuilder) Build() (string, []any) {
	return b.BuildFrom(1)
}

// BuildFrom is Build with numbering starting at first, for queries that
// already bind earlier parameters.
func (b *WhereBuilder) BuildFrom(first int) (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(b.conditions))
	args := make([]any, 0, len(b.conditions))
	for i, c := range b.conditions {
		placeholder := fmt.Sprintf("$%d", first+i)
		clauses = append(clauses, strings.Replace(c.expr, "?", placeholder, 1))
		args = append(args, c.arg)
	}

	return " WHERE " + JoinWithAnd(clauses), args
}
