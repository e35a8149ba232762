// Package rewrite implements the expression rewriter of spec §4.2: push
// negation to the leaves via De Morgan, canonicalize commutative
// operands, and fold to the DAG-addressable OptimizedNode form.
package rewrite

import "github.com/arborio/atree/internal/predicate"

// ExprKind is the closed input-tree variant set a caller builds before
// handing it to Rewrite.
type ExprKind int

const (
	ExprAnd ExprKind = iota
	ExprOr
	ExprNot
	ExprValue
)

// Expr is a user-built expression tree node. Callers assemble these
// with the And/Or/Not/Value constructors; Rewrite never sees any other
// shape.
type Expr struct {
	Kind      ExprKind
	Left      *Expr
	Right     *Expr
	Predicate predicate.Evaluator
}

func And(left, right *Expr) *Expr { return &Expr{Kind: ExprAnd, Left: left, Right: right} }
func Or(left, right *Expr) *Expr  { return &Expr{Kind: ExprOr, Left: left, Right: right} }
func Not(x *Expr) *Expr           { return &Expr{Kind: ExprNot, Left: x} }

// Value wraps p as a leaf Expr. p is ordinarily a *predicate.Predicate;
// it accepts the broader Evaluator interface so tests can build a tree
// around a *predicate.Counter and observe whether the matcher actually
// reaches it.
func Value(p predicate.Evaluator) *Expr {
	return &Expr{Kind: ExprValue, Predicate: p}
}
