package rewrite

import (
	"github.com/arborio/atree/internal/predicate"
	"github.com/arborio/atree/pkg/errors"
)

// Rewrite threads a single boolean negate flag downward through expr,
// pushing Not to the leaves via De Morgan and double-negation
// elimination, and folds the result to a canonical, DAG-addressable
// OptimizedNode (spec §4.2).
func Rewrite(expr *Expr, negate bool) (*Node, error) {
	if expr == nil {
		return nil, errors.NewInvalidExpression("nil expression")
	}

	switch expr.Kind {
	case ExprNot:
		return Rewrite(expr.Left, !negate)

	case ExprAnd:
		left, err := Rewrite(expr.Left, negate)
		if err != nil {
			return nil, err
		}
		right, err := Rewrite(expr.Right, negate)
		if err != nil {
			return nil, err
		}
		if negate {
			return or(left, right), nil // De Morgan: not(a and b) = not(a) or not(b)
		}
		return and(left, right), nil

	case ExprOr:
		left, err := Rewrite(expr.Left, negate)
		if err != nil {
			return nil, err
		}
		right, err := Rewrite(expr.Right, negate)
		if err != nil {
			return nil, err
		}
		if negate {
			return and(left, right), nil // De Morgan: not(a or b) = not(a) and not(b)
		}
		return or(left, right), nil

	case ExprValue:
		if expr.Predicate == nil {
			return nil, errors.NewInvalidExpression("nil predicate in Value node")
		}
		p := expr.Predicate
		if negate {
			concrete, ok := p.(*predicate.Predicate)
			if !ok {
				return nil, errors.NewInvalidExpression("cannot negate a non-Predicate evaluator")
			}
			p = predicate.Negate(concrete)
		}
		return leaf(p), nil

	default:
		return nil, errors.NewInvalidExpression("unknown expression kind")
	}
}
