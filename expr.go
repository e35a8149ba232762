package atree

import (
	"github.com/arborio/atree/internal/predicate"
	"github.com/arborio/atree/internal/rewrite"
	"github.com/arborio/atree/internal/schema"
)

// Expr, And, Or, Not, and Value are re-exported from internal/rewrite
// so callers outside this module can build expression trees without
// reaching into an internal package.
type Expr = rewrite.Expr

func And(left, right *Expr) *Expr { return rewrite.And(left, right) }
func Or(left, right *Expr) *Expr  { return rewrite.Or(left, right) }
func Not(x *Expr) *Expr           { return rewrite.Not(x) }

// AttributeKind, AttributeDef, Value, StringRef, and Event are
// re-exported from internal/schema for the same reason.
type (
	AttributeKind = schema.AttributeKind
	AttributeDef  = schema.AttributeDef
	Value         = schema.Value
	StringRef     = schema.StringRef
	Event         = schema.Event
)

const (
	BoolKind       = schema.Bool
	IntKind        = schema.Int
	FloatKind      = schema.Float
	StringKind     = schema.String
	BoolListKind   = schema.BoolList
	IntListKind    = schema.IntList
	FloatListKind  = schema.FloatList
	StringListKind = schema.StringList
)

func BoolValue(b bool) Value               { return schema.BoolValue(b) }
func IntValue(i int64) Value               { return schema.IntValue(i) }
func FloatValue(f float64) Value           { return schema.FloatValue(f) }
func StringValue(s StringRef) Value        { return schema.StringValue(s) }
func BoolListValue(v []bool) Value         { return schema.BoolListValue(v) }
func IntListValue(v []int64) Value         { return schema.IntListValue(v) }
func FloatListValue(v []float64) Value     { return schema.FloatListValue(v) }
func StringListValue(v []StringRef) Value  { return schema.StringListValue(v) }

// value builds a predicate Expr leaf, wrapping schema/predicate errors
// in the same way a hand-written rule would.
func (e *Engine[T]) value(attr string, k predicate.Kind) (*Expr, error) {
	p, err := predicate.New(e.schema, attr, k)
	if err != nil {
		return nil, err
	}
	return Value(p), nil
}

func Value(p *predicate.Predicate) *Expr { return rewrite.Value(p) }

// Var and NotVar test a Bool attribute directly or negated.
func (e *Engine[T]) Var(attr string) (*Expr, error) {
	return e.value(attr, predicate.NewVariable())
}
func (e *Engine[T]) NotVar(attr string) (*Expr, error) {
	return e.value(attr, predicate.NewNegatedVariable())
}

// Eq and Neq compare a scalar attribute against a literal.
func (e *Engine[T]) Eq(attr string, literal Value) (*Expr, error) {
	return e.value(attr, predicate.NewEquality(predicate.Eq, literal))
}
func (e *Engine[T]) Neq(attr string, literal Value) (*Expr, error) {
	return e.value(attr, predicate.NewEquality(predicate.Neq, literal))
}

// Lt, Lte, Gt, and Gte compare an Int or Float attribute against a
// literal of the same kind.
func (e *Engine[T]) Lt(attr string, literal Value) (*Expr, error) {
	return e.value(attr, predicate.NewComparison(predicate.Lt, literal))
}
func (e *Engine[T]) Lte(attr string, literal Value) (*Expr, error) {
	return e.value(attr, predicate.NewComparison(predicate.Lte, literal))
}
func (e *Engine[T]) Gt(attr string, literal Value) (*Expr, error) {
	return e.value(attr, predicate.NewComparison(predicate.Gt, literal))
}
func (e *Engine[T]) Gte(attr string, literal Value) (*Expr, error) {
	return e.value(attr, predicate.NewComparison(predicate.Gte, literal))
}

// InInts and InStrings test Set membership of an Int or String
// attribute against a literal haystack, sorted automatically.
func (e *Engine[T]) InInts(attr string, haystack []int64) (*Expr, error) {
	h := schema.IntListValue(schema.SortedInts(haystack))
	return e.value(attr, predicate.NewSet(predicate.In, h))
}
func (e *Engine[T]) NotInInts(attr string, haystack []int64) (*Expr, error) {
	h := schema.IntListValue(schema.SortedInts(haystack))
	return e.value(attr, predicate.NewSet(predicate.NotIn, h))
}
func (e *Engine[T]) InStrings(attr string, haystack []StringRef) (*Expr, error) {
	h := schema.StringListValue(schema.SortedStringRefs(haystack))
	return e.value(attr, predicate.NewSet(predicate.In, h))
}
func (e *Engine[T]) NotInStrings(attr string, haystack []StringRef) (*Expr, error) {
	h := schema.StringListValue(schema.SortedStringRefs(haystack))
	return e.value(attr, predicate.NewSet(predicate.NotIn, h))
}

// OneOf, NoneOf, AllOf, and NotAllOf relate a probe list against a
// list-kind attribute.
func (e *Engine[T]) OneOf(attr string, probe Value) (*Expr, error) {
	return e.value(attr, predicate.NewList(predicate.OneOf, probe))
}
func (e *Engine[T]) NoneOf(attr string, probe Value) (*Expr, error) {
	return e.value(attr, predicate.NewList(predicate.NoneOf, probe))
}
func (e *Engine[T]) AllOf(attr string, probe Value) (*Expr, error) {
	return e.value(attr, predicate.NewList(predicate.AllOf, probe))
}
func (e *Engine[T]) NotAllOf(attr string, probe Value) (*Expr, error) {
	return e.value(attr, predicate.NewList(predicate.NotAllOf, probe))
}

// IsNull, IsNotNull, IsEmpty, and IsNotEmpty inspect an attribute's
// presence or, for list kinds, its length, independent of its declared
// AttributeKind otherwise.
func (e *Engine[T]) IsNull(attr string) (*Expr, error) {
	return e.value(attr, predicate.NewNull(predicate.IsNull))
}
func (e *Engine[T]) IsNotNull(attr string) (*Expr, error) {
	return e.value(attr, predicate.NewNull(predicate.IsNotNull))
}
func (e *Engine[T]) IsEmpty(attr string) (*Expr, error) {
	return e.value(attr, predicate.NewNull(predicate.IsEmpty))
}
func (e *Engine[T]) IsNotEmpty(attr string) (*Expr, error) {
	return e.value(attr, predicate.NewNull(predicate.IsNotEmpty))
}
