// Package predicate implements the predicate algebra of spec §4.1: the
// closed set of leaf tests over one attribute, each with a stable
// content-hash id, a cost estimate, and a negate operation.
package predicate

import "github.com/arborio/atree/internal/schema"

// Variant is the closed PredicateKind tag (spec §3's table).
type Variant int

const (
	Variable Variant = iota
	NegatedVariable
	Equality
	Comparison
	Set
	List
	Null
)

type EqOp int

const (
	Eq EqOp = iota
	Neq
)

func (op EqOp) negate() EqOp {
	if op == Eq {
		return Neq
	}
	return Eq
}

type CmpOp int

const (
	Lt CmpOp = iota
	Lte
	Gt
	Gte
)

func (op CmpOp) negate() CmpOp {
	switch op {
	case Lt:
		return Gte
	case Lte:
		return Gt
	case Gt:
		return Lte
	default: // Gte
		return Lt
	}
}

type SetOp int

const (
	In SetOp = iota
	NotIn
)

func (op SetOp) negate() SetOp {
	if op == In {
		return NotIn
	}
	return In
}

type ListOp int

const (
	OneOf ListOp = iota
	NoneOf
	AllOf
	NotAllOf
)

func (op ListOp) negate() ListOp {
	switch op {
	case OneOf:
		return NoneOf
	case NoneOf:
		return OneOf
	case AllOf:
		return NotAllOf
	default: // NotAllOf
		return AllOf
	}
}

type NullOp int

const (
	IsNull NullOp = iota
	IsNotNull
	IsEmpty
	IsNotEmpty
)

func (op NullOp) negate() NullOp {
	switch op {
	case IsNull:
		return IsNotNull
	case IsNotNull:
		return IsNull
	case IsEmpty:
		return IsNotEmpty
	default: // IsNotEmpty
		return IsEmpty
	}
}

// Kind is the tagged payload of a PredicateKind variant. Only the
// fields relevant to Variant are meaningful; exhaustive switches on
// Variant are the intended way to consume it (spec §9: prefer tagged
// unions, exhaustive matching catches new variants).
type Kind struct {
	Variant  Variant
	EqOp     EqOp
	CmpOp    CmpOp
	SetOp    SetOp
	ListOp   ListOp
	NullOp   NullOp
	Literal  schema.Value // Equality literal, Comparison value
	Haystack schema.Value // Set sorted haystack, List probe list
}

func NewVariable() Kind         { return Kind{Variant: Variable} }
func NewNegatedVariable() Kind  { return Kind{Variant: NegatedVariable} }
func NewEquality(op EqOp, literal schema.Value) Kind {
	return Kind{Variant: Equality, EqOp: op, Literal: literal}
}
func NewComparison(op CmpOp, value schema.Value) Kind {
	return Kind{Variant: Comparison, CmpOp: op, Literal: value}
}
func NewSet(op SetOp, haystack schema.Value) Kind {
	return Kind{Variant: Set, SetOp: op, Haystack: haystack}
}
func NewList(op ListOp, probe schema.Value) Kind {
	return Kind{Variant: List, ListOp: op, Haystack: probe}
}
func NewNull(op NullOp) Kind {
	return Kind{Variant: Null, NullOp: op}
}
