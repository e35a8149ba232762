package predicate

import (
	"sync"

	"github.com/arborio/atree/internal/schema"
	"github.com/arborio/atree/pkg/errors"
)

// Predicate is (AttributeId, PredicateKind) plus a lazily computed id
// and cost. Two predicates are equal iff their (AttributeId, Kind) are
// structurally equal; construction guarantees their ids then collide,
// since id is a pure function of that pair (hash.go).
type Predicate struct {
	Attr schema.AttributeId
	Kind Kind

	once sync.Once
	id   uint64
	cost uint64
}

func (p *Predicate) compute() {
	p.id = hashPredicate(p.Attr, p.Kind)
	p.cost = costOf(p.Kind)
}

// ID returns the predicate's stable content-hash id.
func (p *Predicate) ID() uint64 {
	p.once.Do(p.compute)
	return p.id
}

// Cost returns the predicate's cost estimate (spec §3).
func (p *Predicate) Cost() uint64 {
	p.once.Do(p.compute)
	return p.cost
}

// AttrID returns the attribute this predicate tests.
func (p *Predicate) AttrID() schema.AttributeId {
	return p.Attr
}

// Evaluate tests p against event. It is the method form of the
// package-level Evaluate function, existing so dagstore/matcher can
// hold a DAG leaf's predicate behind the Evaluator interface instead
// of the concrete type.
func (p *Predicate) Evaluate(event *schema.Event) TriState {
	return Evaluate(p, event)
}

// Evaluator is satisfied by Predicate and by test doubles such as
// Counter, so the matcher's leaf evaluation does not need to depend on
// the concrete Predicate type.
type Evaluator interface {
	Evaluate(event *schema.Event) TriState
	ID() uint64
	Cost() uint64
	AttrID() schema.AttributeId
}

func costOf(k Kind) uint64 {
	switch k.Variant {
	case Set:
		return uint64(k.Haystack.ListLen())
	case List:
		return uint64(k.Haystack.ListLen()) * 2
	default:
		return 0
	}
}

// New validates (variant, AttributeKind) per spec §3's table and
// constructs a Predicate, or fails with UnknownAttribute / SchemaMismatch.
func New(s *schema.Schema, attrName string, k Kind) (*Predicate, error) {
	id, attrKind, ok := s.GetByName(attrName)
	if !ok {
		return nil, errors.NewUnknownAttribute(attrName)
	}
	if err := validate(attrName, attrKind, k); err != nil {
		return nil, err
	}
	return &Predicate{Attr: id, Kind: k}, nil
}

func validate(attrName string, attrKind schema.AttributeKind, k Kind) error {
	mismatch := func(expected string) error {
		return errors.NewSchemaMismatch(attrName, expected, variantName(k.Variant))
	}

	switch k.Variant {
	case Variable, NegatedVariable:
		if attrKind != schema.Bool {
			return mismatch("Bool")
		}
	case Equality:
		if attrKind.IsList() || attrKind == schema.Undefined {
			return mismatch("scalar (Bool|Int|Float|String)")
		}
		if k.Literal.Kind != valueKindFor(attrKind) {
			return mismatch(attrKind.String())
		}
	case Comparison:
		if attrKind != schema.Int && attrKind != schema.Float {
			return mismatch("Int|Float")
		}
		if k.Literal.Kind != valueKindFor(attrKind) {
			return mismatch(attrKind.String())
		}
	case Set:
		if attrKind != schema.Int && attrKind != schema.String {
			return mismatch("Int|String")
		}
	case List:
		if !attrKind.IsList() {
			return mismatch("list kind")
		}
	case Null:
		if (k.NullOp == IsEmpty || k.NullOp == IsNotEmpty) && !attrKind.IsList() {
			return mismatch("list kind")
		}
	}
	return nil
}

func valueKindFor(attrKind schema.AttributeKind) schema.AttributeKind {
	return attrKind
}

func variantName(v Variant) string {
	switch v {
	case Variable:
		return "Variable"
	case NegatedVariable:
		return "NegatedVariable"
	case Equality:
		return "Equality"
	case Comparison:
		return "Comparison"
	case Set:
		return "Set"
	case List:
		return "List"
	case Null:
		return "Null"
	default:
		return "Unknown"
	}
}
