package predicate

import (
	"testing"

	"github.com/arborio/atree/internal/schema"
)

func TestNegateInvolution(t *testing.T) {
	s := testSchema(t)
	cases := []*Predicate{
		mustNew(t, s, "active", NewVariable()),
		mustNew(t, s, "status", NewEquality(Eq, schema.StringValue(3))),
		mustNew(t, s, "amount", NewComparison(Lt, schema.IntValue(5))),
		mustNew(t, s, "status", NewSet(In, schema.StringListValue([]schema.StringRef{1, 2}))),
		mustNew(t, s, "tags", NewList(OneOf, schema.StringListValue([]schema.StringRef{1}))),
		mustNew(t, s, "tags", NewNull(IsEmpty)),
	}
	for _, p := range cases {
		twice := Negate(Negate(p))
		if twice.ID() != p.ID() {
			t.Errorf("double negation changed id for %+v", p.Kind)
		}
	}
}

func TestNegateFlipsResult(t *testing.T) {
	s := testSchema(t)
	p := mustNew(t, s, "amount", NewComparison(Gte, schema.IntValue(10)))
	np := Negate(p)

	ev := schema.NewBuilder(s).WithInt("amount", 5).Build()
	if Evaluate(p, ev) == Evaluate(np, ev) {
		t.Fatal("negated predicate should disagree with the original on a defined value")
	}
}

func mustNew(t *testing.T, s *schema.Schema, attr string, k Kind) *Predicate {
	t.Helper()
	p, err := New(s, attr, k)
	if err != nil {
		t.Fatalf("New(%s): %v", attr, err)
	}
	return p
}
