package rewrite

import (
	"testing"

	"github.com/arborio/atree/internal/predicate"
	"github.com/arborio/atree/internal/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New([]schema.AttributeDef{
		{Name: "a", Kind: schema.Bool},
		{Name: "b", Kind: schema.Bool},
	})
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	return s
}

func mustPredicate(t *testing.T, s *schema.Schema, attr string) *predicate.Predicate {
	t.Helper()
	p, err := predicate.New(s, attr, predicate.NewVariable())
	if err != nil {
		t.Fatalf("predicate.New(%s): %v", attr, err)
	}
	return p
}

func TestRewriteDeMorganAndUnderNot(t *testing.T) {
	s := testSchema(t)
	pa := mustPredicate(t, s, "a")
	pb := mustPredicate(t, s, "b")

	// not(a and b)
	expr := Not(And(Value(pa), Value(pb)))
	node, err := Rewrite(expr, false)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if node.Kind != OptOr {
		t.Fatalf("not(a and b) should rewrite to Or at the top, got %v", node.Kind)
	}

	// not(a) or not(b), built directly, should produce the same id.
	na, _ := predicate.New(s, "a", predicate.NewNegatedVariable())
	nb, _ := predicate.New(s, "b", predicate.NewNegatedVariable())
	direct, err := Rewrite(Or(Value(na), Value(nb)), false)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if node.ID() != direct.ID() {
		t.Fatal("De Morgan rewrite of not(a and b) did not match not(a) or not(b)")
	}
}

func TestRewriteDoubleNegationElimination(t *testing.T) {
	s := testSchema(t)
	pa := mustPredicate(t, s, "a")

	expr := Not(Not(Value(pa)))
	node, err := Rewrite(expr, false)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	plain, err := Rewrite(Value(pa), false)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if node.ID() != plain.ID() {
		t.Fatal("not(not(a)) should fold to the same id as a")
	}
}

func TestRewriteCommutativeOrdering(t *testing.T) {
	s := testSchema(t)
	pa := mustPredicate(t, s, "a")
	pb := mustPredicate(t, s, "b")

	ab, err := Rewrite(And(Value(pa), Value(pb)), false)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	ba, err := Rewrite(And(Value(pb), Value(pa)), false)
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if ab.ID() != ba.ID() {
		t.Fatal("a and b should have the same id regardless of argument order")
	}
}

func TestRewriteNilExpression(t *testing.T) {
	if _, err := Rewrite(nil, false); err == nil {
		t.Fatal("expected an error for a nil expression")
	}
}

func TestRewriteNilPredicateInValueNode(t *testing.T) {
	if _, err := Rewrite(Value(nil), false); err == nil {
		t.Fatal("expected an error for a Value node with a nil predicate")
	}
}
