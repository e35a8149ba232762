package matcher

import (
	"sort"
	"testing"

	"github.com/arborio/atree/internal/dagstore"
	"github.com/arborio/atree/internal/predicate"
	"github.com/arborio/atree/internal/rewrite"
	"github.com/arborio/atree/internal/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New([]schema.AttributeDef{
		{Name: "a", Kind: schema.Bool},
		{Name: "b", Kind: schema.Bool},
		{Name: "c", Kind: schema.Bool},
	})
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}
	return s
}

func varExpr(t *testing.T, s *schema.Schema, attr string) *rewrite.Expr {
	t.Helper()
	p, err := predicate.New(s, attr, predicate.NewVariable())
	if err != nil {
		t.Fatalf("predicate.New(%s): %v", attr, err)
	}
	return rewrite.Value(p)
}

func insert(t *testing.T, store *dagstore.Store[string], id string, expr *rewrite.Expr) {
	t.Helper()
	node, err := rewrite.Rewrite(expr, false)
	if err != nil {
		t.Fatalf("rewrite.Rewrite: %v", err)
	}
	if err := store.InsertRoot(id, node); err != nil {
		t.Fatalf("InsertRoot(%s): %v", id, err)
	}
}

func sorted(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

func TestMatchSimpleAnd(t *testing.T) {
	s := testSchema(t)
	store := dagstore.New[string]()
	insert(t, store, "sub1", rewrite.And(varExpr(t, s, "a"), varExpr(t, s, "b")))

	m := New[string]()
	trueEvent := schema.NewBuilder(s).WithBool("a", true).WithBool("b", true).Build()
	if got := m.Match(store, trueEvent); len(got) != 1 || got[0] != "sub1" {
		t.Fatalf("Match(a=true,b=true) = %v, want [sub1]", got)
	}

	falseEvent := schema.NewBuilder(s).WithBool("a", true).WithBool("b", false).Build()
	if got := m.Match(store, falseEvent); len(got) != 0 {
		t.Fatalf("Match(a=true,b=false) = %v, want none", got)
	}
}

func TestMatchSharedLeafBothRulesFire(t *testing.T) {
	s := testSchema(t)
	store := dagstore.New[string]()
	insert(t, store, "sub1", rewrite.And(varExpr(t, s, "a"), varExpr(t, s, "b")))
	insert(t, store, "sub2", rewrite.And(varExpr(t, s, "a"), varExpr(t, s, "c")))

	m := New[string]()
	event := schema.NewBuilder(s).WithBool("a", true).WithBool("b", true).WithBool("c", true).Build()
	got := sorted(m.Match(store, event))
	if len(got) != 2 || got[0] != "sub1" || got[1] != "sub2" {
		t.Fatalf("Match = %v, want [sub1 sub2]", got)
	}
}

func TestMatchOrNoDuplicateOnSharedHit(t *testing.T) {
	s := testSchema(t)
	store := dagstore.New[string]()
	insert(t, store, "sub1", rewrite.Or(varExpr(t, s, "a"), varExpr(t, s, "b")))

	m := New[string]()
	event := schema.NewBuilder(s).WithBool("a", true).WithBool("b", true).Build()
	got := m.Match(store, event)
	if len(got) != 1 || got[0] != "sub1" {
		t.Fatalf("Match = %v, want exactly one [sub1]", got)
	}
}

func TestMatchNestedAndOr(t *testing.T) {
	s := testSchema(t)
	store := dagstore.New[string]()
	// (a and b) or c
	expr := rewrite.Or(rewrite.And(varExpr(t, s, "a"), varExpr(t, s, "b")), varExpr(t, s, "c"))
	insert(t, store, "sub1", expr)

	m := New[string]()
	viaOr := schema.NewBuilder(s).WithBool("a", false).WithBool("b", false).WithBool("c", true).Build()
	if got := m.Match(store, viaOr); len(got) != 1 {
		t.Fatalf("Match via c=true = %v, want a match", got)
	}

	viaAnd := schema.NewBuilder(s).WithBool("a", true).WithBool("b", true).WithBool("c", false).Build()
	if got := m.Match(store, viaAnd); len(got) != 1 {
		t.Fatalf("Match via a=b=true = %v, want a match", got)
	}

	neither := schema.NewBuilder(s).WithBool("a", true).WithBool("b", false).WithBool("c", false).Build()
	if got := m.Match(store, neither); len(got) != 0 {
		t.Fatalf("Match with nothing satisfied = %v, want none", got)
	}
}

func TestMatchUndefinedAttributeDoesNotMatch(t *testing.T) {
	s := testSchema(t)
	store := dagstore.New[string]()
	insert(t, store, "sub1", rewrite.And(varExpr(t, s, "a"), varExpr(t, s, "b")))

	m := New[string]()
	event := schema.NewBuilder(s).WithBool("a", true).Build() // b omitted
	if got := m.Match(store, event); len(got) != 0 {
		t.Fatalf("Match with an omitted attribute = %v, want none", got)
	}
}

// TestMatchAndShortCircuitsNonAccessChild proves spec §8's short-circuit
// property end to end: an And root never evaluates its non-access
// (costlier) child once the access child is False. The costlier child
// is a predicate.Counter standing in for a real predicate, wired
// through rewrite.Value straight into the live dagstore/matcher
// pipeline, so EvaluateCount is a direct count of how many times the
// real matcher reached it.
func TestMatchAndShortCircuitsNonAccessChild(t *testing.T) {
	s, err := schema.New([]schema.AttributeDef{
		{Name: "a", Kind: schema.Bool},
		{Name: "b", Kind: schema.Int},
	})
	if err != nil {
		t.Fatalf("schema.New: %v", err)
	}

	access, err := predicate.New(s, "a", predicate.NewVariable())
	if err != nil {
		t.Fatalf("predicate.New(a): %v", err)
	}
	nonAccess, err := predicate.New(s, "b", predicate.NewSet(predicate.In, schema.IntListValue([]int64{1, 2})))
	if err != nil {
		t.Fatalf("predicate.New(b): %v", err)
	}
	if access.Cost() >= nonAccess.Cost() {
		t.Fatalf("test setup: access.Cost()=%d must be cheaper than nonAccess.Cost()=%d", access.Cost(), nonAccess.Cost())
	}
	counter := predicate.NewCounter(nonAccess)

	store := dagstore.New[string]()
	expr := rewrite.And(rewrite.Value(access), rewrite.Value(counter))
	node, err := rewrite.Rewrite(expr, false)
	if err != nil {
		t.Fatalf("rewrite.Rewrite: %v", err)
	}
	if err := store.InsertRoot("sub1", node); err != nil {
		t.Fatalf("InsertRoot: %v", err)
	}

	m := New[string]()
	falseAccess := schema.NewBuilder(s).WithBool("a", false).Build()
	if got := m.Match(store, falseAccess); len(got) != 0 {
		t.Fatalf("Match(a=false) = %v, want none", got)
	}
	if counter.EvaluateCount != 0 {
		t.Fatalf("EvaluateCount = %d after a=false, want 0 (non-access child must be pruned)", counter.EvaluateCount)
	}

	trueAccess := schema.NewBuilder(s).WithBool("a", true).WithInt("b", 1).Build()
	if got := m.Match(store, trueAccess); len(got) != 1 || got[0] != "sub1" {
		t.Fatalf("Match(a=true,b=1) = %v, want [sub1]", got)
	}
	if counter.EvaluateCount != 1 {
		t.Fatalf("EvaluateCount = %d after a=true, want 1 (non-access child must run once the access child holds)", counter.EvaluateCount)
	}
}

func TestMatchReusableAcrossEvents(t *testing.T) {
	s := testSchema(t)
	store := dagstore.New[string]()
	insert(t, store, "sub1", varExpr(t, s, "a"))

	m := New[string]()
	on := schema.NewBuilder(s).WithBool("a", true).Build()
	off := schema.NewBuilder(s).WithBool("a", false).Build()

	if got := m.Match(store, on); len(got) != 1 {
		t.Fatalf("first Match = %v, want a match", got)
	}
	if got := m.Match(store, off); len(got) != 0 {
		t.Fatalf("second Match on the same *Matcher = %v, want none (stale state not cleared)", got)
	}
	if got := m.Match(store, on); len(got) != 1 {
		t.Fatalf("third Match = %v, want a match", got)
	}
}
