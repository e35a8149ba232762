// Package atree is a boolean expression matching engine: register
// subscriptions as boolean expressions over a fixed attribute schema,
// then for each incoming event find every subscription whose
// expression is satisfied. Internally it rewrites each expression to a
// negation-free canonical form (internal/rewrite), interns it into a
// structurally shared DAG (internal/dagstore), and matches events with
// a level-ordered, short-circuiting evaluator (internal/matcher).
package atree

import (
	"sync"

	"github.com/arborio/atree/internal/dagstore"
	"github.com/arborio/atree/internal/graphviz"
	"github.com/arborio/atree/internal/matcher"
	"github.com/arborio/atree/internal/rewrite"
	"github.com/arborio/atree/internal/schema"
)

// Engine is the top-level matching engine, generic over the
// subscription id type a caller wants to get back from Match — any
// comparable type, matching the spec's "any type with equality and
// hash".
type Engine[T comparable] struct {
	schema  *schema.Schema
	strings *schema.StringTable

	mu      sync.Mutex // serializes DAG mutation and inspection; Match takes no lock (spec §5)
	store   *dagstore.Store[T]
	matcher *matcher.Matcher[T]
}

// New builds an Engine over a fixed attribute schema. The schema is
// frozen at this point (spec §5): attributes cannot be added or removed
// afterward.
func New[T comparable](defs []schema.AttributeDef) (*Engine[T], error) {
	s, err := schema.New(defs)
	if err != nil {
		return nil, err
	}
	return &Engine[T]{
		schema:  s,
		strings: schema.NewStringTable(),
		store:   dagstore.New[T](),
		matcher: matcher.New[T](),
	}, nil
}

// Schema returns the engine's attribute schema, mainly so predicate
// constructors outside this package (Eq, Lt, ...) can resolve attribute
// names without the caller threading the *schema.Schema around
// separately.
func (e *Engine[T]) Schema() *schema.Schema {
	return e.schema
}

// Strings returns the engine's string interning table. String-kind
// event and literal values are built through it (spec §5).
func (e *Engine[T]) Strings() *schema.StringTable {
	return e.strings
}

// NewEvent returns a builder for an event against this engine's schema.
func (e *Engine[T]) NewEvent() *schema.Builder {
	return schema.NewBuilder(e.schema)
}

// AddRule rewrites expr to its canonical DAG form and interns it under
// subscriptionID, reusing any structurally identical node already
// present. Re-adding the same subscriptionID with the same expression
// is a no-op; re-adding it with a different expression attaches a
// second, independent subscription entry (the engine does not track
// subscriptionID uniqueness across calls — callers that need replace
// semantics should RemoveRule first).
func (e *Engine[T]) AddRule(subscriptionID T, expr *rewrite.Expr) error {
	node, err := rewrite.Rewrite(expr, false)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.InsertRoot(subscriptionID, node)
}

// RemoveRule detaches subscriptionID, reclaiming any DAG node whose
// use-count drops to zero as a result. Removing an id that was never
// added is a no-op (spec §4.5).
func (e *Engine[T]) RemoveRule(subscriptionID T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.RemoveRule(subscriptionID)
}

// Match returns every subscription id whose expression evaluates True
// against event.
func (e *Engine[T]) Match(event *schema.Event) []T {
	return e.matcher.Match(e.store, event)
}

// Compact physically repacks the DAG store, discarding tombstoned
// nodes. Node identity (for Match's purposes) is unaffected; it only
// matters to callers inspecting raw statistics or graphviz output
// across a Compact boundary.
func (e *Engine[T]) Compact() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Compact()
}

// Statistics returns a snapshot of the DAG's current shape.
func (e *Engine[T]) Statistics() dagstore.Statistics {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Statistics()
}

// ToGraphviz renders the current DAG as a dot graph for inspection.
func (e *Engine[T]) ToGraphviz() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return graphviz.ToDot(e.store)
}
