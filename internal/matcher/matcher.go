// Package matcher implements the level-ordered, short-circuiting
// evaluator of spec §4.4: prime the predicate frontier, then sweep
// remaining internal nodes level by level, lazily resolving any child a
// shared subexpression left out of order.
package matcher

import (
	"github.com/arborio/atree/internal/dagstore"
	"github.com/arborio/atree/internal/predicate"
	"github.com/arborio/atree/internal/rewrite"
	"github.com/arborio/atree/internal/schema"
)

// Matcher holds reusable per-node buffers across Match calls, the way
// the teacher's DagEvaluator reuses fastResults instead of reallocating
// one slice per event.
type Matcher[T comparable] struct {
	resolved []bool
	value    []predicate.TriState
	levels   map[int][]dagstore.NodeIndex
}

// New returns an empty matcher ready to evaluate against store.
func New[T comparable]() *Matcher[T] {
	return &Matcher[T]{}
}

func (m *Matcher[T]) reset(store *dagstore.Store[T]) {
	n := store.Len()
	if cap(m.resolved) < n {
		m.resolved = make([]bool, n)
		m.value = make([]predicate.TriState, n)
	} else {
		m.resolved = m.resolved[:n]
		m.value = m.value[:n]
		for i := range m.resolved {
			m.resolved[i] = false
		}
	}
	// The store's node set can change between calls (AddRule, RemoveRule,
	// Compact), so the level index is rebuilt every time rather than
	// cached — it's an O(live nodes) scan, not worth a staleness check.
	m.rebuildLevels(store)
}

func (m *Matcher[T]) rebuildLevels(store *dagstore.Store[T]) {
	n := store.Len()
	m.levels = make(map[int][]dagstore.NodeIndex)
	for i := 0; i < n; i++ {
		idx := dagstore.NodeIndex(i)
		e := store.Entry(idx)
		if e.Tombstoned || e.Leaf {
			continue
		}
		m.levels[e.Level] = append(m.levels[e.Level], idx)
	}
}

// Match evaluates event against every live rule in store and returns
// the subscription ids whose expression evaluated True.
func (m *Matcher[T]) Match(store *dagstore.Store[T], event *schema.Event) []T {
	m.reset(store)

	resolve := m.resolverFor(store, event)
	for _, idx := range store.Frontier() {
		resolve(idx)
	}
	for level := 1; level <= store.MaxLevel(); level++ {
		for _, idx := range m.levels[level] {
			resolve(idx)
		}
	}

	var matched []T
	for i := 0; i < store.Len(); i++ {
		idx := dagstore.NodeIndex(i)
		e := store.Entry(idx)
		if e.Tombstoned || !e.IsRoot() {
			continue
		}
		if m.resolved[idx] && m.value[idx] == predicate.True {
			matched = append(matched, e.Subscriptions...)
		}
	}
	return matched
}

// resolverFor returns a memoized recursive resolver closed over event.
// Resolving an And node short-circuits on a False access child (left,
// always the cheaper per the rewrite package's canonical ordering)
// without evaluating the expensive child at all; resolving an Or node
// short-circuits symmetrically on a True access child. Either branch
// falls back to recursing into whichever child a level sweep hasn't
// reached yet, which is what makes processing order — frontier first,
// then levels ascending — safe even when a shared subexpression's
// parent is scheduled before one of its other parents would have
// reached it.
func (m *Matcher[T]) resolverFor(store *dagstore.Store[T], event *schema.Event) func(dagstore.NodeIndex) predicate.TriState {
	var resolve func(idx dagstore.NodeIndex) predicate.TriState
	resolve = func(idx dagstore.NodeIndex) predicate.TriState {
		if m.resolved[idx] {
			return m.value[idx]
		}
		e := store.Entry(idx)

		var v predicate.TriState
		switch {
		case e.Leaf:
			v = e.Predicate.Evaluate(event)
		case e.Op == rewrite.OptAnd:
			left := resolve(e.Children[0])
			if left == predicate.False {
				v = predicate.False
			} else {
				right := resolve(e.Children[1])
				v = combineAnd(left, right)
			}
		default: // OptOr
			left := resolve(e.Children[0])
			if left == predicate.True {
				v = predicate.True
			} else {
				right := resolve(e.Children[1])
				v = combineOr(left, right)
			}
		}

		m.resolved[idx] = true
		m.value[idx] = v
		return v
	}
	return resolve
}

func combineAnd(a, b predicate.TriState) predicate.TriState {
	if a == predicate.False || b == predicate.False {
		return predicate.False
	}
	if a == predicate.True && b == predicate.True {
		return predicate.True
	}
	return predicate.UndefinedResult
}

func combineOr(a, b predicate.TriState) predicate.TriState {
	if a == predicate.True || b == predicate.True {
		return predicate.True
	}
	if a == predicate.False && b == predicate.False {
		return predicate.False
	}
	return predicate.UndefinedResult
}
