// Package dagstore implements the shared DAG store of spec §4.3: an
// append-indexed pool of nodes with structural sharing enforced by an
// expression-id -> index map, use-counts, levels, and the predicate
// frontier the matcher primes at the start of every event.
package dagstore

import (
	"github.com/arborio/atree/internal/predicate"
	"github.com/arborio/atree/internal/rewrite"
)

// NodeIndex is an entry's identity within the store. It stays valid
// until Compact runs (spec §9: tombstone rather than generational
// reuse — indices are stable for the life of the engine between
// Compact calls).
type NodeIndex int32

const invalidIndex NodeIndex = -1

// Op mirrors rewrite.OptimizedKind for internal/root entries.
type Op = rewrite.OptimizedKind

// Entry is a DAG node. Leaf==true selects the L variant (spec §3);
// otherwise it is I or R depending solely on whether Subscriptions is
// non-empty — the spec explicitly permits not special-casing the rare
// case where a whole rule's expression happens to also be some other
// rule's sub-expression (§4.3 step 1's "not required"), so an entry may
// carry both parent edges and subscriptions at once.
type Entry[T comparable] struct {
	Leaf      bool
	Predicate predicate.Evaluator // set iff Leaf

	Op       Op           // meaningful iff !Leaf
	Children [2]NodeIndex // meaningful iff !Leaf, ascending cost

	Parents       []NodeIndex
	Subscriptions []T

	ExpressionID uint64
	Cost         uint64
	UseCount     uint32
	Level        int

	Tombstoned bool
}

// IsRoot reports whether this entry carries at least one subscription.
func (e *Entry[T]) IsRoot() bool {
	return len(e.Subscriptions) > 0
}

func (e *Entry[T]) addParent(idx NodeIndex) {
	for _, p := range e.Parents {
		if p == idx {
			return
		}
	}
	e.Parents = append(e.Parents, idx)
}

func (e *Entry[T]) removeParent(idx NodeIndex) {
	for i, p := range e.Parents {
		if p == idx {
			e.Parents = append(e.Parents[:i], e.Parents[i+1:]...)
			return
		}
	}
}

func (e *Entry[T]) removeSubscription(id T) bool {
	for i, s := range e.Subscriptions {
		if s == id {
			e.Subscriptions = append(e.Subscriptions[:i], e.Subscriptions[i+1:]...)
			return true
		}
	}
	return false
}
