package rewrite

import "github.com/arborio/atree/internal/predicate"

// OptimizedKind is the closed, Not-free output variant set.
type OptimizedKind int

const (
	OptAnd OptimizedKind = iota
	OptOr
	OptValue
)

// salts distinguish And/Or in the id combine (spec §4.2): two distinct
// 64-bit constants, never derived from anything process-randomized.
const (
	andSalt uint64 = 0x9E3779B97F4A7C15
	orSalt  uint64 = 0xC2B2AE3D27D4EB4F
)

// Node is the normalized, hashable expression form. Two structurally
// equivalent expressions, up to commutativity of And/Or and the
// position of Not, produce the same Node id.
type Node struct {
	Kind      OptimizedKind
	Left      *Node
	Right     *Node
	Predicate predicate.Evaluator

	id   uint64
	cost uint64
}

func (n *Node) ID() uint64   { return n.id }
func (n *Node) Cost() uint64 { return n.cost }

func leaf(p predicate.Evaluator) *Node {
	return &Node{Kind: OptValue, Predicate: p, id: p.ID(), cost: p.Cost()}
}

// binary builds a canonically ordered And/Or node: children are
// compared by cost ascending, then id ascending as a deterministic
// tie-break, and swapped if necessary so the cheaper child always comes
// first (spec §4.2 — this is also what lets the matcher short-circuit
// on the cheap side, and what makes InsertRoot's access-child choice in
// internal/dagstore trivial).
func binary(kind OptimizedKind, salt uint64, extraCost uint64, a, b *Node) *Node {
	if a.cost > b.cost || (a.cost == b.cost && a.id > b.id) {
		a, b = b, a
	}
	return &Node{
		Kind:  kind,
		Left:  a,
		Right: b,
		id:    predicate.Combine(a.id, b.id, salt),
		cost:  a.cost + b.cost + extraCost,
	}
}

func and(a, b *Node) *Node { return binary(OptAnd, andSalt, 50, a, b) }
func or(a, b *Node) *Node  { return binary(OptOr, orSalt, 60, a, b) }
