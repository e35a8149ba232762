package dagstore

import (
	"github.com/arborio/atree/internal/predicate"
	"github.com/arborio/atree/internal/rewrite"
)

// Store is the shared DAG of a single Engine instance. It is not
// concurrency-safe on its own; Engine serializes access the same way
// the teacher's DagEngine does around its builder.
type Store[T comparable] struct {
	pool              []Entry[T]
	expressionIndex   map[uint64]NodeIndex
	subscriptionIndex map[T]NodeIndex

	frontier    []NodeIndex
	inFrontier  map[NodeIndex]bool
	maxLevel    int
}

// New returns an empty store.
func New[T comparable]() *Store[T] {
	return &Store[T]{
		expressionIndex:   make(map[uint64]NodeIndex),
		subscriptionIndex: make(map[T]NodeIndex),
		inFrontier:        make(map[NodeIndex]bool),
	}
}

func (s *Store[T]) alloc(e Entry[T]) NodeIndex {
	idx := NodeIndex(len(s.pool))
	s.pool = append(s.pool, e)
	return idx
}

func (s *Store[T]) allocLeaf(p predicate.Evaluator) NodeIndex {
	return s.alloc(Entry[T]{
		Leaf:         true,
		Predicate:    p,
		ExpressionID: p.ID(),
		Cost:         p.Cost(),
		Level:        1,
	})
}

func (s *Store[T]) allocInternal(op Op, left, right NodeIndex, id, cost uint64) NodeIndex {
	level := 1 + maxInt(s.pool[left].Level, s.pool[right].Level)
	return s.alloc(Entry[T]{
		Op:           op,
		Children:     [2]NodeIndex{left, right},
		ExpressionID: id,
		Cost:         cost,
		Level:        level,
	})
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (s *Store[T]) linkParent(child, parent NodeIndex) {
	s.pool[child].addParent(parent)
	s.pool[child].UseCount++
}

func (s *Store[T]) updateMaxLevel(level int) {
	if level > s.maxLevel {
		s.maxLevel = level
	}
}

// Entry exposes a live entry by index. The matcher and graphviz dumper
// read the store through this accessor; callers must not hold the
// returned pointer across a Compact.
func (s *Store[T]) Entry(idx NodeIndex) *Entry[T] {
	return &s.pool[idx]
}

// Len returns the number of slots in the pool, including tombstones.
func (s *Store[T]) Len() int { return len(s.pool) }

// MaxLevel returns the highest level among live nodes.
func (s *Store[T]) MaxLevel() int { return s.maxLevel }

// Frontier returns the current predicate frontier — the leaf indices
// the matcher evaluates unconditionally at the start of every event
// (spec §4.4 step 1).
func (s *Store[T]) Frontier() []NodeIndex {
	return s.frontier
}

// RootIndex looks up the node a subscription id currently resolves to.
func (s *Store[T]) RootIndex(subID T) (NodeIndex, bool) {
	idx, ok := s.subscriptionIndex[subID]
	return idx, ok
}

func opFromOptimized(k rewrite.OptimizedKind) Op { return k }
