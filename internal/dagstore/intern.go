package dagstore

import (
	"github.com/arborio/atree/internal/rewrite"
	"github.com/arborio/atree/pkg/errors"
)

// InsertRoot interns opt as the expression for subID, reusing any
// existing node with the same expression id (spec §4.3 step 1) and
// otherwise recursively interning its children before allocating the
// root entry itself. Re-adding an id already subscribed by subID is a
// no-op.
func (s *Store[T]) InsertRoot(subID T, opt *rewrite.Node) error {
	if opt == nil {
		return errors.NewInvalidExpression("nil optimized node")
	}

	if idx, ok := s.expressionIndex[opt.ID()]; ok {
		e := &s.pool[idx]
		for _, sub := range e.Subscriptions {
			if sub == subID {
				return nil
			}
		}
		e.Subscriptions = append(e.Subscriptions, subID)
		e.UseCount++
		s.subscriptionIndex[subID] = idx
		s.addToFrontier(idx)
		return nil
	}

	idx := s.insertNode(opt)
	e := &s.pool[idx]
	e.Subscriptions = append(e.Subscriptions, subID)
	e.UseCount++
	s.subscriptionIndex[subID] = idx
	s.addToFrontier(idx)
	return nil
}

// insertChild interns opt as a non-root node (I or L, no subscription
// attached) — used while descending into an already-being-inserted
// root's children.
func (s *Store[T]) insertChild(opt *rewrite.Node) NodeIndex {
	if idx, ok := s.expressionIndex[opt.ID()]; ok {
		return idx
	}
	return s.insertNode(opt)
}

// insertNode allocates a brand-new entry for opt (whose expression id
// is not yet present), recursing into children first so Children holds
// already-resolved indices in the same ascending-cost order the
// OptimizedNode already carries.
func (s *Store[T]) insertNode(opt *rewrite.Node) NodeIndex {
	var idx NodeIndex
	if opt.Kind == rewrite.OptValue {
		idx = s.allocLeaf(opt.Predicate)
	} else {
		left := s.insertChild(opt.Left)
		right := s.insertChild(opt.Right)
		idx = s.allocInternal(opFromOptimized(opt.Kind), left, right, opt.ID(), opt.Cost())
		s.linkParent(left, idx)
		s.linkParent(right, idx)
	}
	s.expressionIndex[opt.ID()] = idx
	s.updateMaxLevel(s.pool[idx].Level)
	return idx
}

// addToFrontier walks down from a root, registering
// every leaf that must be evaluated unconditionally: under an Or, both
// children always participate (either can make it true); under an And,
// only the cheapest ("access") child does, since And's matcher handling
// evaluates the rest lazily once the access child actually fires
// (spec §4.3's Open Question resolution in SPEC_FULL.md §5). Children
// are already ordered ascending-cost by the rewrite package, so the
// access child is always Children[0].
func (s *Store[T]) addToFrontier(idx NodeIndex) {
	e := &s.pool[idx]
	if e.Leaf {
		s.registerFrontier(idx)
		return
	}
	if e.Op == rewrite.OptOr {
		s.addToFrontier(e.Children[0])
		s.addToFrontier(e.Children[1])
		return
	}
	s.addToFrontier(e.Children[0])
}

func (s *Store[T]) registerFrontier(idx NodeIndex) {
	if s.inFrontier[idx] {
		return
	}
	s.inFrontier[idx] = true
	s.frontier = append(s.frontier, idx)
}

func (s *Store[T]) unregisterFrontier(idx NodeIndex) {
	if !s.inFrontier[idx] {
		return
	}
	delete(s.inFrontier, idx)
	for i, f := range s.frontier {
		if f == idx {
			s.frontier = append(s.frontier[:i], s.frontier[i+1:]...)
			return
		}
	}
}
