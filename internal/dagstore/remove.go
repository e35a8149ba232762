package dagstore

// RemoveRule detaches subID's subscription from its root node and
// recursively tombstones any node whose use-count (parent edges plus
// subscriptions) drops to zero as a result (spec §4.3 step 4). Removing
// an id that was never added is a no-op, matching the engine's
// idempotent RemoveRule contract (spec §4.5).
func (s *Store[T]) RemoveRule(subID T) {
	idx, ok := s.subscriptionIndex[subID]
	if !ok {
		return
	}
	delete(s.subscriptionIndex, subID)

	e := &s.pool[idx]
	if !e.removeSubscription(subID) {
		return
	}
	e.UseCount--
	if e.UseCount == 0 {
		s.tombstone(idx)
	}
	s.recomputeMaxLevel()
}

func (s *Store[T]) tombstone(idx NodeIndex) {
	e := &s.pool[idx]
	if e.Tombstoned {
		return
	}
	e.Tombstoned = true
	delete(s.expressionIndex, e.ExpressionID)
	s.unregisterFrontier(idx)

	if !e.Leaf {
		children := e.Children
		e.Children = [2]NodeIndex{}
		for _, c := range children {
			s.pool[c].removeParent(idx)
			s.decrementUse(c)
		}
	}
	e.Parents = nil
	e.Subscriptions = nil
}

func (s *Store[T]) decrementUse(idx NodeIndex) {
	e := &s.pool[idx]
	if e.UseCount == 0 {
		return
	}
	e.UseCount--
	if e.UseCount == 0 {
		s.tombstone(idx)
	}
}

// recomputeMaxLevel rescans every live entry, mirroring the teacher's
// practice of deriving aggregate DAG statistics by traversal rather
// than maintaining a running counter that removal would have to
// carefully decrement (internal/dag/optimizer.go's topological pass).
func (s *Store[T]) recomputeMaxLevel() {
	max := 0
	for i := range s.pool {
		e := &s.pool[i]
		if e.Tombstoned {
			continue
		}
		if e.Level > max {
			max = e.Level
		}
	}
	s.maxLevel = max
}
