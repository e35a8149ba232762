package dagstore

// Statistics is a point-in-time snapshot of the store's shape, grounded
// on the teacher's DagStatistics (internal/dag/types.go).
type Statistics struct {
	LeafNodes       int
	InternalNodes   int
	RootNodes       int
	TombstonedNodes int
	MaxLevel        int
	FrontierSize    int
}

// Statistics walks the live pool and summarizes it.
func (s *Store[T]) Statistics() Statistics {
	var st Statistics
	st.MaxLevel = s.maxLevel
	st.FrontierSize = len(s.frontier)
	for i := range s.pool {
		e := &s.pool[i]
		if e.Tombstoned {
			st.TombstonedNodes++
			continue
		}
		if e.IsRoot() {
			st.RootNodes++
		}
		if e.Leaf {
			st.LeafNodes++
		} else {
			st.InternalNodes++
		}
	}
	return st
}
