// Package graphviz renders a dagstore.Store as a Graphviz dot graph for
// inspection, grounded on the traversal the teacher's DagStatistics
// collector runs over CompiledDag (internal/dag/types.go).
package graphviz

import (
	"fmt"
	"strings"

	"github.com/arborio/atree/internal/dagstore"
	"github.com/arborio/atree/internal/rewrite"
)

// ToDot walks every live node in store and renders it as a dot graph:
// leaves as boxes labeled with their attribute id and cost, internal
// nodes as ellipses labeled with their operator and level, and non-leaf
// root nodes as double ellipses labeled with their operator and
// subscription ids. A leaf that carries subscriptions is drawn as a
// plain leaf box; its subscription ids are not shown.
func ToDot[T comparable](store *dagstore.Store[T]) string {
	var b strings.Builder
	b.WriteString("digraph atree {\n")
	b.WriteString("  rankdir=BT;\n")

	for i := 0; i < store.Len(); i++ {
		idx := dagstore.NodeIndex(i)
		e := store.Entry(idx)
		if e.Tombstoned {
			continue
		}
		label, shape := nodeLabel(e)
		fmt.Fprintf(&b, "  n%d [label=%q shape=%s];\n", i, label, shape)
		if !e.Leaf {
			fmt.Fprintf(&b, "  n%d -> n%d;\n", i, int(e.Children[0]))
			fmt.Fprintf(&b, "  n%d -> n%d;\n", i, int(e.Children[1]))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

func nodeLabel[T comparable](e *dagstore.Entry[T]) (label, shape string) {
	if e.Leaf {
		return fmt.Sprintf("attr#%d\\ncost=%d", e.Predicate.AttrID(), e.Cost), "box"
	}
	op := "AND"
	if e.Op == rewrite.OptOr {
		op = "OR"
	}
	if e.IsRoot() {
		return fmt.Sprintf("%s\\nsubs=%v", op, e.Subscriptions), "doubleellipse"
	}
	return fmt.Sprintf("%s\\nlevel=%d", op, e.Level), "ellipse"
}
