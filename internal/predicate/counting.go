package predicate

import "github.com/arborio/atree/internal/schema"

// Counter is a test double for the §8 short-circuit property: wrap a
// predicate with a Counter and assert EvaluateCount stays zero for the
// predicates an AND root's false child should have pruned.
type Counter struct {
	Predicate     *Predicate
	EvaluateCount int
}

// NewCounter wraps p for instrumented evaluation.
func NewCounter(p *Predicate) *Counter {
	return &Counter{Predicate: p}
}

// Evaluate counts the call, then evaluates the wrapped predicate.
func (c *Counter) Evaluate(event *schema.Event) TriState {
	c.EvaluateCount++
	return Evaluate(c.Predicate, event)
}

// ID, Cost, and AttrID pass through to the wrapped predicate so Counter
// satisfies Evaluator and can stand in for a Predicate anywhere a DAG
// leaf is built.
func (c *Counter) ID() uint64                 { return c.Predicate.ID() }
func (c *Counter) Cost() uint64               { return c.Predicate.Cost() }
func (c *Counter) AttrID() schema.AttributeId { return c.Predicate.Attr }
