package predicate

// Negate returns the logical complement of p. It is an involution:
// Negate(Negate(p)) has the same (AttributeId, Kind) as p, and
// therefore the same id.
func Negate(p *Predicate) *Predicate {
	k := p.Kind
	switch k.Variant {
	case Variable:
		k.Variant = NegatedVariable
	case NegatedVariable:
		k.Variant = Variable
	case Equality:
		k.EqOp = k.EqOp.negate()
	case Comparison:
		k.CmpOp = k.CmpOp.negate()
	case Set:
		k.SetOp = k.SetOp.negate()
	case List:
		k.ListOp = k.ListOp.negate()
	case Null:
		k.NullOp = k.NullOp.negate()
	}
	return &Predicate{Attr: p.Attr, Kind: k}
}
