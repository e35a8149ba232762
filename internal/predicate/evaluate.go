package predicate

import (
	"sort"

	"github.com/arborio/atree/internal/schema"
)

// Evaluate runs p against event per spec §4.1's semantics: Undefined
// attribute values yield TriState Undefined except for Null predicates,
// which inspect the value directly.
func Evaluate(p *Predicate, event *schema.Event) TriState {
	v := event.Get(p.Attr)

	if p.Kind.Variant == Null {
		return evalNull(p.Kind.NullOp, v)
	}
	if v.Kind == schema.Undefined {
		return UndefinedResult
	}

	switch p.Kind.Variant {
	case Variable:
		return FromBool(v.Bool)
	case NegatedVariable:
		return FromBool(!v.Bool)
	case Equality:
		return evalEquality(p.Kind.EqOp, p.Kind.Literal, v)
	case Comparison:
		return evalComparison(p.Kind.CmpOp, p.Kind.Literal, v)
	case Set:
		return evalSet(p.Kind.SetOp, p.Kind.Haystack, v)
	case List:
		return evalList(p.Kind.ListOp, p.Kind.Haystack, v)
	default:
		return UndefinedResult
	}
}

func evalEquality(op EqOp, literal, actual schema.Value) TriState {
	var eq bool
	switch actual.Kind {
	case schema.Bool:
		eq = actual.Bool == literal.Bool
	case schema.Int:
		eq = actual.Int == literal.Int
	case schema.Float:
		eq = actual.Float == literal.Float
	case schema.String:
		eq = actual.Str == literal.Str
	}
	if op == Neq {
		eq = !eq
	}
	return FromBool(eq)
}

func evalComparison(op CmpOp, literal, actual schema.Value) TriState {
	var lt, eq bool
	switch actual.Kind {
	case schema.Int:
		lt = actual.Int < literal.Int
		eq = actual.Int == literal.Int
	case schema.Float:
		lt = actual.Float < literal.Float
		eq = actual.Float == literal.Float
	}
	switch op {
	case Lt:
		return FromBool(lt)
	case Lte:
		return FromBool(lt || eq)
	case Gt:
		return FromBool(!lt && !eq)
	default: // Gte
		return FromBool(!lt || eq)
	}
}

// evalSet uses binary search on the sorted haystack (spec §4.1).
func evalSet(op SetOp, haystack, actual schema.Value) TriState {
	var found bool
	switch haystack.Kind {
	case schema.IntList:
		n := len(haystack.IntList)
		i := sort.Search(n, func(i int) bool { return haystack.IntList[i] >= actual.Int })
		found = i < n && haystack.IntList[i] == actual.Int
	case schema.StringList:
		n := len(haystack.StringList)
		i := sort.Search(n, func(i int) bool { return haystack.StringList[i] >= actual.Str })
		found = i < n && haystack.StringList[i] == actual.Str
	}
	if op == NotIn {
		found = !found
	}
	return FromBool(found)
}

// evalList implements OneOf/NoneOf/AllOf/NotAllOf: set operations
// between the predicate's probe list and the event's list value.
func evalList(op ListOp, probe, actual schema.Value) TriState {
	switch op {
	case OneOf:
		return FromBool(intersects(probe, actual))
	case NoneOf:
		return FromBool(!intersects(probe, actual))
	case AllOf:
		return FromBool(subsetOf(probe, actual))
	default: // NotAllOf
		return FromBool(!subsetOf(probe, actual))
	}
}

func intersects(probe, actual schema.Value) bool {
	members := membershipSet(actual)
	for _, k := range probeKeys(probe) {
		if members[k] {
			return true
		}
	}
	return false
}

// subsetOf reports whether probe ⊆ actual, vacuously true for an empty
// probe (spec §4.1).
func subsetOf(probe, actual schema.Value) bool {
	members := membershipSet(actual)
	for _, k := range probeKeys(probe) {
		if !members[k] {
			return false
		}
	}
	return true
}

// membershipSet/probeKeys encode each list-kind value as comparable
// keys so OneOf/AllOf can be expressed as plain map membership,
// independent of the event's declared ordering (spec: "list values
// coming from events are not required to be sorted").
func membershipSet(v schema.Value) map[any]bool {
	out := make(map[any]bool)
	for _, k := range probeKeys(v) {
		out[k] = true
	}
	return out
}

func probeKeys(v schema.Value) []any {
	switch v.Kind {
	case schema.BoolList:
		out := make([]any, len(v.BoolList))
		for i, x := range v.BoolList {
			out[i] = x
		}
		return out
	case schema.IntList:
		out := make([]any, len(v.IntList))
		for i, x := range v.IntList {
			out[i] = x
		}
		return out
	case schema.FloatList:
		out := make([]any, len(v.FloatList))
		for i, x := range v.FloatList {
			out[i] = x
		}
		return out
	case schema.StringList:
		out := make([]any, len(v.StringList))
		for i, x := range v.StringList {
			out[i] = x
		}
		return out
	default:
		return nil
	}
}

func evalNull(op NullOp, v schema.Value) TriState {
	switch op {
	case IsNull:
		return FromBool(v.Kind == schema.Undefined)
	case IsNotNull:
		return FromBool(v.Kind != schema.Undefined)
	case IsEmpty:
		return FromBool(v.Kind != schema.Undefined && v.ListLen() == 0)
	default: // IsNotEmpty
		return FromBool(v.Kind == schema.Undefined || v.ListLen() > 0)
	}
}
