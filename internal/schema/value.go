package schema

import "sort"

// Value is a tagged AttributeValue. Exactly one field is meaningful,
// selected by Kind; Kind == Undefined means "the event omitted this
// attribute" and every other field is zero.
type Value struct {
	Kind        AttributeKind
	Bool        bool
	Int         int64
	Float       float64
	Str         StringRef
	BoolList    []bool
	IntList     []int64
	FloatList   []float64
	StringList  []StringRef
}

// UndefinedValue is the value read for an attribute an event omits.
var UndefinedValue = Value{Kind: Undefined}

func BoolValue(b bool) Value             { return Value{Kind: Bool, Bool: b} }
func IntValue(i int64) Value             { return Value{Kind: Int, Int: i} }
func FloatValue(f float64) Value         { return Value{Kind: Float, Float: f} }
func StringValue(s StringRef) Value      { return Value{Kind: String, Str: s} }
func BoolListValue(v []bool) Value       { return Value{Kind: BoolList, BoolList: v} }
func IntListValue(v []int64) Value       { return Value{Kind: IntList, IntList: v} }
func FloatListValue(v []float64) Value   { return Value{Kind: FloatList, FloatList: v} }
func StringListValue(v []StringRef) Value { return Value{Kind: StringList, StringList: v} }

// ListLen returns the length of a list-kind value; 0 for non-lists.
func (v Value) ListLen() int {
	switch v.Kind {
	case BoolList:
		return len(v.BoolList)
	case IntList:
		return len(v.IntList)
	case FloatList:
		return len(v.FloatList)
	case StringList:
		return len(v.StringList)
	default:
		return 0
	}
}

// SortedInts returns a sorted copy of a literal's int haystack, used by
// predicate construction so Set payloads satisfy the §3 sorted-literal
// invariant regardless of caller order.
func SortedInts(in []int64) []int64 {
	out := make([]int64, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SortedStringRefs returns a sorted copy of a literal's StringRef
// haystack (sorted by the ref's integer value, which is stable within
// one engine instance — see StringRef's doc comment).
func SortedStringRefs(in []StringRef) []StringRef {
	out := make([]StringRef, len(in))
	copy(out, in)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
