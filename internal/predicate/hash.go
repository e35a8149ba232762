package predicate

import (
	"encoding/binary"
	"math"

	"github.com/arborio/atree/internal/schema"
	"github.com/cespare/xxhash/v2"
)

// canonicalBytes writes a stable encoding of attr+kind: operator tag,
// attribute id little-endian, literal bytes little-endian, list contents
// (Int and String lists in sorted order, Bool and Float lists in stored
// order). No pointer addresses or process-randomized state ever enter
// this path (spec §9), so the resulting hash is reproducible across
// runs and processes.
func canonicalBytes(attr schema.AttributeId, k Kind) []byte {
	h := make([]byte, 0, 32)
	var tmp [8]byte

	putU64 := func(v uint64) {
		binary.LittleEndian.PutUint64(tmp[:], v)
		h = append(h, tmp[:]...)
	}
	putI64 := func(v int64) { putU64(uint64(v)) }
	putF64 := func(v float64) { putU64(math.Float64bits(v)) }

	putU64(uint64(attr))
	h = append(h, byte(k.Variant))

	switch k.Variant {
	case Variable, NegatedVariable:
		// no payload

	case Equality:
		h = append(h, byte(k.EqOp))
		appendValue(&h, k.Literal, putI64, putF64, putU64)

	case Comparison:
		h = append(h, byte(k.CmpOp))
		appendValue(&h, k.Literal, putI64, putF64, putU64)

	case Set:
		h = append(h, byte(k.SetOp))
		appendValue(&h, k.Haystack, putI64, putF64, putU64)

	case List:
		h = append(h, byte(k.ListOp))
		appendValue(&h, k.Haystack, putI64, putF64, putU64)

	case Null:
		h = append(h, byte(k.NullOp))
	}

	return h
}

func appendValue(h *[]byte, v schema.Value, putI64 func(int64), putF64 func(float64), putU64 func(uint64)) {
	*h = append(*h, byte(v.Kind))
	switch v.Kind {
	case schema.Bool:
		if v.Bool {
			*h = append(*h, 1)
		} else {
			*h = append(*h, 0)
		}
	case schema.Int:
		putI64(v.Int)
	case schema.Float:
		putF64(v.Float)
	case schema.String:
		putU64(uint64(v.Str))
	case schema.IntList:
		putU64(uint64(len(v.IntList)))
		for _, x := range schema.SortedInts(v.IntList) {
			putI64(x)
		}
	case schema.StringList:
		putU64(uint64(len(v.StringList)))
		for _, x := range schema.SortedStringRefs(v.StringList) {
			putU64(uint64(x))
		}
	case schema.BoolList:
		putU64(uint64(len(v.BoolList)))
		for _, x := range v.BoolList {
			if x {
				*h = append(*h, 1)
			} else {
				*h = append(*h, 0)
			}
		}
	case schema.FloatList:
		putU64(uint64(len(v.FloatList)))
		for _, x := range v.FloatList {
			putF64(x)
		}
	}
}

func hashPredicate(attr schema.AttributeId, k Kind) uint64 {
	return xxhash.Sum64(canonicalBytes(attr, k))
}

// Combine folds two child ids with an operator salt by hashing their
// little-endian bytes with xxhash, for computing OptimizedNode ids
// (spec §4.2). Exported for package rewrite.
func Combine(a, b uint64, salt uint64) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], a)
	binary.LittleEndian.PutUint64(buf[8:16], b)
	binary.LittleEndian.PutUint64(buf[16:24], salt)
	return xxhash.Sum64(buf[:])
}
