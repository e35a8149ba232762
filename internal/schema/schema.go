// Package schema provides the attribute-schema registry: the
// (name -> id, kind) mapping every predicate and event is built
// against. It is constructed once and frozen (spec §5): after
// New returns, no synchronization is needed for reads.
package schema

import (
	"fmt"

	"github.com/arborio/atree/pkg/errors"
)

// AttributeId is a dense integer assigned in registration order and
// stable for the life of the engine.
type AttributeId uint32

// AttributeKind is the closed set of value kinds an attribute can carry.
// Undefined is never a registered attribute kind; it is the tri-state
// value an event reports for an attribute it omits.
type AttributeKind int

const (
	Bool AttributeKind = iota
	Int
	Float
	String
	BoolList
	IntList
	FloatList
	StringList
	Undefined
)

func (k AttributeKind) String() string {
	switch k {
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case BoolList:
		return "BoolList"
	case IntList:
		return "IntList"
	case FloatList:
		return "FloatList"
	case StringList:
		return "StringList"
	case Undefined:
		return "Undefined"
	default:
		return fmt.Sprintf("AttributeKind(%d)", int(k))
	}
}

// IsList reports whether values of this kind are lists.
func (k AttributeKind) IsList() bool {
	switch k {
	case BoolList, IntList, FloatList, StringList:
		return true
	default:
		return false
	}
}

// AttributeDef is one row of the schema: a name and the kind of value
// events will carry for it.
type AttributeDef struct {
	Name string
	Kind AttributeKind
}

// Schema is the frozen (name -> id, kind) registry. Build it once with
// New and share it across every Engine, Builder, and Predicate
// construction site.
type Schema struct {
	defs    []AttributeDef
	byName  map[string]AttributeId
}

// New builds a Schema from attribute definitions in the order given;
// AttributeId assignment follows that order. Duplicate names fail with
// DuplicateAttribute and the schema is not constructed.
func New(defs []AttributeDef) (*Schema, error) {
	byName := make(map[string]AttributeId, len(defs))
	for i, d := range defs {
		if _, exists := byName[d.Name]; exists {
			return nil, errors.NewDuplicateAttribute(d.Name)
		}
		byName[d.Name] = AttributeId(i)
	}
	out := make([]AttributeDef, len(defs))
	copy(out, defs)
	return &Schema{defs: out, byName: byName}, nil
}

// GetByName resolves an attribute name to its id and kind.
func (s *Schema) GetByName(name string) (AttributeId, AttributeKind, bool) {
	id, ok := s.byName[name]
	if !ok {
		return 0, Undefined, false
	}
	return id, s.defs[id].Kind, true
}

// GetByID returns the definition registered at id. Panics if id is out
// of range: callers only ever hold ids this Schema issued.
func (s *Schema) GetByID(id AttributeId) AttributeDef {
	return s.defs[id]
}

// Count returns the number of registered attributes.
func (s *Schema) Count() int {
	return len(s.defs)
}
