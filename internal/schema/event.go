package schema

// Event is an immutable array of Values indexed by AttributeId. Missing
// entries read as Undefined.
type Event struct {
	values []Value
}

// Get returns the value for id, or Undefined if the event never set it.
func (e *Event) Get(id AttributeId) Value {
	if int(id) >= len(e.values) {
		return UndefinedValue
	}
	return e.values[id]
}

// Builder accumulates With* calls and produces an immutable Event.
// Setters return the builder so calls can be chained.
type Builder struct {
	schema *Schema
	values []Value
}

// NewBuilder returns a builder sized to schema; every attribute starts
// Undefined until set.
func NewBuilder(s *Schema) *Builder {
	values := make([]Value, s.Count())
	for i := range values {
		values[i] = UndefinedValue
	}
	return &Builder{schema: s, values: values}
}

func (b *Builder) set(name string, v Value) *Builder {
	id, _, ok := b.schema.GetByName(name)
	if !ok {
		// Unknown names are silently dropped: event construction has no
		// error return in the external API (§6); predicate construction
		// is where UnknownAttribute surfaces.
		return b
	}
	b.values[id] = v
	return b
}

func (b *Builder) WithBool(name string, v bool) *Builder             { return b.set(name, BoolValue(v)) }
func (b *Builder) WithInt(name string, v int64) *Builder             { return b.set(name, IntValue(v)) }
func (b *Builder) WithFloat(name string, v float64) *Builder         { return b.set(name, FloatValue(v)) }
func (b *Builder) WithString(name string, v StringRef) *Builder      { return b.set(name, StringValue(v)) }
func (b *Builder) WithBoolList(name string, v []bool) *Builder       { return b.set(name, BoolListValue(v)) }
func (b *Builder) WithIntList(name string, v []int64) *Builder       { return b.set(name, IntListValue(v)) }
func (b *Builder) WithFloatList(name string, v []float64) *Builder   { return b.set(name, FloatListValue(v)) }
func (b *Builder) WithStringList(name string, v []StringRef) *Builder {
	return b.set(name, StringListValue(v))
}

// Build produces the immutable Event. The builder may be reused
// afterward; Build copies its backing slice.
func (b *Builder) Build() *Event {
	out := make([]Value, len(b.values))
	copy(out, b.values)
	return &Event{values: out}
}
