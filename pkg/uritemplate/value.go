package uritemplate

// Kind discriminates the shapes a variable binding can take. The set is
// closed: expansion matches exhaustively over these four kinds, so there
// is no "unsupported type" failure path at run time.
type Kind int

const (
	// KindAbsent marks an undefined variable. The zero Value is absent.
	KindAbsent Kind = iota
	KindScalar
	KindList
	KindMap
)

// Pair is one ordered entry of a map-valued variable.
type Pair struct {
	Key   string
	Value string
}

// Value is a variable binding: absent, a scalar string, an ordered list
// of strings, or an ordered key/value map. Map entries keep their
// insertion order because several operators render them positionally.
type Value struct {
	kind  Kind
	str   string
	list  []string
	pairs []Pair
}

// StringValue binds a scalar string.
func StringValue(s string) Value {
	return Value{kind: KindScalar, str: s}
}

// ListValue binds an ordered list of strings.
func ListValue(items ...string) Value {
	return Value{kind: KindList, list: items}
}

// MapValue binds an ordered sequence of key/value pairs.
func MapValue(pairs ...Pair) Value {
	return Value{kind: KindMap, pairs: pairs}
}

// Kind returns the shape of the binding.
func (v Value) Kind() Kind { return v.kind }

// IsDefined reports whether the binding contributes to an expansion: an
// absent value and an empty list or map are all undefined per RFC 6570.
func (v Value) IsDefined() bool {
	switch v.kind {
	case KindScalar:
		return true
	case KindList:
		return len(v.list) > 0
	case KindMap:
		return len(v.pairs) > 0
	default:
		return false
	}
}

// LookupFunc resolves a variable name to its binding. Returning the zero
// Value marks the name undefined. Template expansion calls the function
// once per varspec occurrence.
type LookupFunc func(name string) Value

// Variables is a mutable set of name-to-Value bindings used as the
// common argument to Template.Expand. The zero value is usable.
type Variables struct {
	values map[string]Value
}

// NewVariables returns an empty binding set.
func NewVariables() *Variables {
	return &Variables{}
}

// Set binds name to a scalar string. It returns the receiver for
// chaining.
func (v *Variables) Set(name, value string) *Variables {
	return v.SetValue(name, StringValue(value))
}

// SetList binds name to an ordered list of strings.
func (v *Variables) SetList(name string, items ...string) *Variables {
	return v.SetValue(name, ListValue(items...))
}

// SetMap binds name to an ordered key/value map.
func (v *Variables) SetMap(name string, pairs ...Pair) *Variables {
	return v.SetValue(name, MapValue(pairs...))
}

// SetValue binds name to an arbitrary Value.
func (v *Variables) SetValue(name string, value Value) *Variables {
	if v.values == nil {
		v.values = make(map[string]Value)
	}
	v.values[name] = value
	return v
}

// Get returns the binding for name, or the zero (absent) Value. Safe on
// a nil receiver.
func (v *Variables) Get(name string) Value {
	if v == nil {
		return Value{}
	}
	return v.values[name]
}

// Len returns the number of bound names.
func (v *Variables) Len() int {
	if v == nil {
		return 0
	}
	return len(v.values)
}
