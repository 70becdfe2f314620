package uritemplate

import "strings"

// Template is a compiled URI template: an ordered sequence of literal
// and expression terms, in source order. A Template is immutable and
// safe to expand concurrently, provided any LookupFunc supplied by the
// caller is itself safe.
type Template struct {
	source string
	terms  []term
}

// term is one parsed unit of a template.
type term interface {
	expand(lookup LookupFunc, b *strings.Builder) error
}

// literal is already-normalized output text: reserved and unreserved
// characters verbatim, everything else percent-encoded at parse time.
type literal string

// expression is one {...} placeholder with its operator and varspecs.
type expression struct {
	op       Op
	varspecs []Varspec
}

// Varspec is one variable reference inside an expression.
type Varspec struct {
	// Name is the lookup key, exactly as written in the source
	// (percent-triplets not decoded).
	Name string

	// DecodedName is Name with percent-triplets decoded to characters.
	// It is the form encoded into the output when an operator renders
	// the variable's name.
	DecodedName string

	// MaxLength is the prefix modifier (:N) in [1, 9999], or 0 when the
	// varspec has none. Mutually exclusive with Explode by grammar.
	MaxLength int

	// Explode marks the * modifier.
	Explode bool
}

// Compile parses source into a Template. The whole input must be
// consumed as alternating literal and expression runs; otherwise a
// *ParseError is returned.
func Compile(source string) (*Template, error) {
	return (&parser{src: source}).compile()
}

// MustCompile is like Compile but panics on error. It simplifies safe
// initialization of package-level template variables.
func MustCompile(source string) *Template {
	t, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return t
}

// Source returns the template source string as given to Compile.
func (t *Template) Source() string { return t.source }

func (t *Template) String() string { return t.source }

// Varnames returns the distinct variable names referenced by the
// template, in order of first appearance.
func (t *Template) Varnames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, tm := range t.terms {
		e, ok := tm.(*expression)
		if !ok {
			continue
		}
		for _, vs := range e.varspecs {
			if !seen[vs.Name] {
				seen[vs.Name] = true
				names = append(names, vs.Name)
			}
		}
	}
	return names
}

// Expand renders the template against vars. Undefined variables and
// empty lists or maps are omitted; the only possible error is a
// *ModifierError. A nil vars expands every expression to nothing.
func (t *Template) Expand(vars *Variables) (string, error) {
	return t.ExpandFunc(vars.Get)
}

// ExpandFunc renders the template, resolving each variable through
// lookup.
func (t *Template) ExpandFunc(lookup LookupFunc) (string, error) {
	var b strings.Builder
	for _, tm := range t.terms {
		if err := tm.expand(lookup, &b); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
