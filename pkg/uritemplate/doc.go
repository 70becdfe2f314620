// Package uritemplate implements RFC 6570 URI Templates at Level 4:
// compiling a template string into an immutable form and expanding it
// against named variable bindings into a percent-encoded URI string.
//
// A template is compiled once and may be expanded any number of times,
// concurrently, with different bindings:
//
//	tmpl := uritemplate.MustCompile("/users/{id}{?fields*}")
//	uri, err := tmpl.Expand(uritemplate.NewVariables().
//	    Set("id", "42").
//	    SetList("fields", "name", "email"))
//	// uri == "/users/42?fields=name&fields=email"
//
// # Operators
//
// All nine RFC 6570 operators are supported: simple string expansion
// {var}, reserved expansion {+var}, fragment expansion {#var}, label
// expansion {.var}, path segment expansion {/var}, path-style parameters
// {;var}, form-style query {?var}, form-style query continuation {&var},
// and the reserved future operators (= , ! @ |), which parse but are
// rejected by Compile.
//
// # Values
//
// A variable binds to a scalar string, an ordered list, or an ordered
// key/value map. Undefined variables and empty lists or maps contribute
// nothing to the output. The prefix modifier {var:3} truncates scalars to
// a number of code points and is an expansion-time error (*ModifierError)
// when the variable resolves to a list or map.
//
// Expansion performs no I/O and the package keeps no global mutable
// state; callers own any caching of compiled templates.
package uritemplate
