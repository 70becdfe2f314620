package uritemplate

import "fmt"

// ParseError reports a source string that is not a syntactically valid
// URI template. Compilation is all-or-nothing: no partial Template is
// produced.
type ParseError struct {
	Source string
	Pos    int // byte offset where parsing stopped
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("uritemplate: cannot parse %q at offset %d: %s", e.Source, e.Pos, e.Reason)
}

// ModifierError reports a prefix modifier (:N) applied to a variable
// that resolved to a list or map at expansion time. Prefix truncation is
// defined only for scalar values. The expansion that raises it returns
// no partial output.
type ModifierError struct {
	Name string // variable name as written in the template
}

func (e *ModifierError) Error() string {
	return fmt.Sprintf("uritemplate: prefix modifier on variable %q requires a scalar value", e.Name)
}
