package uritemplate

import "strings"

// Op identifies one of the RFC 6570 expression operators.
type Op int

// The nine operators of RFC 6570 section 2.2. OpFuture covers the
// operator characters the RFC reserves for future extensions (= , ! @ |);
// expressions using it parse but are rejected by Compile.
const (
	OpSimple Op = iota
	OpReserved
	OpFragment
	OpLabel
	OpPathSegment
	OpPathParam
	OpQueryForm
	OpQueryFormContinuation
	OpFuture
)

// joinMode selects how a formatted unit renders its name and value.
type joinMode int

const (
	// joinBare emits the bare value; name=value only for exploded map
	// entries (simple, reserved, fragment, label, path segment).
	joinBare joinMode = iota
	// joinNamed always emits name=value (form-style query operators).
	joinNamed
	// joinPathStyle emits name=value, but a bare name when a non-entry
	// value is empty (path-style parameters: {;empty} -> ";empty").
	joinPathStyle
)

// operator holds the static expansion parameters of one Op. The nine
// operators differ only in these parameters plus the join-mode tag, so a
// single table replaces per-operator dispatch.
type operator struct {
	triggers string // characters after '{' selecting this operator
	prefix   string // emitted once if the expression produces any output
	delim    string // joins the expression's formatted units
	mode     joinMode
	allowed  func(rune) bool // value code points copied without encoding
	rawPct   bool            // valid %XX triplets in values pass through
}

func allowUnreserved(r rune) bool { return isUnreserved(r) }
func allowReserved(r rune) bool   { return isUnreserved(r) || isReserved(r) }

var operators = [...]operator{
	OpSimple:                {delim: ",", mode: joinBare, allowed: allowUnreserved},
	OpReserved:              {triggers: "+", delim: ",", mode: joinBare, allowed: allowReserved, rawPct: true},
	OpFragment:              {triggers: "#", prefix: "#", delim: ",", mode: joinBare, allowed: allowReserved, rawPct: true},
	OpLabel:                 {triggers: ".", prefix: ".", delim: ".", mode: joinBare, allowed: allowUnreserved},
	OpPathSegment:           {triggers: "/", prefix: "/", delim: "/", mode: joinBare, allowed: allowUnreserved},
	OpPathParam:             {triggers: ";", prefix: ";", delim: ";", mode: joinPathStyle, allowed: allowUnreserved},
	OpQueryForm:             {triggers: "?", prefix: "?", delim: "&", mode: joinNamed, allowed: allowUnreserved},
	OpQueryFormContinuation: {triggers: "&", prefix: "&", delim: "&", mode: joinNamed, allowed: allowUnreserved},
	OpFuture:                {mode: joinBare, allowed: allowUnreserved, triggers: "=,!@|"},
}

// triggerOps maps a trigger character to its operator. Built once during
// package initialization and never mutated, so concurrent lookups need no
// synchronization.
var triggerOps = make(map[byte]Op)

func init() {
	for op := range operators {
		for i := 0; i < len(operators[op].triggers); i++ {
			triggerOps[operators[op].triggers[i]] = Op(op)
		}
	}
}

// join renders one formatted (name, value) unit. entry marks an exploded
// map entry, which renders as name=value under every operator.
func (o *operator) join(entry bool, name, value string) string {
	switch o.mode {
	case joinNamed:
		return name + "=" + value
	case joinPathStyle:
		if !entry && value == "" {
			return name
		}
		return name + "=" + value
	default:
		if entry {
			return name + "=" + value
		}
		return value
	}
}

// encodeValue percent-encodes a value string per the operator's allowed
// set and raw-triplet passthrough flag.
func (o *operator) encodeValue(s string) string {
	var b strings.Builder
	encodeString(s, o.allowed, o.rawPct, &b)
	return b.String()
}

// encodeName percent-encodes an output name. Names always use the
// unreserved set with triplet passthrough disabled, whatever the
// operator allows in values.
func encodeName(s string) string {
	var b strings.Builder
	encodeString(s, isUnreserved, false, &b)
	return b.String()
}
