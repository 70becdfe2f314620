package uritemplate

import (
	"strings"
	"unicode/utf8"
)

// parser is a recursive-descent parser over the template source. Each
// production takes a byte position and returns the parsed value together
// with the position after it; a returned position equal to the input
// position means the production did not match there. Positions index
// bytes, with multi-byte code points decoded where the grammar allows
// them, so the parser stays codepoint-correct.
type parser struct {
	src string
}

func (p *parser) compile() (*Template, error) {
	var terms []term
	pos := 0
	futurePos := -1
	for {
		if lit, next := p.parseLiterals(pos); next > pos {
			terms = append(terms, literal(lit))
			pos = next
			continue
		}
		expr, next := p.parseExpression(pos)
		if next == pos {
			break
		}
		if expr.op == OpFuture && futurePos < 0 {
			futurePos = pos
		}
		terms = append(terms, expr)
		pos = next
	}
	if pos != len(p.src) {
		return nil, &ParseError{Source: p.src, Pos: pos, Reason: "invalid character sequence"}
	}
	// Reserved operators parse but never compile.
	if futurePos >= 0 {
		return nil, &ParseError{Source: p.src, Pos: futurePos, Reason: "reserved operator"}
	}
	return &Template{source: p.src, terms: terms}, nil
}

// parseLiterals consumes a maximal run of literal text, returning the
// run normalized for output: allowed ASCII copied verbatim, ucschar and
// iprivate code points percent-encoded, valid percent-triplets passed
// through unchanged.
func (p *parser) parseLiterals(pos int) (string, int) {
	var b strings.Builder
	for pos < len(p.src) {
		r, size := utf8.DecodeRuneInString(p.src[pos:])
		switch {
		case r < utf8.RuneSelf && isLiteral(r):
			b.WriteByte(byte(r))
			pos += size
		case r >= utf8.RuneSelf && (isUcschar(r) || isIprivate(r)):
			pctEncodeRune(r, &b)
			pos += size
		default:
			_, next := decodePctTriplet(p.src, pos)
			if next == pos {
				return b.String(), pos
			}
			// A valid triplet in source text is copied as written.
			b.WriteString(p.src[pos:next])
			pos = next
		}
	}
	return b.String(), pos
}

// parseExpression consumes '{' [operator] varspec-list '}'. On any
// failure, including a missing closing brace, it does not advance.
func (p *parser) parseExpression(pos int) (*expression, int) {
	if pos >= len(p.src) || p.src[pos] != '{' {
		return nil, pos
	}
	idx := pos + 1
	op := OpSimple
	if idx < len(p.src) {
		if o, ok := triggerOps[p.src[idx]]; ok {
			op = o
			idx++
		}
	}
	specs, idx := p.parseVariableList(idx)
	if idx >= len(p.src) || p.src[idx] != '}' {
		return nil, pos
	}
	return &expression{op: op, varspecs: specs}, idx + 1
}

// parseVariableList consumes zero or more comma-separated varspecs. A
// comma not followed by a valid varspec ends the list unconsumed, which
// makes the enclosing expression fail at the '}' check.
func (p *parser) parseVariableList(pos int) ([]Varspec, int) {
	var specs []Varspec
	vs, idx := p.parseVarspec(pos)
	if idx == pos {
		return specs, pos
	}
	specs = append(specs, vs)
	pos = idx
	for pos < len(p.src) && p.src[pos] == ',' {
		vs, idx = p.parseVarspec(pos + 1)
		if idx == pos+1 {
			break
		}
		specs = append(specs, vs)
		pos = idx
	}
	return specs, pos
}

// parseVarspec consumes varname [modifier].
func (p *parser) parseVarspec(pos int) (Varspec, int) {
	name, decoded, idx := p.parseVarname(pos)
	if idx == pos {
		return Varspec{}, pos
	}
	maxLength, explode, end := p.parseModifier(idx)
	return Varspec{
		Name:        name,
		DecodedName: decoded,
		MaxLength:   maxLength,
		Explode:     explode,
	}, end
}

// parseVarname consumes one or more varchar groups joined by single
// dots. A dot not followed by a varchar is left unconsumed and ends the
// name. The raw source slice and the triplet-decoded form are returned
// together.
func (p *parser) parseVarname(pos int) (raw, decoded string, end int) {
	var b strings.Builder
	end = p.parseVarchar(pos, &b)
	if end == pos {
		return "", "", pos
	}
	for {
		if next := p.parseVarchar(end, &b); next > end {
			end = next
			continue
		}
		if end < len(p.src) && p.src[end] == '.' {
			var group strings.Builder
			if next := p.parseVarchar(end+1, &group); next > end+1 {
				b.WriteByte('.')
				b.WriteString(group.String())
				end = next
				continue
			}
		}
		return p.src[pos:end], b.String(), end
	}
}

// parseVarchar consumes a single ALPHA / DIGIT / '_' character or one
// percent-triplet run, appending the decoded form to decoded.
func (p *parser) parseVarchar(pos int, decoded *strings.Builder) int {
	if pos >= len(p.src) {
		return pos
	}
	c := p.src[pos]
	if isAlpha(rune(c)) || isDigit(rune(c)) || c == '_' {
		decoded.WriteByte(c)
		return pos + 1
	}
	if r, next := decodePctTriplet(p.src, pos); next > pos {
		decoded.WriteRune(r)
		return next
	}
	return pos
}

// parseModifier consumes at most one of ":N" (prefix length) or "*"
// (explode); the grammar makes the two mutually exclusive.
func (p *parser) parseModifier(pos int) (maxLength int, explode bool, end int) {
	if n, idx := p.parsePrefixModifier(pos); idx > pos {
		return n, false, idx
	}
	if pos < len(p.src) && p.src[pos] == '*' {
		return 0, true, pos + 1
	}
	return 0, false, pos
}

// parsePrefixModifier consumes ':' followed by a max-length numeral. A
// ':' without a valid numeral is left unconsumed.
func (p *parser) parsePrefixModifier(pos int) (int, int) {
	if pos < len(p.src) && p.src[pos] == ':' {
		if n, idx := p.parseMaxLength(pos + 1); idx > pos+1 {
			return n, idx
		}
	}
	return 0, pos
}

// parseMaxLength consumes a numeral of one nonzero digit followed by up
// to three more digits. Further digits are not consumed, silently
// capping the numeral at four digits.
func (p *parser) parseMaxLength(pos int) (int, int) {
	if pos >= len(p.src) {
		return 0, pos
	}
	c := p.src[pos]
	if c < '1' || c > '9' {
		return 0, pos
	}
	n := int(c - '0')
	pos++
	for i := 0; i < 3 && pos < len(p.src) && isDigit(rune(p.src[pos])); i++ {
		n = n*10 + int(p.src[pos]-'0')
		pos++
	}
	return n, pos
}
