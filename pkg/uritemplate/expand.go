package uritemplate

import "strings"

func (l literal) expand(_ LookupFunc, b *strings.Builder) error {
	b.WriteString(string(l))
	return nil
}

// expand formats the expression's variables per its operator. Undefined
// variables are skipped. When no variable produced output the expression
// contributes nothing, not even the operator prefix.
func (e *expression) expand(lookup LookupFunc, b *strings.Builder) error {
	op := &operators[e.op]
	var units []string
	for i := range e.varspecs {
		vs := &e.varspecs[i]
		val := lookup(vs.Name)
		if !val.IsDefined() {
			continue
		}
		switch val.kind {
		case KindScalar:
			s := val.str
			if vs.MaxLength > 0 {
				s = truncate(s, vs.MaxLength)
			}
			units = append(units, op.join(false, encodeName(vs.DecodedName), op.encodeValue(s)))

		case KindList:
			if vs.MaxLength > 0 {
				return &ModifierError{Name: vs.Name}
			}
			if vs.Explode {
				for _, item := range val.list {
					units = append(units, op.join(false, encodeName(vs.DecodedName), op.encodeValue(item)))
				}
			} else {
				encoded := make([]string, len(val.list))
				for j, item := range val.list {
					encoded[j] = op.encodeValue(item)
				}
				units = append(units, op.join(false, encodeName(vs.DecodedName), strings.Join(encoded, ",")))
			}

		case KindMap:
			if vs.MaxLength > 0 {
				return &ModifierError{Name: vs.Name}
			}
			if vs.Explode {
				for _, pr := range val.pairs {
					units = append(units, op.join(true, encodeName(pr.Key), op.encodeValue(pr.Value)))
				}
			} else {
				encoded := make([]string, 0, 2*len(val.pairs))
				for _, pr := range val.pairs {
					encoded = append(encoded, op.encodeValue(pr.Key), op.encodeValue(pr.Value))
				}
				// The output name for a non-exploded map uses the raw
				// varname, not the decoded form. Matches the reference
				// behavior for this one case.
				units = append(units, op.join(false, encodeName(vs.Name), strings.Join(encoded, ",")))
			}
		}
	}
	if len(units) == 0 {
		return nil
	}
	b.WriteString(op.prefix)
	for i, u := range units {
		if i > 0 {
			b.WriteString(op.delim)
		}
		b.WriteString(u)
	}
	return nil
}

// truncate cuts s after n code points.
func truncate(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
