package rgx

import (
	"github.com/bmatcuk/doublestar/v4"
)

// FromGlob translates a doublestar-style glob into a pattern tree: `*`
// matches within a path segment, `**` across segments, `?` one
// non-separator character, `[...]` a character class, `{a,b}` grouped
// alternatives, and `\x` escapes the next character. The glob is validated
// before translation; the produced tree only ever matches text, slash
// semantics follow path globs.
func FromGlob(pat string) (Pattern, error) {
	if !doublestar.ValidatePattern(pat) {
		return nil, &BuildError{Err: ErrBadGlob, Detail: pat}
	}
	rs := []rune(pat)
	p, i, err := globSeq(rs, 0, false)
	if err != nil {
		return nil, err
	}
	if i != len(rs) {
		return nil, &BuildError{Err: ErrBadGlob, Detail: pat}
	}
	return p, nil
}

func nonSeparator() *CharClass {
	return &CharClass{items: []ClassItem{Ch('/')}, negated: true}
}

// globSeq translates until end of input or, inside braces, until a ',' or
// '}' at this nesting level.
func globSeq(rs []rune, i int, inBrace bool) (Pattern, int, error) {
	var parts []Pattern
	var lit []rune
	flush := func() {
		if len(lit) > 0 {
			parts = append(parts, Text(string(lit)))
			lit = nil
		}
	}

	for i < len(rs) {
		switch r := rs[i]; r {
		case ',', '}':
			if inBrace {
				flush()
				return Concat(parts...), i, nil
			}
			lit = append(lit, r)
			i++
		case '*':
			flush()
			if i+1 < len(rs) && rs[i+1] == '*' {
				parts = append(parts, Some(AnyChar))
				i += 2
			} else {
				parts = append(parts, Some(nonSeparator()))
				i++
			}
		case '?':
			flush()
			parts = append(parts, nonSeparator())
			i++
		case '[':
			flush()
			cls, next, err := globClass(rs, i+1)
			if err != nil {
				return nil, 0, err
			}
			parts = append(parts, cls)
			i = next
		case '{':
			flush()
			alt, next, err := globAlt(rs, i+1)
			if err != nil {
				return nil, 0, err
			}
			parts = append(parts, alt)
			i = next
		case '\\':
			if i+1 >= len(rs) {
				return nil, 0, &BuildError{Err: ErrBadGlob, Detail: "trailing escape"}
			}
			lit = append(lit, rs[i+1])
			i += 2
		default:
			lit = append(lit, r)
			i++
		}
	}
	if inBrace {
		return nil, 0, &BuildError{Err: ErrBadGlob, Detail: "unterminated brace"}
	}
	flush()
	return Concat(parts...), i, nil
}

// globAlt translates a brace group {a,b,...} into an alternation.
func globAlt(rs []rune, i int) (Pattern, int, error) {
	var alts []Pattern
	for {
		alt, next, err := globSeq(rs, i, true)
		if err != nil {
			return nil, 0, err
		}
		alts = append(alts, alt)
		i = next
		if rs[i] == ',' {
			i++
			continue
		}
		// closing brace
		return Or(alts...), i + 1, nil
	}
}

// globClass translates a bracket expression, honoring '!' and '^' negation
// and a-z ranges.
func globClass(rs []rune, i int) (Pattern, int, error) {
	negated := false
	if i < len(rs) && (rs[i] == '!' || rs[i] == '^') {
		negated = true
		i++
	}
	var items []ClassItem
	for i < len(rs) && rs[i] != ']' {
		r := rs[i]
		if r == '\\' && i+1 < len(rs) {
			r = rs[i+1]
			i++
		}
		if i+2 < len(rs) && rs[i+1] == '-' && rs[i+2] != ']' {
			hi := rs[i+2]
			if hi == '\\' && i+3 < len(rs) {
				hi = rs[i+3]
				i++
			}
			items = append(items, Span(r, hi))
			i += 3
			continue
		}
		items = append(items, Ch(r))
		i++
	}
	if i >= len(rs) {
		return nil, 0, &BuildError{Err: ErrBadGlob, Detail: "unterminated class"}
	}
	cls, err := NewClass(items...)
	if err != nil {
		return nil, 0, err
	}
	if negated {
		cls = cls.Reverse()
	}
	return cls, i + 1, nil
}
