package rgx

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/termfx/rgx/internal/runeset"
)

// ClassItem is one member of a bracket expression: a single character, a
// character range, or a meta escape such as \d.
type ClassItem interface {
	writeTo(b *strings.Builder)
	// extent returns the member's codepoint set, or ok=false when it has no
	// known set (Unicode properties, open-ended ranges).
	extent() (set []runeset.Range, ok bool)
}

type classChar rune

// Ch returns a single-character class member.
func Ch(r rune) ClassItem { return classChar(r) }

func (c classChar) writeTo(b *strings.Builder) { writeClassRune(b, rune(c)) }

func (c classChar) extent() ([]runeset.Range, bool) {
	return []runeset.Range{runeset.Single(rune(c))}, true
}

type classSpan struct {
	lo, hi         rune
	openLo, openHi bool
}

// Span returns a character-range member covering lo through hi inclusive.
// Bounds are validated by the class constructors.
func Span(lo, hi rune) ClassItem { return classSpan{lo: lo, hi: hi} }

func (s classSpan) writeTo(b *strings.Builder) {
	if !s.openLo {
		writeClassRune(b, s.lo)
	}
	b.WriteByte('-')
	if !s.openHi {
		writeClassRune(b, s.hi)
	}
}

func (s classSpan) extent() ([]runeset.Range, bool) {
	// An open-ended range like [a-] matches its endpoint and a literal
	// dash, which is not an interval; keep it out of the set algebra.
	if s.openLo || s.openHi {
		return nil, false
	}
	return []runeset.Range{{Lo: s.lo, Hi: s.hi}}, true
}

type classMeta struct {
	text string
	set  []runeset.Range
}

// MetaItem returns a class member for a pre-escaped meta sequence. Members
// with a known codepoint extent (\d, \w, \s and the control escapes)
// participate in exclusion; others are kept verbatim and reject it.
func MetaItem(t Token) ClassItem {
	return classMeta{text: string(t), set: metaExtents[string(t)]}
}

func (m classMeta) writeTo(b *strings.Builder) { b.WriteString(m.text) }

func (m classMeta) extent() ([]runeset.Range, bool) { return m.set, m.set != nil }

// metaExtents maps meta escapes to their ASCII codepoint sets. Perl classes
// are listed with their non-Unicode extents; anything absent here cannot be
// used in set arithmetic.
var metaExtents = map[string][]runeset.Range{
	`\d`: {{Lo: '0', Hi: '9'}},
	`\w`: {{Lo: '0', Hi: '9'}, {Lo: 'A', Hi: 'Z'}, {Lo: '_', Hi: '_'}, {Lo: 'a', Hi: 'z'}},
	`\s`: {{Lo: '\t', Hi: '\r'}, {Lo: ' ', Hi: ' '}},
	`\t`: {runeset.Single('\t')},
	`\n`: {runeset.Single('\n')},
	`\r`: {runeset.Single('\r')},
	`\0`: {runeset.Single(0)},
}

// CharClass is a bracket expression matching any one of its members, or the
// complement when negated.
type CharClass struct {
	items   []ClassItem
	negated bool
}

// NewClass builds a class from explicit members. It rejects an empty member
// list and any range with swapped bounds.
func NewClass(items ...ClassItem) (*CharClass, error) {
	if len(items) == 0 {
		return nil, &BuildError{Err: ErrEmptyClass}
	}
	for _, it := range items {
		if s, ok := it.(classSpan); ok && !s.openLo && !s.openHi && s.lo > s.hi {
			return nil, &BuildError{
				Err:    ErrInvalidRange,
				Detail: fmt.Sprintf("%q > %q", s.lo, s.hi),
			}
		}
	}
	return &CharClass{items: append([]ClassItem(nil), items...)}, nil
}

// Chars builds a class matching any single character of s.
func Chars(s string) (*CharClass, error) {
	if s == "" {
		return nil, &BuildError{Err: ErrEmptyClass}
	}
	items := make([]ClassItem, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		items = append(items, Ch(r))
	}
	return NewClass(items...)
}

// CharRange builds a class with one range member, [lo-hi]. The start
// codepoint must not exceed the end codepoint.
func CharRange(lo, hi rune) (*CharClass, error) {
	return NewClass(Span(lo, hi))
}

// CharRangeFrom builds the open-ended class [lo-], matching lo or a literal
// dash.
func CharRangeFrom(lo rune) *CharClass {
	return &CharClass{items: []ClassItem{classSpan{lo: lo, openHi: true}}}
}

// CharRangeTo builds the open-ended class [-hi], matching hi or a literal
// dash.
func CharRangeTo(hi rune) *CharClass {
	return &CharClass{items: []ClassItem{classSpan{hi: hi, openLo: true}}}
}

// Items returns the class members.
func (c *CharClass) Items() []ClassItem { return append([]ClassItem(nil), c.items...) }

// Negated reports whether the class is complemented.
func (c *CharClass) Negated() bool { return c.negated }

// Reverse returns the complemented class; members are untouched. Reversing
// twice restores the original matched set.
func (c *CharClass) Reverse() *CharClass {
	return &CharClass{items: c.items, negated: !c.negated}
}

// Union merges the member sets of two classes with equal negation into one
// class. Classes of differing negation have no single-class union; combine
// those with Or instead.
func (c *CharClass) Union(other *CharClass) (*CharClass, error) {
	if c.negated != other.negated {
		return nil, &BuildError{Err: ErrClassMismatch}
	}
	items := make([]ClassItem, 0, len(c.items)+len(other.items))
	items = append(items, c.items...)
	items = append(items, other.items...)
	return &CharClass{items: items, negated: c.negated}, nil
}

// Exclude subtracts every character matched by other from c, at the
// codepoint level: both sides are flattened to sorted disjoint interval
// sets, subtracted, and the remainder re-merged into minimal ranges and
// singletons. Members without a known extent reject the operation, and an
// empty remainder is an error rather than an unmatchable class.
func (c *CharClass) Exclude(other *CharClass) (*CharClass, error) {
	a, err := c.matchedSet()
	if err != nil {
		return nil, err
	}
	b, err := other.matchedSet()
	if err != nil {
		return nil, err
	}
	diff := runeset.Subtract(a, b)
	if len(diff) == 0 {
		return nil, &BuildError{Err: ErrEmptyClass, Detail: "exclusion removed every member"}
	}
	items := make([]ClassItem, 0, len(diff))
	for _, rg := range diff {
		if rg.Lo == rg.Hi {
			items = append(items, Ch(rg.Lo))
			continue
		}
		items = append(items, Span(rg.Lo, rg.Hi))
	}
	return &CharClass{items: items}, nil
}

// matchedSet flattens the class to the interval set it matches, resolving
// negation against the full codepoint space.
func (c *CharClass) matchedSet() ([]runeset.Range, error) {
	var set []runeset.Range
	for _, it := range c.items {
		ext, ok := it.extent()
		if !ok {
			var b strings.Builder
			it.writeTo(&b)
			return nil, &BuildError{Err: ErrUnresolvableMember, Detail: b.String()}
		}
		set = append(set, ext...)
	}
	set = runeset.Normalize(set)
	if c.negated {
		set = runeset.Subtract([]runeset.Range{{Lo: 0, Hi: utf8.MaxRune}}, set)
	}
	return set, nil
}

func (c *CharClass) write(r *renderer, fl flagSet) {
	r.b.WriteByte('[')
	if c.negated {
		r.b.WriteByte('^')
	}
	for _, it := range c.items {
		it.writeTo(&r.b)
	}
	r.b.WriteByte(']')
}

func (c *CharClass) priority() float64 { return PriorityAtom }
func (c *CharClass) nodes() []Pattern  { return nil }

// writeClassRune emits one character inside a bracket expression, escaping
// the characters that are special there and hex-escaping controls.
func writeClassRune(b *strings.Builder, r rune) {
	switch r {
	case '\\', ']', '^', '-', '[':
		b.WriteByte('\\')
		b.WriteRune(r)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	default:
		if r < 0x20 || r == 0x7f {
			fmt.Fprintf(b, `\x%02x`, r)
			return
		}
		b.WriteRune(r)
	}
}

// mergeIntoClass collapses alternation operands into a single class when
// every operand is a non-negated class, so [12]|[a-z] becomes [12a-z].
// Anything else, literals included, stays an alternation.
func mergeIntoClass(parts []Pattern) (*CharClass, bool) {
	if len(parts) < 2 {
		return nil, false
	}
	var items []ClassItem
	for _, p := range parts {
		cls, ok := p.(*CharClass)
		if !ok || cls.negated {
			return nil, false
		}
		items = append(items, cls.items...)
	}
	return &CharClass{items: items}, true
}
