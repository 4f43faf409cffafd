// Package rgx builds regular expressions from composable, immutable pattern
// nodes. Composition never mutates a node; every operator returns a new node
// owning its operands, and rendering inserts non-capturing groups exactly
// where operator precedence requires them.
package rgx

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Binding strengths for the fixed node ranking. A child rendered in a
// position that requires a higher rank than its own is wrapped in (?:...).
// Values are floats so an escape-hatch node can sit between two existing
// ranks by averaging them.
const (
	PriorityAlternation float64 = 0
	PriorityConcat      float64 = 2
	PriorityQuantifier  float64 = 3
	PriorityAssertion   float64 = 4
	PriorityAtom        float64 = 6
)

// Pattern is one node of an immutable expression tree. The built-in variants
// form a closed set; RawAt is the escape hatch for anything beyond them.
type Pattern interface {
	// write emits the node's own syntax, fl being the active flag set.
	write(r *renderer, fl flagSet)
	// priority reports the node's rank in the fixed binding order.
	priority() float64
	// nodes returns the direct children, in rendering order.
	nodes() []Pattern
}

// Priority reports the binding strength of a node.
func Priority(p Pattern) float64 { return p.priority() }

// Escape returns text with every regex metacharacter escaped, so the result
// matches the input literally.
func Escape(s string) string { return regexp.QuoteMeta(s) }

// flagSet is an inline-flag collection ("im" etc.), order-preserving.
type flagSet string

func (f flagSet) has(r rune) bool { return strings.ContainsRune(string(f), r) }

// missing returns the flags of s not yet active in f, in s's order.
func (f flagSet) missing(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !f.has(r) && !strings.ContainsRune(b.String(), r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (f flagSet) with(s string) flagSet { return f + flagSet(s) }

// literal matches an exact string. When raw, the text is emitted verbatim;
// otherwise it is escaped at render time.
type literal struct {
	text string
	raw  bool
}

// Text returns a literal matching s exactly; metacharacters are escaped.
func Text(s string) Pattern { return literal{text: s} }

// Raw returns a literal emitted verbatim, with no escaping. The caller is
// responsible for the text being a complete, atomic regex unit.
func Raw(s string) Pattern { return literal{text: s, raw: true} }

func (l literal) write(r *renderer, fl flagSet) {
	if l.raw {
		r.b.WriteString(l.text)
		return
	}
	r.b.WriteString(Escape(l.text))
}

// A multi-character literal is an implicit concatenation of its characters,
// so it binds like one: a quantifier over it needs a group.
func (l literal) priority() float64 {
	if !l.raw && utf8.RuneCountInString(l.text) > 1 {
		return PriorityConcat
	}
	return PriorityAtom
}

func (l literal) nodes() []Pattern { return nil }

// Token is a pre-escaped fixed sequence such as \d or ^. It is atomic and
// never needs grouping.
type Token string

func (t Token) write(r *renderer, fl flagSet) { r.b.WriteString(string(t)) }
func (t Token) priority() float64             { return PriorityAtom }
func (t Token) nodes() []Pattern              { return nil }

// custom is the escape hatch: caller-supplied text with an explicit rank.
type custom struct {
	text string
	prio float64
}

// RawAt returns a verbatim node with an explicit priority, for constructs
// the built-in variants do not cover. Pick a value between two of the
// Priority constants (averaging works) to slot into the ranking.
func RawAt(text string, priority float64) Pattern {
	return custom{text: text, prio: priority}
}

func (c custom) write(r *renderer, fl flagSet) { r.b.WriteString(c.text) }
func (c custom) priority() float64             { return c.prio }
func (c custom) nodes() []Pattern              { return nil }

// concatNode is sequential composition.
type concatNode struct {
	parts []Pattern
}

// Concat matches the given patterns in sequence. Nested concatenations are
// flattened; children that bind weaker than concatenation are grouped at
// render time.
func Concat(parts ...Pattern) Pattern {
	flat := make([]Pattern, 0, len(parts))
	for _, p := range parts {
		if c, ok := p.(concatNode); ok {
			flat = append(flat, c.parts...)
			continue
		}
		flat = append(flat, p)
	}
	return concatNode{parts: flat}
}

func (c concatNode) write(r *renderer, fl flagSet) {
	for _, p := range c.parts {
		r.part(p, PriorityConcat, fl)
	}
}

func (c concatNode) priority() float64 { return PriorityConcat }
func (c concatNode) nodes() []Pattern  { return c.parts }

// altNode is alternation, the weakest-binding composition.
type altNode struct {
	parts []Pattern
}

// Or matches any one of the given patterns. A sole operand is returned as
// is. When every operand is a non-negated character class, the result is
// the merged class instead of an alternation, so [12]|[a-z] renders as
// [12a-z]. Nested alternations are flattened.
func Or(parts ...Pattern) Pattern {
	if len(parts) == 1 {
		return parts[0]
	}
	if merged, ok := mergeIntoClass(parts); ok {
		return merged
	}
	flat := make([]Pattern, 0, len(parts))
	for _, p := range parts {
		if a, ok := p.(altNode); ok {
			flat = append(flat, a.parts...)
			continue
		}
		flat = append(flat, p)
	}
	return altNode{parts: flat}
}

func (a altNode) write(r *renderer, fl flagSet) {
	for i, p := range a.parts {
		if i > 0 {
			r.b.WriteByte('|')
		}
		r.part(p, PriorityAlternation, fl)
	}
}

func (a altNode) priority() float64 { return PriorityAlternation }
func (a altNode) nodes() []Pattern  { return a.parts }

// Group is explicit grouping: capturing, named capturing, or non-capturing.
type Group struct {
	inner     Pattern
	capturing bool
	name      string
}

// Capture wraps p in a capturing group. Group numbers are assigned per
// render, left to right.
func Capture(p Pattern) *Group {
	return &Group{inner: p, capturing: true}
}

// Named wraps p in a named capturing group, rendered as (?P<name>...).
// Name uniqueness within a tree is not checked here; the consuming engine
// is the authority on duplicates.
func Named(name string, p Pattern) (*Group, error) {
	if !validGroupName(name) {
		return nil, &BuildError{Err: ErrBadName, Detail: name}
	}
	return &Group{inner: p, capturing: true, name: name}, nil
}

// NonCapture wraps p in an explicit non-capturing group.
func NonCapture(p Pattern) *Group {
	return &Group{inner: p}
}

// Name returns the group's name, empty for unnamed groups.
func (g *Group) Name() string { return g.name }

// Capturing reports whether the group captures.
func (g *Group) Capturing() bool { return g.capturing }

func (g *Group) write(r *renderer, fl flagSet) {
	r.b.WriteByte('(')
	switch {
	case g.name != "":
		r.b.WriteString("?P<")
		r.b.WriteString(g.name)
		r.b.WriteByte('>')
	case !g.capturing:
		r.b.WriteString("?:")
	}
	r.part(g.inner, PriorityAlternation, fl)
	r.b.WriteByte(')')
}

func (g *Group) priority() float64 { return PriorityAtom }
func (g *Group) nodes() []Pattern  { return []Pattern{g.inner} }

func validGroupName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		alpha := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !alpha && (i == 0 || r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// lookaround is a zero-width assertion in one of its four forms.
type lookaround struct {
	inner   Pattern
	behind  bool
	negated bool
}

// Lookahead asserts that p matches just ahead, without consuming it.
func Lookahead(p Pattern) Pattern { return lookaround{inner: p} }

// NegLookahead asserts that p does not match just ahead.
func NegLookahead(p Pattern) Pattern { return lookaround{inner: p, negated: true} }

// Lookbehind asserts that p matches just behind.
func Lookbehind(p Pattern) Pattern { return lookaround{inner: p, behind: true} }

// NegLookbehind asserts that p does not match just behind.
func NegLookbehind(p Pattern) Pattern { return lookaround{inner: p, behind: true, negated: true} }

// Before matches p only when followed by assertion.
func Before(p, assertion Pattern) Pattern { return Concat(p, Lookahead(assertion)) }

// NotBefore matches p only when not followed by assertion.
func NotBefore(p, assertion Pattern) Pattern { return Concat(p, NegLookahead(assertion)) }

// After matches p only when preceded by assertion.
func After(p, assertion Pattern) Pattern { return Concat(Lookbehind(assertion), p) }

// NotAfter matches p only when not preceded by assertion.
func NotAfter(p, assertion Pattern) Pattern { return Concat(NegLookbehind(assertion), p) }

func (l lookaround) write(r *renderer, fl flagSet) {
	r.b.WriteString("(?")
	if l.behind {
		r.b.WriteByte('<')
	}
	if l.negated {
		r.b.WriteByte('!')
	} else {
		r.b.WriteByte('=')
	}
	r.part(l.inner, PriorityAlternation, fl)
	r.b.WriteByte(')')
}

func (l lookaround) priority() float64 { return PriorityAssertion }
func (l lookaround) nodes() []Pattern  { return []Pattern{l.inner} }

// conditional branches on whether a numbered group matched.
type conditional struct {
	group   int
	yes, no Pattern
}

// Conditional matches yes if capture group number matched, no otherwise,
// rendered as (?(N)yes|no).
func Conditional(group int, yes, no Pattern) Pattern {
	return conditional{group: group, yes: yes, no: no}
}

func (c conditional) write(r *renderer, fl flagSet) {
	r.b.WriteString("(?(")
	r.b.WriteString(itoa(c.group))
	r.b.WriteByte(')')
	r.part(c.yes, PriorityAlternation+1, fl)
	r.b.WriteByte('|')
	r.part(c.no, PriorityAlternation+1, fl)
	r.b.WriteByte(')')
}

func (c conditional) priority() float64 { return PriorityAssertion }
func (c conditional) nodes() []Pattern  { return []Pattern{c.yes, c.no} }

// flagScope applies inline flags to a sub-expression only.
type flagScope struct {
	inner Pattern
	flags string
}

// WithFlags scopes inline flags to p, rendered as (?flags:...). Flags
// already active in the surrounding scope are not re-emitted; if none
// remain, the wrapper is dropped entirely.
func WithFlags(p Pattern, flags string) Pattern {
	return flagScope{inner: p, flags: flags}
}

func (f flagScope) write(r *renderer, fl flagSet) {
	add := fl.missing(f.flags)
	if add == "" {
		// The scope advertises atom priority to its parent, so a dropped
		// wrapper must not leak a weaker-binding body into that position.
		r.part(f.inner, PriorityAtom, fl)
		return
	}
	r.b.WriteString("(?")
	r.b.WriteString(add)
	r.b.WriteByte(':')
	r.part(f.inner, PriorityAlternation, fl.with(add))
	r.b.WriteByte(')')
}

func (f flagScope) priority() float64 { return PriorityAtom }
func (f flagScope) nodes() []Pattern  { return []Pattern{f.inner} }

// backref references an earlier capture by number, name, or node identity.
type backref struct {
	num    int
	name   string
	target *Group
}

// Ref returns a backreference to capture group number n, rendered as \n.
func Ref(n int) Pattern { return backref{num: n} }

// NamedRef returns a backreference to a named group, rendered as (?P=name).
func NamedRef(name string) (Pattern, error) {
	if !validGroupName(name) {
		return nil, &BuildError{Err: ErrBadName, Detail: name}
	}
	return backref{name: name}, nil
}

// RefTo returns a backreference to g, resolved to g's assigned number when
// the tree containing g is rendered. g must be part of the same tree.
func RefTo(g *Group) Pattern { return backref{target: g} }

func (b backref) write(r *renderer, fl flagSet) {
	switch {
	case b.name != "":
		r.b.WriteString("(?P=")
		r.b.WriteString(b.name)
		r.b.WriteByte(')')
	case b.target != nil:
		r.b.WriteByte('\\')
		r.b.WriteString(itoa(r.groups[b.target]))
	default:
		r.b.WriteByte('\\')
		r.b.WriteString(itoa(b.num))
	}
}

func (b backref) priority() float64 { return PriorityAtom }
func (b backref) nodes() []Pattern  { return nil }

// comment is an inline (?#...) annotation; it matches nothing.
type comment string

// Comment returns an inline comment node. Closing parens in the text are
// escaped so the comment cannot terminate early.
func Comment(text string) Pattern {
	return comment(strings.ReplaceAll(text, ")", "\\)"))
}

func (c comment) write(r *renderer, fl flagSet) {
	r.b.WriteString("(?#")
	r.b.WriteString(string(c))
	r.b.WriteByte(')')
}

func (c comment) priority() float64 { return PriorityAtom }
func (c comment) nodes() []Pattern  { return nil }
