package rgx

import (
	"strconv"
	"strings"
)

// renderer holds the state of one Render call: the output buffer and the
// capture-group numbering for the tree being rendered. A fresh renderer is
// built per call, so concurrent renders of independent trees need no
// coordination.
type renderer struct {
	b      strings.Builder
	groups map[*Group]int
	next   int
}

// part renders p in a position that tolerates priority min unwrapped,
// inserting a non-capturing group when p binds weaker than that.
func (r *renderer) part(p Pattern, min float64, fl flagSet) {
	if p.priority() < min {
		r.b.WriteString("(?:")
		p.write(r, fl)
		r.b.WriteByte(')')
		return
	}
	p.write(r, fl)
}

// number assigns capture-group numbers in a single depth-first, left-to-
// right pass, matching the order the groups' open parens appear in the
// rendered text.
func (r *renderer) number(p Pattern) {
	if g, ok := p.(*Group); ok && g.capturing {
		r.next++
		r.groups[g] = r.next
	}
	for _, child := range p.nodes() {
		r.number(child)
	}
}

// Render renders the tree to its final regex text. A non-empty flags string
// is emitted as a global (?flags) prefix and treated as active for the whole
// tree. Rendering the same tree twice yields byte-identical output.
func Render(p Pattern, flags string) string {
	r := &renderer{groups: make(map[*Group]int)}
	r.number(p)
	if flags != "" {
		r.b.WriteString("(?")
		r.b.WriteString(flags)
		r.b.WriteByte(')')
	}
	r.part(p, PriorityAlternation, flagSet(flags))
	return r.b.String()
}

// CaptureInfo describes one capturing group of a tree.
type CaptureInfo struct {
	Number int    `json:"number"`
	Name   string `json:"name,omitempty"`
}

// Captures lists the capturing groups of p in the order their numbers are
// assigned at render time.
func Captures(p Pattern) []CaptureInfo {
	r := &renderer{groups: make(map[*Group]int)}
	r.number(p)
	out := make([]CaptureInfo, 0, len(r.groups))
	var walk func(Pattern)
	walk = func(n Pattern) {
		if g, ok := n.(*Group); ok && g.capturing {
			out = append(out, CaptureInfo{Number: r.groups[g], Name: g.name})
		}
		for _, child := range n.nodes() {
			walk(child)
		}
	}
	walk(p)
	return out
}

func itoa(n int) string { return strconv.Itoa(n) }
