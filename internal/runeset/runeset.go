// Package runeset implements interval arithmetic over Unicode codepoints.
// Intervals are inclusive on both ends and kept sorted and disjoint, which
// makes set subtraction a single merge-style sweep.
package runeset

import "sort"

// Range is an inclusive codepoint interval.
type Range struct {
	Lo, Hi rune
}

// Contains reports whether r falls inside the interval.
func (rg Range) Contains(r rune) bool {
	return r >= rg.Lo && r <= rg.Hi
}

// Single returns an interval covering exactly one codepoint.
func Single(r rune) Range {
	return Range{Lo: r, Hi: r}
}

// FromRunes builds a normalized set from individual codepoints.
func FromRunes(rs []rune) []Range {
	set := make([]Range, 0, len(rs))
	for _, r := range rs {
		set = append(set, Single(r))
	}
	return Normalize(set)
}

// Normalize sorts the intervals and merges overlapping or adjacent ones,
// producing the minimal sorted disjoint cover. Intervals with Hi < Lo are
// dropped.
func Normalize(set []Range) []Range {
	in := make([]Range, 0, len(set))
	for _, rg := range set {
		if rg.Hi >= rg.Lo {
			in = append(in, rg)
		}
	}
	if len(in) == 0 {
		return nil
	}
	sort.Slice(in, func(i, j int) bool {
		if in[i].Lo != in[j].Lo {
			return in[i].Lo < in[j].Lo
		}
		return in[i].Hi < in[j].Hi
	})

	out := in[:1]
	for _, rg := range in[1:] {
		last := &out[len(out)-1]
		if rg.Lo <= last.Hi+1 {
			if rg.Hi > last.Hi {
				last.Hi = rg.Hi
			}
			continue
		}
		out = append(out, rg)
	}
	return out
}

// Union merges two sets into a normalized one.
func Union(a, b []Range) []Range {
	merged := make([]Range, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return Normalize(merged)
}

// Subtract removes every codepoint of b from a. Both inputs may be
// unnormalized; the result is normalized. Returns nil when nothing remains.
func Subtract(a, b []Range) []Range {
	a = Normalize(a)
	b = Normalize(b)
	if len(b) == 0 {
		return a
	}

	var out []Range
	for _, rg := range a {
		lo := rg.Lo
		for _, cut := range b {
			if cut.Hi < lo {
				continue
			}
			if cut.Lo > rg.Hi {
				break
			}
			if cut.Lo > lo {
				out = append(out, Range{Lo: lo, Hi: cut.Lo - 1})
			}
			if cut.Hi >= rg.Hi {
				lo = rg.Hi + 1
				break
			}
			lo = cut.Hi + 1
		}
		if lo <= rg.Hi {
			out = append(out, Range{Lo: lo, Hi: rg.Hi})
		}
	}
	return Normalize(out)
}

// Contains reports whether the normalized set covers r.
func Contains(set []Range, r rune) bool {
	i := sort.Search(len(set), func(i int) bool { return set[i].Hi >= r })
	return i < len(set) && set[i].Contains(r)
}

// Size returns the total number of codepoints covered by a normalized set.
func Size(set []Range) int {
	n := 0
	for _, rg := range set {
		n += int(rg.Hi-rg.Lo) + 1
	}
	return n
}
