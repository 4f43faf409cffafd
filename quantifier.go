package rgx

import "fmt"

// Range is a repetition of an inner pattern with inclusive bounds. All
// bound-adjusting methods return a new value sharing the inner pattern;
// nothing is ever mutated.
type Range struct {
	inner     Pattern
	min, max  int
	unbounded bool
	lazy      bool
}

// Repeat matches p exactly n times.
func Repeat(p Pattern, n int) (*Range, error) {
	return Between(p, n, n)
}

// Between matches p from min to max times inclusive. A maximum below the
// minimum or a negative bound is rejected, never silently swapped.
func Between(p Pattern, min, max int) (*Range, error) {
	if min < 0 || max < min {
		return nil, &BuildError{
			Err:    ErrInvalidBounds,
			Detail: fmt.Sprintf("{%d,%d}", min, max),
		}
	}
	return &Range{inner: p, min: min, max: max}, nil
}

// AtLeast matches p n or more times.
func AtLeast(p Pattern, n int) (*Range, error) {
	q, err := Repeat(p, n)
	if err != nil {
		return nil, err
	}
	return q.OrMore(), nil
}

// AtMost matches p up to n times, including zero.
func AtMost(p Pattern, n int) (*Range, error) {
	q, err := Repeat(p, n)
	if err != nil {
		return nil, err
	}
	return q.OrLess(), nil
}

// Many matches p one or more times, rendered as +.
func Many(p Pattern) *Range {
	return &Range{inner: p, min: 1, unbounded: true}
}

// Some matches p zero or more times, rendered as *.
func Some(p Pattern) *Range {
	return &Range{inner: p, unbounded: true}
}

// Maybe matches p zero or one times, rendered as ?.
func Maybe(p Pattern) *Range {
	return &Range{inner: p, max: 1}
}

// OrMore removes the upper bound.
func (q *Range) OrMore() *Range {
	return &Range{inner: q.inner, min: q.min, unbounded: true, lazy: q.lazy}
}

// OrLess drops the lower bound to zero.
func (q *Range) OrLess() *Range {
	return &Range{inner: q.inner, max: q.max, unbounded: q.unbounded, lazy: q.lazy}
}

// To sets the upper bound. It must not be below the current minimum.
func (q *Range) To(max int) (*Range, error) {
	return Between(q.inner, q.min, max)
}

// Lazy returns the reluctant form, preferring as few repetitions as
// possible.
func (q *Range) Lazy() *Range {
	return &Range{inner: q.inner, min: q.min, max: q.max, unbounded: q.unbounded, lazy: true}
}

// Min returns the lower bound.
func (q *Range) Min() int { return q.min }

// Max returns the upper bound and whether one exists.
func (q *Range) Max() (int, bool) { return q.max, !q.unbounded }

// IsLazy reports whether the quantifier is reluctant.
func (q *Range) IsLazy() bool { return q.lazy }

// suffix picks the shortest quantifier syntax for the bounds.
func (q *Range) suffix() string {
	switch {
	case q.unbounded && q.min == 0:
		return "*"
	case q.unbounded && q.min == 1:
		return "+"
	case q.unbounded:
		return fmt.Sprintf("{%d,}", q.min)
	case q.min == 0 && q.max == 1:
		return "?"
	case q.min == q.max && q.min == 1:
		return ""
	case q.min == q.max:
		return fmt.Sprintf("{%d}", q.min)
	case q.min == 0:
		return fmt.Sprintf("{,%d}", q.max)
	default:
		return fmt.Sprintf("{%d,%d}", q.min, q.max)
	}
}

func (q *Range) write(r *renderer, fl flagSet) {
	// Repetition binds to a single preceding unit, so the inner pattern is
	// rendered one rank above quantifiers regardless of the table.
	r.part(q.inner, PriorityQuantifier+1, fl)
	s := q.suffix()
	r.b.WriteString(s)
	// Laziness is meaningless for a fixed count.
	if q.lazy && s != "" && (q.unbounded || q.min != q.max) {
		r.b.WriteByte('?')
	}
}

func (q *Range) priority() float64 { return PriorityQuantifier }
func (q *Range) nodes() []Pattern  { return []Pattern{q.inner} }
