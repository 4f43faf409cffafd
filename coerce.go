package rgx

import (
	"fmt"
	"unicode/utf8"
)

// Build canonicalizes the accepted input shapes into a pattern node:
//
//   - Pattern values pass through untouched.
//   - A string becomes an escaped literal.
//   - A rune becomes an escaped single-character literal.
//   - []rune and []string of single characters become a character class.
//   - []ClassItem becomes a character class.
//   - []any follows the sequence convention: one element coerces to that
//     element alone, several coerce element-wise into a concatenation
//     wrapped in a non-capturing group.
//
// Anything else is rejected.
func Build(v any) (Pattern, error) {
	switch x := v.(type) {
	case Pattern:
		return x, nil
	case string:
		return Text(x), nil
	case rune:
		return Text(string(x)), nil
	case []rune:
		items := make([]ClassItem, 0, len(x))
		for _, r := range x {
			items = append(items, Ch(r))
		}
		return NewClass(items...)
	case []string:
		items := make([]ClassItem, 0, len(x))
		for _, s := range x {
			if utf8.RuneCountInString(s) != 1 {
				return nil, &BuildError{Err: ErrUnsupportedLiteral, Detail: fmt.Sprintf("class member %q is not a single character", s)}
			}
			r, _ := utf8.DecodeRuneInString(s)
			items = append(items, Ch(r))
		}
		return NewClass(items...)
	case []ClassItem:
		return NewClass(x...)
	case []any:
		return buildSeq(x)
	default:
		return nil, &BuildError{Err: ErrUnsupportedLiteral, Detail: fmt.Sprintf("%T", v)}
	}
}

// Seq coerces each element and assembles the sequence convention in one
// call: Seq("a", cls, q) is Build([]any{...}).
func Seq(vs ...any) (Pattern, error) {
	return buildSeq(vs)
}

func buildSeq(vs []any) (Pattern, error) {
	if len(vs) == 1 {
		return Build(vs[0])
	}
	parts := make([]Pattern, 0, len(vs))
	for _, v := range vs {
		p, err := Build(v)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return NonCapture(Concat(parts...)), nil
}
