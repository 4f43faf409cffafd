package rgx

import "fmt"

// Fixed meta sequences. All are atomic tokens and never need grouping.
var (
	WordChar        = Token(`\w`)
	NonWordChar     = Token(`\W`)
	Digit           = Token(`\d`)
	NonDigit        = Token(`\D`)
	Whitespace      = Token(`\s`)
	NonWhitespace   = Token(`\S`)
	WordBoundary    = Token(`\b`)
	NonWordBoundary = Token(`\B`)
	AnyChar         = Token(`.`)
	Newline         = Token(`\n`)
	CarriageReturn  = Token(`\r`)
	Tab             = Token(`\t`)
	NullChar        = Token(`\0`)
	LineStart       = Token(`^`)
	LineEnd         = Token(`$`)
)

// CharEscape returns the hex escape for a codepoint, sized to its
// magnitude: \xHH, \uHHHH, or \UHHHHHHHH. Surrogates and codepoints beyond
// U+10FFFF are rejected.
func CharEscape(n int) (Token, error) {
	if n < 0 || n > 0x10FFFF || (n >= 0xD800 && n <= 0xDFFF) {
		return "", &BuildError{Err: ErrUnsupportedLiteral, Detail: fmt.Sprintf("codepoint %#x", n)}
	}
	switch {
	case n > 0xFFFF:
		return Token(fmt.Sprintf(`\U%08x`, n)), nil
	case n > 0xFF:
		return Token(fmt.Sprintf(`\u%04x`, n)), nil
	default:
		return Token(fmt.Sprintf(`\x%02x`, n)), nil
	}
}
