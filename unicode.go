package rgx

import "fmt"

// Property returns the \p{value} token for a Unicode property or general
// category, e.g. Property("L") for letters.
func Property(value string) Token {
	return Token(fmt.Sprintf(`\p{%s}`, value))
}

// PropertyInverse returns \P{value}, matching everything outside the
// property.
func PropertyInverse(value string) Token {
	return Token(fmt.Sprintf(`\P{%s}`, value))
}

// NamedProperty returns \p{name=value} for property-value pairs such as
// Script=Latin.
func NamedProperty(name, value string) Token {
	return Token(fmt.Sprintf(`\p{%s=%s}`, name, value))
}

// NamedPropertyInverse returns \P{name=value}.
func NamedPropertyInverse(name, value string) Token {
	return Token(fmt.Sprintf(`\P{%s=%s}`, name, value))
}

// Common property shorthands.
var (
	Letter          = Property("L")
	NonLetter       = PropertyInverse("L")
	UnicodeSpace    = Property("Z")
	NonUnicodeSpace = PropertyInverse("Z")
	DecimalDigit    = Property("Nd")
	NonDecimalDigit = PropertyInverse("Nd")
)
