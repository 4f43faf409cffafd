package rgx

import "errors"

// BuildError is a construction failure carrying one of the sentinel errors
// plus the offending input, so callers can branch with errors.Is and still
// report what was rejected.
type BuildError struct {
	Err    error
	Detail string
}

func (e *BuildError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *BuildError) Unwrap() error { return e.Err }

// Sentinel errors for programmatic checking. All of them surface at
// construction time; rendering a successfully built tree never fails.
var (
	// ErrInvalidRange reports a character range whose start codepoint is
	// greater than its end codepoint.
	ErrInvalidRange = errors.New("invalid character range")

	// ErrEmptyClass reports a class operation that would produce a class
	// matching no characters.
	ErrEmptyClass = errors.New("empty character class")

	// ErrUnsupportedLiteral reports a value with no defined coercion into a
	// pattern node.
	ErrUnsupportedLiteral = errors.New("unsupported literal type")

	// ErrUnresolvableMember reports a class operation involving a member
	// whose codepoint extent cannot be determined.
	ErrUnresolvableMember = errors.New("unresolvable class member")

	// ErrInvalidBounds reports a quantifier whose maximum is below its
	// minimum, or a negative bound.
	ErrInvalidBounds = errors.New("invalid quantifier bounds")

	// ErrClassMismatch reports a class union over classes with differing
	// negation, which has no single-class representation.
	ErrClassMismatch = errors.New("mismatched class negation")

	// ErrBadName reports an empty or malformed group name.
	ErrBadName = errors.New("invalid group name")

	// ErrBadGlob reports a glob pattern that fails syntax validation.
	ErrBadGlob = errors.New("invalid glob pattern")

	// ErrBadDoc reports a serialized tree document that cannot be decoded.
	ErrBadDoc = errors.New("invalid pattern document")
)
