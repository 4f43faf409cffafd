package rgx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"pattern passthrough", Many(Text("a")), "a+"},
		{"string literal escapes", "a.b", `a\.b`},
		{"rune literal", 'x', "x"},
		{"rune slice becomes class", []rune{'1', '2'}, "[12]"},
		{"string slice becomes class", []string{"x", "y"}, "[xy]"},
		{"class items", []ClassItem{Ch('a'), Span('0', '9')}, "[a0-9]"},
		{"one-element sequence unwraps", []any{"x"}, "x"},
		{"sequence wraps in a group", []any{"x", "y"}, "(?:xy)"},
		{"mixed sequence", []any{"a", Many(Text("b"))}, "(?:ab+)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Build(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Render(p, ""))
		})
	}
}

func TestSeq(t *testing.T) {
	p, err := Seq("x", "y")
	require.NoError(t, err)
	assert.Equal(t, "(?:xy)", Render(p, ""))

	p, err = Seq("x")
	require.NoError(t, err)
	assert.Equal(t, "x", Render(p, ""))
}

func TestBuildRejections(t *testing.T) {
	_, err := Build(3.14)
	assert.ErrorIs(t, err, ErrUnsupportedLiteral)

	_, err = Build(struct{ X int }{})
	assert.ErrorIs(t, err, ErrUnsupportedLiteral)

	// multi-character strings are not class members
	_, err = Build([]string{"ab"})
	assert.ErrorIs(t, err, ErrUnsupportedLiteral)

	// failures propagate out of sequences
	_, err = Build([]any{"a", 3.14})
	assert.ErrorIs(t, err, ErrUnsupportedLiteral)

	// empty class input keeps the class invariant
	_, err = Build([]rune{})
	assert.ErrorIs(t, err, ErrEmptyClass)
}
