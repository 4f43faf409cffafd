package rgx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builds a URL grammar out of named groups, merged classes and quantifiers,
// and checks the complete rendered expression.
func TestURLGrammar(t *testing.T) {
	lower, err := CharRange('a', 'z')
	require.NoError(t, err)
	upper, err := CharRange('A', 'Z')
	require.NoError(t, err)
	digit, err := CharRange('0', '9')
	require.NoError(t, err)
	letter := Or(lower, upper)

	schemeExtra, err := Chars("+-.")
	require.NoError(t, err)
	scheme, err := Named("scheme", Concat(letter, Some(Or(letter, digit, schemeExtra))))
	require.NoError(t, err)

	hostExtra, err := Chars("-.")
	require.NoError(t, err)
	host, err := Named("host", Many(Or(letter, digit, hostExtra)))
	require.NoError(t, err)

	port, err := Named("port", Some(digit))
	require.NoError(t, err)

	pathExtra, err := Chars("._~%+-")
	require.NoError(t, err)
	segment := Some(Or(letter, digit, pathExtra))
	path, err := Named("path", Some(Concat(Text("/"), segment)))
	require.NoError(t, err)

	url := Concat(
		scheme,
		Text("://"),
		host,
		Maybe(Concat(Text(":"), port)),
		Maybe(path),
	)

	want := `(?P<scheme>[a-zA-Z][a-zA-Z0-9+\-.]*)` +
		`://` +
		`(?P<host>[a-zA-Z0-9\-.]+)` +
		`(?::(?P<port>[0-9]*))?` +
		`(?P<path>(?:/[a-zA-Z0-9._~%+\-]*)*)?`
	assert.Equal(t, want, Render(url, ""))

	assert.Equal(t, []CaptureInfo{
		{Number: 1, Name: "scheme"},
		{Number: 2, Name: "host"},
		{Number: 3, Name: "port"},
		{Number: 4, Name: "path"},
	}, Captures(url))

	// the whole grammar survives the document codec unchanged
	data, err := MarshalTree(url)
	require.NoError(t, err)
	back, err := UnmarshalTree(data)
	require.NoError(t, err)
	assert.Equal(t, want, Render(back, ""))
}
