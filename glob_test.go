package rgx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGlob(t *testing.T) {
	tests := []struct {
		glob string
		want string
	}{
		{"*.go", `[^/]*\.go`},
		{"**/*.go", `.*/[^/]*\.go`},
		{"cmd/**", `cmd/.*`},
		{"file?.txt", `file[^/]\.txt`},
		{"[a-z].md", `[a-z]\.md`},
		{"[!a-z].md", `[^a-z]\.md`},
		{"[abc]", `[abc]`},
		{"{foo,bar}.go", `(?:foo|bar)\.go`},
		{"a{b,c*}d", `a(?:b|c[^/]*)d`},
		{"plain.txt", `plain\.txt`},
		{`esc\*aped`, `esc\*aped`},
	}

	for _, tt := range tests {
		t.Run(tt.glob, func(t *testing.T) {
			p, err := FromGlob(tt.glob)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Render(p, ""))
		})
	}
}

func TestFromGlobErrors(t *testing.T) {
	for _, glob := range []string{"[a-", "a{b,c", `trailing\`} {
		t.Run(glob, func(t *testing.T) {
			_, err := FromGlob(glob)
			assert.ErrorIs(t, err, ErrBadGlob)
		})
	}
}
