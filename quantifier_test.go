package rgx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvenienceQuantifiers(t *testing.T) {
	a := Text("a")

	assert.Equal(t, "a+", Render(Many(a), ""))
	assert.Equal(t, "a+?", Render(Many(a).Lazy(), ""))
	assert.Equal(t, "a*", Render(Some(a), ""))
	assert.Equal(t, "a*?", Render(Some(a).Lazy(), ""))
	assert.Equal(t, "a?", Render(Maybe(a), ""))
	assert.Equal(t, "a??", Render(Maybe(a).Lazy(), ""))
}

func TestBoundedQuantifiers(t *testing.T) {
	a := Text("a")

	q, err := Repeat(a, 5)
	require.NoError(t, err)
	assert.Equal(t, "a{5}", Render(q, ""))
	// laziness is meaningless for a fixed count
	assert.Equal(t, "a{5}", Render(q.Lazy(), ""))

	assert.Equal(t, "a{,5}", Render(q.OrLess(), ""))
	assert.Equal(t, "a{,5}?", Render(q.OrLess().Lazy(), ""))
	assert.Equal(t, "a{5,}", Render(q.OrMore(), ""))
	assert.Equal(t, "a{5,}?", Render(q.OrMore().Lazy(), ""))

	between, err := Between(a, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, "a{4,5}", Render(between, ""))

	to, err := q.To(7)
	require.NoError(t, err)
	assert.Equal(t, "a{5,7}", Render(to, ""))
}

// Named bound pairs collapse to the shortest syntax.
func TestQuantifierCollapsing(t *testing.T) {
	a := Text("a")

	one, err := Repeat(a, 1)
	require.NoError(t, err)
	assert.Equal(t, "a?", Render(one.OrLess(), ""))
	assert.Equal(t, "a??", Render(one.OrLess().Lazy(), ""))
	assert.Equal(t, "a+", Render(one.OrMore(), ""))
	assert.Equal(t, "a+?", Render(one.OrMore().Lazy(), ""))
	assert.Equal(t, "a", Render(one, ""))
	assert.Equal(t, "a", Render(one.Lazy(), ""))

	zero, err := Repeat(a, 0)
	require.NoError(t, err)
	assert.Equal(t, "a*", Render(zero.OrMore(), ""))
	assert.Equal(t, "a*?", Render(zero.OrMore().Lazy(), ""))
}

func TestInvalidBounds(t *testing.T) {
	a := Text("a")

	_, err := Between(a, 5, 4)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = Between(a, -1, 4)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = Repeat(a, -2)
	assert.ErrorIs(t, err, ErrInvalidBounds)

	q, err := Repeat(a, 5)
	require.NoError(t, err)
	_, err = q.To(4)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestBoundAdjustersReturnNewValues(t *testing.T) {
	a := Text("a")
	q, err := Repeat(a, 5)
	require.NoError(t, err)

	more := q.OrMore()
	less := q.OrLess()
	lazy := q.Lazy()

	// the original is untouched
	assert.Equal(t, "a{5}", Render(q, ""))

	_, bounded := more.Max()
	assert.False(t, bounded)
	assert.Equal(t, 5, more.Min())

	assert.Equal(t, 0, less.Min())
	max, bounded := less.Max()
	assert.True(t, bounded)
	assert.Equal(t, 5, max)

	assert.True(t, lazy.IsLazy())
	assert.False(t, q.IsLazy())
}
