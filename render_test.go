package rgx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiterals(t *testing.T) {
	assert.Equal(t, "x", Render(Text("x"), ""))
	assert.Equal(t, `\.`, Render(Text("."), ""))
	assert.Equal(t, ".", Render(Raw("."), ""))
	assert.Equal(t, `a\+b`, Render(Text("a+b"), ""))
}

func TestConcat(t *testing.T) {
	a, b := Text("a"), Text("b")

	assert.Equal(t, "ab", Render(Concat(a, b), ""))
	assert.Equal(t, "aaa", Render(Concat(a, a, a), ""))
	// nested concatenations flatten without affecting output
	assert.Equal(t, "aba", Render(Concat(Concat(a, b), a), ""))
	assert.Equal(t, "", Render(Concat(), ""))
}

func TestAlternation(t *testing.T) {
	ab, ac := Text("ab"), Text("ac")

	assert.Equal(t, "ab|ac", Render(Or(ab, ac), ""))
	assert.Equal(t, "ab|ac|ab", Render(Or(ab, ac, ab), ""))
	assert.Equal(t, "a|ab|ac", Render(Or(Text("a"), Or(ab, ac)), ""))
	assert.Equal(t, "", Render(Or(), ""))

	// one branch is no alternation at all, so nothing to group
	assert.Equal(t, "ab", Render(Concat(Text("a"), Or(Text("b"))), ""))
}

// Children weaker than their position get exactly one non-capturing group;
// atoms never get one.
func TestGroupingByPriority(t *testing.T) {
	a, b, c := Text("a"), Text("b"), Text("c")

	// alternation under concatenation must be grouped
	assert.Equal(t, "a(?:b|c)", Render(Concat(a, Or(b, c)), ""))
	assert.Equal(t, "(?:ab|ac)b", Render(Concat(Or(Text("ab"), Text("ac")), b), ""))

	// concatenation under alternation needs nothing
	assert.Equal(t, "ab|b", Render(Or(Concat(a, b), b), ""))

	// a class in concatenation needs nothing
	cls, err := Chars("123")
	require.NoError(t, err)
	assert.Equal(t, "[123]c", Render(Concat(cls, c), ""))

	// quantified concatenation must be grouped, quantified atom must not
	assert.Equal(t, "(?:ab)+", Render(Many(Concat(a, b)), ""))
	assert.Equal(t, "a+", Render(Many(a), ""))
}

// A multi-character literal is an implicit concatenation, so a quantifier
// over it needs the group while plain concatenation does not.
func TestMultiCharLiteralBinding(t *testing.T) {
	assert.Equal(t, "(?:ab)+", Render(Many(Text("ab")), ""))
	assert.Equal(t, "abc", Render(Concat(Text("ab"), Text("c")), ""))
}

func TestRenderDeterministic(t *testing.T) {
	tree := Concat(Capture(Text("a")), Many(Or(Text("bc"), Text("d"))))
	first := Render(tree, "im")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Render(tree, "im"))
	}
}

func TestGroups(t *testing.T) {
	a := Text("a")

	assert.Equal(t, "(a)", Render(Capture(a), ""))
	assert.Equal(t, "(?:a)", Render(NonCapture(a), ""))

	g, err := Named("g", Concat(Text("x")))
	require.NoError(t, err)
	assert.Equal(t, "(?P<g>x)", Render(g, ""))

	_, err = Named("", a)
	assert.ErrorIs(t, err, ErrBadName)
	_, err = Named("1bad", a)
	assert.ErrorIs(t, err, ErrBadName)
}

func TestLookaround(t *testing.T) {
	a, b := Text("a"), Text("b")

	assert.Equal(t, "a(?=b)", Render(Before(a, b), ""))
	assert.Equal(t, "a(?!b)", Render(NotBefore(a, b), ""))
	assert.Equal(t, "(?<=b)a", Render(After(a, b), ""))
	assert.Equal(t, "(?<!b)a", Render(NotAfter(a, b), ""))
}

func TestConditional(t *testing.T) {
	assert.Equal(t, "(?(1)a|b)", Render(Conditional(1, Text("a"), Text("b")), ""))
	// alternation branches are grouped so the branch separator stays unambiguous
	assert.Equal(t,
		"(?(2)(?:a|b)|c)",
		Render(Conditional(2, Or(Text("a"), Text("b")), Text("c")), ""))
}

func TestFlags(t *testing.T) {
	a := Text("a")

	assert.Equal(t, "(?i)a", Render(a, "i"))
	assert.Equal(t, "(?i:a)", Render(WithFlags(a, "i"), ""))
	// flags already active in the surrounding scope are not re-applied
	assert.Equal(t, "(?i)a", Render(WithFlags(a, "i"), "i"))
	assert.Equal(t, "(?i)(?m:a)", Render(WithFlags(a, "im"), "i"))
	assert.Equal(t, "(?i:(?m:a))", Render(WithFlags(WithFlags(a, "im"), "i"), ""))
}

func TestFlagsDroppedScopeKeepsGrouping(t *testing.T) {
	// a redundant scope around a non-atomic body still groups it
	alt := Or(Text("b"), Text("c"))
	tree := Concat(Text("a"), WithFlags(alt, "i"))
	assert.Equal(t, "(?i)a(?:b|c)", Render(tree, "i"))
	assert.Equal(t, "a(?i:b|c)", Render(tree, ""))
}

func TestReferences(t *testing.T) {
	assert.Equal(t, `\1`, Render(Ref(1), ""))

	named, err := NamedRef("x")
	require.NoError(t, err)
	assert.Equal(t, "(?P=x)", Render(named, ""))

	g := Capture(Text("a"))
	tree := Concat(Capture(Text("x")), g, RefTo(g))
	assert.Equal(t, `(x)(a)\2`, Render(tree, ""))
}

func TestComment(t *testing.T) {
	assert.Equal(t, "a(?# that's a!)", Render(Concat(Text("a"), Comment(" that's a!")), ""))
	assert.Equal(t, `(?#x\))`, Render(Comment("x)"), ""))
}

func TestCaptureNumbering(t *testing.T) {
	inner := Capture(Text("b"))
	g, err := Named("tail", Text("d"))
	require.NoError(t, err)
	tree := Concat(
		Capture(Concat(Text("a"), inner)),
		Capture(Text("c")),
		g,
	)

	got := Captures(tree)
	require.Len(t, got, 4)
	assert.Equal(t, []CaptureInfo{
		{Number: 1},
		{Number: 2},
		{Number: 3},
		{Number: 4, Name: "tail"},
	}, got)

	// numbering is per render, stable across calls
	assert.Equal(t, Render(tree, ""), Render(tree, ""))
}

func TestRawAtPriority(t *testing.T) {
	// explicit rank between alternation and concatenation
	p := RawAt("a|b", (PriorityAlternation+PriorityConcat)/2)
	assert.Equal(t, "(?:a|b)c", Render(Concat(p, Text("c")), ""))
	assert.InDelta(t, 1.0, Priority(p), 1e-9)
}

func TestMetaTokens(t *testing.T) {
	assert.Equal(t, `\d+`, Render(Many(Digit), ""))
	assert.Equal(t, `^\w*$`, Render(Concat(LineStart, Some(WordChar), LineEnd), ""))

	esc, err := CharEscape(0x41)
	require.NoError(t, err)
	assert.Equal(t, `\x41`, string(esc))
	esc, err = CharEscape(0x263A)
	require.NoError(t, err)
	assert.Equal(t, `\u263a`, string(esc))
	esc, err = CharEscape(0x1F600)
	require.NoError(t, err)
	assert.Equal(t, `\U0001f600`, string(esc))

	_, err = CharEscape(0x110000)
	assert.ErrorIs(t, err, ErrUnsupportedLiteral)
	_, err = CharEscape(0xD800)
	assert.ErrorIs(t, err, ErrUnsupportedLiteral)
}

func TestUnicodeProperties(t *testing.T) {
	assert.Equal(t, `\p{L}`, string(Letter))
	assert.Equal(t, `\P{L}`, string(NonLetter))
	assert.Equal(t, `\p{Script=Latin}`, string(NamedProperty("Script", "Latin")))
	assert.Equal(t, `\P{Nd}`, string(NonDecimalDigit))
}
