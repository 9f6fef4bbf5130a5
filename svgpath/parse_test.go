package svgpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBasicCommands(t *testing.T) {
	p, err := Parse("M1 2 L3 4 H5 V7 Z")
	require.NoError(t, err)
	require.Equal(t, Path{
		MoveTo(toFixedP(1, 2)),
		LineTo(toFixedP(3, 4)),
		LineTo(toFixedP(5, 4)),
		LineTo(toFixedP(5, 7)),
		Close{},
	}, p)
}

func TestParseRelativeEquivalence(t *testing.T) {
	for _, test := range []struct {
		abs, rel string
	}{
		{"M10 10 L20 30", "m10 10 l10 20"},
		{"M10 10 H30 V40", "m10 10 h20 v30"},
		{"M0 0 C0 10 10 10 10 0", "m0 0 c0 10 10 10 10 0"},
		{"M0 0 Q5 10 10 0", "m0 0 q5 10 10 0"},
		{"M5 5 L6 6 Z M7 7", "m5 5 l1 1 z m2 2"},
	} {
		abs, err := Parse(test.abs)
		require.NoError(t, err)
		rel, err := Parse(test.rel)
		require.NoError(t, err)
		require.Equal(t, abs, rel, "for %s vs %s", test.abs, test.rel)
	}
}

func TestParsePackedNumbers(t *testing.T) {
	// separators may be omitted when a sign or a second
	// decimal point starts the next number
	p1, err := Parse("M1.5.5-2 1")
	require.NoError(t, err)
	p2, err := Parse("M 1.5, 0.5 L -2, 1")
	require.NoError(t, err)
	require.Equal(t, p2, p1)

	// packed arc flags
	p1, err = Parse("M0 0a1 1 0 011 1")
	require.NoError(t, err)
	p2, err = Parse("M0 0 a 1 1 0 0 1 1 1")
	require.NoError(t, err)
	require.Equal(t, p2, p1)
}

func TestParseImplicitCommands(t *testing.T) {
	p1, err := Parse("M1 1 2 2 3 3")
	require.NoError(t, err)
	p2, err := Parse("M1 1 L2 2 L3 3")
	require.NoError(t, err)
	require.Equal(t, p2, p1)

	// relative moveto implies relative lineto
	p1, err = Parse("m1 1 1 1")
	require.NoError(t, err)
	p2, err = Parse("M1 1 l1 1")
	require.NoError(t, err)
	require.Equal(t, p2, p1)
}

func TestParseShorthandReflection(t *testing.T) {
	p1, err := Parse("M0 0 C0 10 10 10 10 0 S20 -10 20 0")
	require.NoError(t, err)
	p2, err := Parse("M0 0 C0 10 10 10 10 0 C10 -10 20 -10 20 0")
	require.NoError(t, err)
	require.Equal(t, p2, p1)

	p1, err = Parse("M0 0 Q5 10 10 0 T20 0")
	require.NoError(t, err)
	p2, err = Parse("M0 0 Q5 10 10 0 Q15 -10 20 0")
	require.NoError(t, err)
	require.Equal(t, p2, p1)

	// without a previous curve the control point degenerates
	// to the current point
	p1, err = Parse("M5 5 S10 0 10 10")
	require.NoError(t, err)
	p2, err = Parse("M5 5 C5 5 10 0 10 10")
	require.NoError(t, err)
	require.Equal(t, p2, p1)
}

func TestParseArcs(t *testing.T) {
	p, err := Parse("M0 0 A5 5 0 0 1 10 0")
	require.NoError(t, err)
	require.Greater(t, len(p), 1)
	for _, op := range p[1:] {
		_, isCubic := op.(CubicTo)
		require.True(t, isCubic)
	}
	last := p[len(p)-1].(CubicTo)
	require.Equal(t, toFixedP(10, 0), last[2])

	// zero radius arcs degenerate to lines
	p, err = Parse("M0 0 A0 5 0 0 1 10 10")
	require.NoError(t, err)
	require.Equal(t, Path{MoveTo(toFixedP(0, 0)), LineTo(toFixedP(10, 10))}, p)
}

func TestParseErrors(t *testing.T) {
	for _, badPath := range []string{
		"L10 10",       // must start with a moveto
		"M10",          // missing coordinate
		"M10 10 X5 5",  // unknown command
		"M0 0 Z5 5",    // number after closepath
		"M0 0 C1 2 3",  // not enough arguments
		"M0 0 A1 1 0 2 0 5 5", // invalid arc flag
	} {
		_, err := Parse(badPath)
		require.Error(t, err, "for %q", badPath)
		var mErr *MalformedPathError
		require.ErrorAs(t, err, &mErr)
	}

	// empty data is not an error
	p, err := Parse("   ")
	require.NoError(t, err)
	require.Empty(t, p)
}

func TestRoundTrip(t *testing.T) {
	for _, data := range []string{
		"M1 2 L3 4 Z",
		"M0 0 C0 10 10 10 10 0 S20 -10 20 0 Z",
		"m10.25 10.5 l10 20 h-3 v0.125 q1 1 2 2 t4 4",
		"M0 0 A5 5 0 0 1 10 0 Z M2 2 L3 3",
	} {
		p1, err := Parse(data)
		require.NoError(t, err)
		p2, err := Parse(p1.ToSVGPath())
		require.NoError(t, err)
		require.Equal(t, p1, p2, "for %q", data)
	}
}

func TestSubPaths(t *testing.T) {
	p, err := Parse("M0 0 L1 0 L1 1 Z M5 5 L6 6")
	require.NoError(t, err)
	subs := p.SubPaths()
	require.Len(t, subs, 2)
	require.True(t, subs[0].Closed)
	require.Len(t, subs[0].Ops, 4)
	require.False(t, subs[1].Closed)
	require.Len(t, subs[1].Ops, 2)
}

func TestParseNumberList(t *testing.T) {
	vs, err := ParseNumberList(" 0,0 24 24 ")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 24, 24}, vs)

	_, err = ParseNumberList("0 0 twenty")
	require.Error(t, err)
}

func TestMatrixTransform(t *testing.T) {
	m := Identity.Translate(10, 20).Scale(2, 3)
	x, y := m.Transform(1, 1)
	require.Equal(t, 12.0, x)
	require.Equal(t, 23.0, y)
}
