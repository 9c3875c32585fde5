package mathtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLatex(t *testing.T) {
	got, ok := ToLatex("2 / (sin mu + 1)")
	require.True(t, ok)
	assert.Equal(t, `\frac{ 2 }{ \sin\left(\mu\right) + 1 }`, got)

	got, ok = ToLatex("(1 + 2")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestToUnicode(t *testing.T) {
	got, ok := ToUnicode("2 / (sin mu + 1)")
	require.True(t, ok)
	assert.Equal(t, "2 / (sin(μ) + 1)", got)

	got, ok = ToUnicode("")
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestRenderDeterministic(t *testing.T) {
	n := mustParse(t, "mu ^ (3 * (4 + 5)) - sin(2)!")
	for _, f := range []Format{Latex, Unicode} {
		first := Render(n, f)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Render(n, f), "format %v", f)
		}
	}
}

// Reparsing rendered Unicode must reproduce the tree exactly. This is the
// law the parenthesization rules exist to uphold.
func TestUnicodeRoundTrip(t *testing.T) {
	srcs := []string{
		"2 + 3 * 4",
		"2 ^ 3 ^ 4",
		"(2 ^ 3) ^ 4",
		"2 - 3 - 4",
		"2 - (3 - 4)",
		"2 / (sin mu + 1)",
		"mu ^ (3 * (4 + 5))",
		"cos^2(A) + sin^2(B)",
		"-2",
		"-(2 + 3)",
		"-2 ^ 2",
		"2 ^ -3",
		"3!",
		"(2 + 3)!",
		"2! * 3",
		"2 + 3!",
		"2a",
		"2 x y",
		"max(1, 2, 3)",
		"max(-2, 3 + 4)",
		"2 +/- 3",
		"+/- 3",
		"a != b",
		"0 (*)",
		"2 (!)",
		"2 (,) 3",
		"2 / 3 / 4",
		"2 / (3 / 4)",
		"90 deg",
		"1, 2",
	}
	for _, src := range srcs {
		t.Run(src, func(t *testing.T) {
			n := mustParse(t, src)
			out := Render(n, Unicode)
			m, err := Parse(out)
			require.NoError(t, err, "reparsing %q", out)
			assert.True(t, EqualNode(n, m), "%q reparsed as %v, want %v", out, Text(m), Text(n))
		})
	}
}
