package mathtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	cases := []struct {
		spelling string
		unicode  string
	}{
		{"mu", "μ"},
		{"Pi", "Π"},
		{"pi", "π"},
		{"sin", "sin"},
		{"cos^2", "cos²"},
		{"sinh", "sinh"},
		{"oo", "∞"},
		{"pm", "±"},
		{"!=", "≠"},
		{"/=", "≠"},
		{`\cdot`, "·"},
		{"x", "x"},
		{"Q", "Q"},
	}
	for _, c := range cases {
		s, ok := Lookup(c.spelling)
		require.True(t, ok, "no symbol spelled %q", c.spelling)
		assert.Equal(t, c.unicode, s.Unicode, "spelling %q", c.spelling)
	}
	_, ok := Lookup("nope")
	assert.False(t, ok)
}

func TestLookupAmbiguity(t *testing.T) {
	// inf is both the infimum function and a spelling of infinity; the
	// function group is consulted first and wins deterministically.
	s, ok := Lookup("inf")
	require.True(t, ok)
	assert.False(t, s.Equal(Infinity))
	assert.Equal(t, `\inf`, s.Latex)
}

func TestMatchOrder(t *testing.T) {
	// Every match list is ordered longest spelling first so that sinh wins
	// over sin and cos^2 over cos. This ordering is a contract, not an
	// accident.
	groups := map[string][]Symbol{
		"Functions":      Functions,
		"Misc":           Misc,
		"Greek":          Greek,
		"operandSymbols": operandSymbols,
	}
	for name, group := range groups {
		for i := 1; i < len(group); i++ {
			assert.GreaterOrEqual(t, group[i-1].longest(), group[i].longest(),
				"%s out of order at %v, %v", name, group[i-1], group[i])
		}
	}
	idx := func(spelling string) int {
		for i, s := range Functions {
			if s.ASCII == spelling {
				return i
			}
		}
		t.Fatalf("no function spelled %q", spelling)
		return -1
	}
	assert.Less(t, idx("sinh"), idx("sin"))
	assert.Less(t, idx("cos^2"), idx("cos"))
	assert.Less(t, idx("arcsin"), idx("sin"))
}

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, Greek, 2*len(greekNames))
	assert.Len(t, Latin, 52)
	assert.Len(t, Functions, 3*len(funcNames))
}

func TestSymbolReprs(t *testing.T) {
	s := NewSymbol("±", "+/-", `\pm`, "+-", "pm")
	assert.Equal(t, []string{"±", "+/-", `\pm`, "+-", "pm"}, s.Reprs())
	assert.True(t, s.Equal(PlusMinus))
	assert.Equal(t, "+/-", s.String())

	rep, ok := s.matchFront("+- 2", false)
	require.True(t, ok)
	assert.Equal(t, "+-", rep)

	// Letter-only spellings do not match inside an identifier.
	_, ok = s.matchFront("pmf", true)
	assert.False(t, ok)
	rep, ok = s.matchFront("pmf", false)
	require.True(t, ok)
	assert.Equal(t, "pm", rep)
}

func TestSym(t *testing.T) {
	s := Sym("q2")
	assert.Equal(t, "q2", s.Unicode)
	assert.Equal(t, "q2", s.ASCII)
	assert.Equal(t, "q2", s.Latex)
	assert.Empty(t, s.Alts)
	assert.True(t, s.Equal(Sym("q2")))
	assert.False(t, s.Equal(Sym("q")))
}
