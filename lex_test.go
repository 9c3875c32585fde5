package mathtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenStrings(toks []token) []string {
	v := make([]string, len(toks))
	for i, t := range toks {
		v[i] = t.String()
	}
	return v
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "frac",
			src:  "2 / (sin mu + 1)",
			want: []string{
				"number:2@1", "operator:/@3", "delim:(@5", "func:sin@6",
				"operand:mu@10", "operator:+@13", "number:1@15", "delim:)@16",
				"end@17",
			},
		},
		{
			name: "squared-funcs",
			src:  "cos^2(A) + sin^2(B)",
			want: []string{
				"func:cos^2@1", "delim:(@6", "operand:A@7", "delim:)@8",
				"operator:+@10",
				"func:sin^2@12", "delim:(@17", "operand:B@18", "delim:)@19",
				"end@20",
			},
		},
		{
			name: "nested",
			src:  "mu ^ (3 * (4 + 5))",
			want: []string{
				"operand:mu@1", "operator:^@4", "delim:(@6", "number:3@7",
				"operator:*@9", "delim:(@11", "number:4@12", "operator:+@14",
				"number:5@16", "delim:)@17", "delim:)@18", "end@19",
			},
		},
		{
			name: "letter-then-digit",
			src:  "x2",
			want: []string{"operand:x2@1", "end@3"},
		},
		{
			name: "digit-then-letter",
			src:  "2x",
			want: []string{"number:2@1", "operand:x@2", "end@3"},
		},
		{
			name: "neq-not-factorial",
			src:  "a != b",
			want: []string{"operand:a@1", "operand:!=@3", "operand:b@6", "end@7"},
		},
		{
			name: "factorial",
			src:  "3!",
			want: []string{"number:3@1", "operator:!@2", "end@3"},
		},
		{
			name: "empty",
			src:  "",
			want: []string{"end@1"},
		},
		{
			name: "exponent-literal",
			src:  "1.5e-3 + 2",
			want: []string{"number:1.5e-3@1", "operator:+@8", "number:2@10", "end@11"},
		},
		{
			name: "greek-unicode",
			src:  "α + β",
			want: []string{"operand:alpha@1", "operator:+@3", "operand:beta@5", "end@6"},
		},
		{
			name: "plus-minus",
			src:  "2 +/- 3",
			want: []string{"number:2@1", "operator:+/-@3", "number:3@7", "end@8"},
		},
		{
			name: "word-stays-whole",
			src:  "amu",
			want: []string{"operand:amu@1", "end@4"},
		},
		{
			name: "infinity",
			src:  "oo",
			want: []string{"operand:inf@1", "end@3"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := tokenize(c.src, Functions)
			assert.Equal(t, c.want, tokenStrings(got))
		})
	}
}

func TestTokenizeArity(t *testing.T) {
	cases := []struct {
		src  string
		idx  int
		want Op
	}{
		{"-2", 0, OpNeg},
		{"- 2", 0, OpNeg},
		{"2 - 3", 1, OpSub},
		{"e-b", 1, OpSub},
		{"sin -2", 1, OpNeg},
		{"(2) - 3", 3, OpSub},
		{"2 ^ -3", 2, OpNeg},
		{"2 + -3", 2, OpNeg},
		{"+/- 2", 0, OpPM},
		{"2 +/- 3", 1, OpAddPM},
		{"2! * 3", 2, OpMul},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			toks := tokenize(c.src, Functions)
			require.Greater(t, len(toks), c.idx)
			got := toks[c.idx]
			require.Equal(t, tokenOperator, got.kind, "token %v", got)
			assert.True(t, got.op.Equal(c.want), "got %v, want %v", got.op, c.want)
		})
	}
}

func TestTokenizeEnd(t *testing.T) {
	// Every input ends with exactly one end token, no matter how broken.
	srcs := []string{
		"", " ", "2 + 3", "((((", "))))", "@#$%", "βγ∂", "2 +", "sin", "!!",
		"mu ^ (3 * (4 + 5))", "\x00\xff",
	}
	for _, src := range srcs {
		toks := tokenize(src, Functions)
		require.NotEmpty(t, toks, "input %q", src)
		assert.Equal(t, tokenEnd, toks[len(toks)-1].kind, "input %q", src)
		for _, tok := range toks[:len(toks)-1] {
			assert.NotEqual(t, tokenEnd, tok.kind, "early end in %q", src)
		}
	}
}

func TestScanNumber(t *testing.T) {
	cases := map[string]string{
		"0123":      "0123",
		"40.20":     "40.20",
		"1.5e-3":    "1.5e-3",
		"2e10":      "2e10",
		"2E+3":      "2E+3",
		"2.":        "2",
		"2.x":       "2",
		"2e":        "2",
		"2e+":       "2",
		"123 + 234": "123",
		"x":         "",
		".5":        "",
		".":         "",
	}
	for src, want := range cases {
		assert.Equal(t, want, scanNumber(src), "input %q", src)
	}
}
