package mathtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) Node {
	t.Helper()
	n, err := Parse(src)
	require.NoError(t, err, "parsing %q", src)
	return n
}

func TestNeedParens(t *testing.T) {
	gen := func(op Op) BinaryOp { return BinaryOp{Kind: BinGeneric, Op: op} }
	cases := []struct {
		name         string
		op           BinaryOp
		l, r         string
		wantL, wantR bool
	}{
		{"tighter-children-bare", gen(OpAdd), "2 - 3", "1 / 2", false, false},
		{"sub-needs-right-grouping", gen(OpSub), "1", "2 - 3", false, true},
		{"looser-left-grouped", gen(OpMul), "2 + 3", "1 ^ 2", true, false},
		{"frac-under-mul", gen(OpMul), "1 / 2", "3 / 4", false, true},
		{"leaves-bare", gen(OpAdd), "2", "mu", false, false},
		{"unary-child-bare", gen(OpAdd), "-2", "3", false, false},
		{"call-child-bare", gen(OpMul), "sin(2)", "3", false, false},
		{"power-left-grouped", BinaryOp{Kind: BinPower}, "2 ^ 3", "3 ^ 4", true, false},
		{"power-looser-right", BinaryOp{Kind: BinPower}, "2", "3 + 4", false, true},
		{"frac-bars-delimit", BinaryOp{Kind: BinFrac}, "2 + 3", "4 + 5", false, false},
		{"concat-groups-binaries", BinaryOp{Kind: BinConcat}, "2 + 3", "4 * 5", true, true},
		{"concat-unary-right-only", BinaryOp{Kind: BinConcat}, "-2", "-3", false, true},
		{"concat-call-bare", BinaryOp{Kind: BinConcat}, "sin(2)", "x", false, false},
		{"concat-operator-leaf-right", BinaryOp{Kind: BinConcat}, "0", "(*)", false, true},
		{"concat-operator-leaf-left", BinaryOp{Kind: BinConcat}, "(*)", "x", false, false},
		{"concat-opaque-bang-right", BinaryOp{Kind: BinConcat}, "0", "(!)", false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := mustParse(t, c.l)
			r := mustParse(t, c.r)
			gotL, gotR := needParens(c.op, l, r)
			assert.Equal(t, c.wantL, gotL, "left")
			assert.Equal(t, c.wantR, gotR, "right")
		})
	}
}

func TestNeedParensUnary(t *testing.T) {
	cases := []struct {
		op   Op
		x    string
		want bool
	}{
		{OpNeg, "2", false},
		{OpNeg, "sin(2)", false},
		{OpNeg, "2 + 3", true},
		{OpNeg, "2 ^ 3", true},
		{OpNeg, "2 / 3", true},
		{OpNeg, "2a", true},
		{OpFact, "3", false},
		{OpFact, "2 + 3", true},
		{OpFact, "sin(2)", false},
	}
	for _, c := range cases {
		t.Run(c.op.Sym.ASCII+" "+c.x, func(t *testing.T) {
			got := needParensUnary(c.op, mustParse(t, c.x))
			assert.Equal(t, c.want, got)
		})
	}
}
