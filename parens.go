package mathtext

import "strings"

// needParens reports whether the left and right children of a binary node
// must be parenthesized to render without changing the tree's grouping. It
// is a pure function of the operator and the shapes of the children, and
// every output format consults it rather than inventing its own rule.
//
// A side needs parentheses when the child is itself a binary expression
// whose precedence at the junction is looser than the parent's there: the
// left child's right precedence against the parent's left, and the right
// child's left precedence against the parent's right. A missing precedence
// on either side of the comparison means no parentheses; 2 ^ ±3 is
// unambiguous, if weird. Leaves, unary expressions, and function calls
// never need parentheses.
func needParens(op BinaryOp, l, r Node) (bool, bool) {
	switch op.Kind {
	case BinGeneric:
		return genericParens(op.Op, l, r)
	case BinPower, BinLog:
		// A logarithm's base and argument bind exactly like an exponent.
		return genericParens(OpPow, l, r)
	case BinFrac:
		// The fraction bar delimits both operands on its own.
		return false, false
	case BinConcat:
		// Any binary child changes meaning when juxtaposed bare, and the
		// right side does whenever reparsing would read it as something
		// other than an operand: a unary child, or a symbol spelled like
		// an operator, as in 0 (*). The juxtaposition leaves the reparse
		// ready for a binary operator exactly there.
		_, lp := l.(Binary)
		var rp bool
		switch r := r.(type) {
		case Binary, Unary:
			rp = true
		case Symbol:
			rp = clashes(r)
		}
		return lp, rp
	default:
		panic("mathtext: unknown binary kind")
	}
}

func genericParens(op Op, l, r Node) (bool, bool) {
	lo, lok := effectiveOp(l)
	ro, rok := effectiveOp(r)
	return lok && looser(lo.Right, op.Left), rok && looser(ro.Left, op.Right)
}

// looser reports whether a child precedence binds more loosely than the
// parent's at a junction. An absent child precedence never needs
// parentheses; an absent parent precedence loses to any present child.
func looser(child, parent int8) bool {
	return child != 0 && child > parent
}

// effectiveOp resolves the operator a binary child exposes at its edges.
// Power and logarithm nodes expose the exponentiation operator and
// fractions the division operator; concatenation exposes none.
func effectiveOp(n Node) (Op, bool) {
	b, ok := n.(Binary)
	if !ok {
		return Op{}, false
	}
	switch b.Op.Kind {
	case BinGeneric:
		return b.Op.Op, true
	case BinPower, BinLog:
		return OpPow, true
	case BinFrac:
		return OpDiv, true
	default:
		return Op{}, false
	}
}

// clashes reports whether a symbol leaf's spelling could begin an operator
// or delimiter token. Rendering such a leaf bare where an operator may
// follow changes how the text lexes: the Times symbol out of 0 (*) must
// not render as 0 ·, and an opaque ! or , operand is just as unsafe.
func clashes(s Symbol) bool {
	for _, ops := range [][]Op{unaryOps, binaryOps} {
		for _, op := range ops {
			if spelledLike(s, op.Sym) {
				return true
			}
		}
	}
	for _, d := range delims {
		if spelledLike(s, d.Symbol()) {
			return true
		}
	}
	return false
}

// spelledLike reports whether any preferred spelling of s starts with a
// spelling of t.
func spelledLike(s, t Symbol) bool {
	for _, r := range t.Reprs() {
		if r == "" {
			continue
		}
		if strings.HasPrefix(s.Unicode, r) || strings.HasPrefix(s.ASCII, r) || strings.HasPrefix(s.Latex, r) {
			return true
		}
	}
	return false
}

// needParensUnary reports whether a unary node's operand must be
// parenthesized. The junction sits on the operand's side facing the
// operator symbol: -2^3 groups the minus first, so rendering the other
// grouping needs parentheses around the power.
func needParensUnary(op Op, x Node) bool {
	b, ok := x.(Binary)
	if !ok {
		return false
	}
	if b.Op.Kind == BinConcat {
		return true
	}
	c, _ := effectiveOp(x)
	if op.Fix == Postfix {
		return looser(c.Right, op.Left)
	}
	return looser(c.Left, op.Right)
}
