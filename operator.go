package mathtext

// Fixity is where an operator's symbol sits relative to its operands.
type Fixity int8

const (
	// Prefix operators precede their operand, like unary minus.
	Prefix Fixity = iota
	// Infix operators sit between their operands.
	Infix
	// Postfix operators follow their operand, like factorial.
	Postfix
)

// String returns the fixity's name.
func (f Fixity) String() string {
	switch f {
	case Prefix:
		return "prefix"
	case Infix:
		return "infix"
	case Postfix:
		return "postfix"
	default:
		return "fixity(?)"
	}
}

// Op is an operator: a symbol, a precedence on each side, and a fixity.
//
// Precedence is per side. Lower values bind tighter, and 0 means the
// operator cannot extend on that side at all: prefix operators have no left
// precedence and postfix operators have no right precedence. Left- and
// right-associativity fall out of asymmetric pairs — a left-associative
// operator's right precedence is one tighter than its left, so an earlier
// instance binds first under the parser's strict comparison, and vice versa
// for right-associative operators.
type Op struct {
	// Sym is the operator's symbol.
	Sym Symbol
	// Left is the left-side precedence, or 0 if the operator cannot bind an
	// operand on its left.
	Left int8
	// Right is the right-side precedence, or 0 if the operator cannot bind
	// an operand on its right.
	Right int8
	// Fix is the operator's fixity.
	Fix Fixity
}

// BindsLeft reports whether the operator can extend on its left side.
func (op Op) BindsLeft() bool { return op.Left != 0 }

// BindsRight reports whether the operator can extend on its right side.
func (op Op) BindsRight() bool { return op.Right != 0 }

// Unary reports whether the operator takes a single operand.
func (op Op) Unary() bool { return op.Fix != Infix }

// Equal reports whether two operators are the same operator.
func (op Op) Equal(p Op) bool {
	return op.Left == p.Left && op.Right == p.Right && op.Fix == p.Fix && op.Sym.Equal(p.Sym)
}

// The fixed operator table. Unary operators bind tighter than anything
// binary; the comma is the loosest operator of all so that argument lists
// group beneath every other operator.
var (
	OpPos   = Op{Sym: Plus, Right: 1, Fix: Prefix}
	OpNeg   = Op{Sym: Minus, Right: 1, Fix: Prefix}
	OpPM    = Op{Sym: PlusMinus, Right: 1, Fix: Prefix}
	OpFact  = Op{Sym: Bang, Left: 2, Fix: Postfix}
	OpPow   = Op{Sym: Caret, Left: 3, Right: 4, Fix: Infix}
	OpMul   = Op{Sym: Times, Left: 6, Right: 5, Fix: Infix}
	OpDiv   = Op{Sym: Divide, Left: 6, Right: 5, Fix: Infix}
	OpAdd   = Op{Sym: Plus, Left: 8, Right: 7, Fix: Infix}
	OpSub   = Op{Sym: Minus, Left: 8, Right: 7, Fix: Infix}
	OpAddPM = Op{Sym: PlusMinus, Left: 8, Right: 7, Fix: Infix}
	OpComma = Op{Sym: Comma, Left: 11, Right: 10, Fix: Infix}
)

// unaryOps is the operator candidate set where an operand cannot have just
// ended: the start of input, or following an operator, opening delimiter, or
// function name. The plus-minus comes first so that its +/- spelling is not
// eaten by the bare plus.
var unaryOps = []Op{OpPM, OpPos, OpNeg}

// binaryOps is the candidate set following an operand or closing delimiter,
// with the plus-minus ordered first for the same reason as in unaryOps.
// The postfix factorial lives here: like an infix operator, it extends
// something already parsed on its left.
var binaryOps = []Op{OpAddPM, OpPow, OpMul, OpDiv, OpAdd, OpSub, OpFact, OpComma}
