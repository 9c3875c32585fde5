package mathtext

import "strings"

// The abstract syntax tree here represents pure mathematical notation.
// Unlike most expression trees, the goal is never to evaluate or transform
// anything, only to share structure between parsing and typesetting: free
// variables, repeated symbols, and unbound expressions are all fine. Trees
// are never modified after construction.

// Node is a node in a parsed expression.
type Node interface {
	// text writes the node for debugging. Renderers do not use it.
	text(b *strings.Builder)
}

// Number is a numeric literal. The decimal text is kept verbatim and never
// converted to a value, so 0123 and 40.20 survive exactly as written.
type Number struct {
	Text string
}

// Unary is the application of a prefix or postfix operator to one operand.
type Unary struct {
	// Op is the operator. Its symbol names the operation and its fixity
	// places it relative to X.
	Op Op
	// X is the operand.
	X Node
}

// BinaryKind is the class of a binary expression.
type BinaryKind int8

const (
	// BinGeneric covers operators that typeset as their symbol between,
	// before, or after their operands: +, -, ±, ·, and the comma.
	BinGeneric BinaryKind = iota
	// BinPower is exponentiation, which typesets as a superscript rather
	// than with a caret.
	BinPower
	// BinFrac is division, which typesets as a fraction when possible.
	BinFrac
	// BinLog is a logarithm with an explicit base.
	BinLog
	// BinConcat is implicit multiplication by juxtaposition, as in 2a.
	BinConcat
)

// BinaryOp is the operation of a binary expression: a kind, and for
// BinGeneric the operator itself.
type BinaryOp struct {
	Kind BinaryKind
	// Op is the underlying operator. It is meaningful only for BinGeneric;
	// the special kinds carry their operator implicitly.
	Op Op
}

// Binary is a binary expression.
type Binary struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

// Call is the application of a named function to any number of arguments.
type Call struct {
	Name Symbol
	Args []Node
}

func (s Symbol) text(b *strings.Builder) { b.WriteString(s.ASCII) }
func (n Number) text(b *strings.Builder) { b.WriteString(n.Text) }

func (u Unary) text(b *strings.Builder) {
	b.WriteByte('(')
	if u.Op.Fix == Postfix {
		u.X.text(b)
		b.WriteString(u.Op.Sym.ASCII)
	} else {
		b.WriteString(u.Op.Sym.ASCII)
		u.X.text(b)
	}
	b.WriteByte(')')
}

func (n Binary) text(b *strings.Builder) {
	b.WriteByte('(')
	defer b.WriteByte(')')
	switch n.Op.Kind {
	case BinGeneric:
		switch n.Op.Op.Fix {
		case Prefix:
			b.WriteString(n.Op.Op.Sym.ASCII)
			b.WriteByte(' ')
			n.Left.text(b)
			b.WriteByte(' ')
			n.Right.text(b)
		case Postfix:
			n.Left.text(b)
			b.WriteByte(' ')
			n.Right.text(b)
			b.WriteByte(' ')
			b.WriteString(n.Op.Op.Sym.ASCII)
		default:
			n.Left.text(b)
			b.WriteByte(' ')
			b.WriteString(n.Op.Op.Sym.ASCII)
			b.WriteByte(' ')
			n.Right.text(b)
		}
	case BinPower:
		n.Left.text(b)
		b.WriteByte('^')
		n.Right.text(b)
	case BinFrac:
		n.Left.text(b)
		b.WriteString(" / ")
		n.Right.text(b)
	case BinLog:
		b.WriteString("log_")
		n.Left.text(b)
		b.WriteByte(' ')
		n.Right.text(b)
	case BinConcat:
		n.Left.text(b)
		b.WriteByte(' ')
		n.Right.text(b)
	}
}

func (c Call) text(b *strings.Builder) {
	b.WriteString(c.Name.ASCII)
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.text(b)
	}
	b.WriteByte(')')
}

// Text returns a bracketed plaintext rendition of the tree for debugging.
// Use Render for typeset output.
func Text(n Node) string {
	var b strings.Builder
	n.text(&b)
	return b.String()
}

// EqualNode reports whether two trees have identical structure: the same
// node kinds, operators, symbols, and literal text throughout.
func EqualNode(a, b Node) bool {
	switch x := a.(type) {
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x.Equal(y)
	case Number:
		y, ok := b.(Number)
		return ok && x.Text == y.Text
	case Unary:
		y, ok := b.(Unary)
		return ok && x.Op.Equal(y.Op) && EqualNode(x.X, y.X)
	case Binary:
		y, ok := b.(Binary)
		if !ok || x.Op.Kind != y.Op.Kind {
			return false
		}
		if x.Op.Kind == BinGeneric && !x.Op.Op.Equal(y.Op.Op) {
			return false
		}
		return EqualNode(x.Left, y.Left) && EqualNode(x.Right, y.Right)
	case Call:
		y, ok := b.(Call)
		if !ok || !x.Name.Equal(y.Name) || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !EqualNode(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
