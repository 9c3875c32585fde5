package mathtext

import "strings"

// UnicodeFormatter typesets trees as plain text, preferring each symbol's
// Unicode spelling.
type UnicodeFormatter struct{}

var _ Formatter = UnicodeFormatter{}

// Format typesets a tree as Unicode text.
func (UnicodeFormatter) Format(n Node) string {
	var b strings.Builder
	uniNode(&b, n)
	return b.String()
}

func uniNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case Symbol:
		b.WriteString(n.Unicode)
	case Number:
		b.WriteString(n.Text)
	case Unary:
		p := needParensUnary(n.Op, n.X)
		if n.Op.Fix == Postfix {
			uniGroup(b, n.X, p)
			b.WriteString(n.Op.Sym.Unicode)
			return
		}
		b.WriteString(n.Op.Sym.Unicode)
		uniGroup(b, n.X, p)
	case Binary:
		uniBinary(b, n)
	case Call:
		b.WriteString(n.Name.Unicode)
		b.WriteByte('(')
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			uniNode(b, a)
		}
		b.WriteByte(')')
	default:
		panic("mathtext: unknown node " + Text(n))
	}
}

func uniBinary(b *strings.Builder, n Binary) {
	lp, rp := needParens(n.Op, n.Left, n.Right)
	switch n.Op.Kind {
	case BinPower:
		uniGroup(b, n.Left, lp)
		b.WriteByte('^')
		uniGroup(b, n.Right, rp)
	case BinFrac:
		// There is no fraction bar in this format, so the division sign's
		// own precedence decides the grouping instead.
		lp, rp = genericParens(OpDiv, n.Left, n.Right)
		uniGroup(b, n.Left, lp)
		b.WriteString(" / ")
		uniGroup(b, n.Right, rp)
	case BinLog:
		b.WriteString("log_")
		uniGroup(b, n.Left, lp)
		b.WriteByte(' ')
		uniGroup(b, n.Right, rp)
	case BinConcat:
		uniGroup(b, n.Left, lp)
		b.WriteByte(' ')
		uniGroup(b, n.Right, rp)
	case BinGeneric:
		sym := n.Op.Op.Sym.Unicode
		switch n.Op.Op.Fix {
		case Prefix:
			b.WriteString(sym)
			b.WriteByte(' ')
			uniGroup(b, n.Left, lp)
			b.WriteByte(' ')
			uniGroup(b, n.Right, rp)
		case Postfix:
			uniGroup(b, n.Left, lp)
			b.WriteByte(' ')
			uniGroup(b, n.Right, rp)
			b.WriteByte(' ')
			b.WriteString(sym)
		default:
			uniGroup(b, n.Left, lp)
			b.WriteByte(' ')
			b.WriteString(sym)
			b.WriteByte(' ')
			uniGroup(b, n.Right, rp)
		}
	default:
		panic("mathtext: unknown binary kind")
	}
}

func uniGroup(b *strings.Builder, n Node, parens bool) {
	if parens {
		b.WriteByte('(')
		uniNode(b, n)
		b.WriteByte(')')
		return
	}
	uniNode(b, n)
}
