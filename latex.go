package mathtext

import "strings"

// LatexFormatter typesets trees as LaTeX math-mode markup using each
// symbol's markup spelling.
type LatexFormatter struct{}

var _ Formatter = LatexFormatter{}

// Format typesets a tree as LaTeX markup.
func (LatexFormatter) Format(n Node) string {
	var b strings.Builder
	latexNode(&b, n)
	return b.String()
}

func latexNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case Symbol:
		b.WriteString(n.Latex)
	case Number:
		b.WriteString(n.Text)
	case Unary:
		latexUnary(b, n)
	case Binary:
		latexBinary(b, n)
	case Call:
		b.WriteString(n.Name.Latex)
		b.WriteString(`\left(`)
		for i, a := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			latexNode(b, a)
		}
		b.WriteString(`\right)`)
	default:
		panic("mathtext: unknown node " + Text(n))
	}
}

func latexUnary(b *strings.Builder, n Unary) {
	p := needParensUnary(n.Op, n.X)
	if n.Op.Fix == Postfix {
		latexGroup(b, n.X, p)
		b.WriteString(n.Op.Sym.Latex)
		return
	}
	b.WriteString(n.Op.Sym.Latex)
	// A macro spelling like \pm must not run into a following letter.
	if !p && endsMacro(n.Op.Sym.Latex) {
		b.WriteByte(' ')
	}
	latexGroup(b, n.X, p)
}

func latexBinary(b *strings.Builder, n Binary) {
	lp, rp := needParens(n.Op, n.Left, n.Right)
	switch n.Op.Kind {
	case BinPower:
		// The braces delimit the exponent on their own.
		latexGroup(b, n.Left, lp)
		b.WriteString("^{")
		latexNode(b, n.Right)
		b.WriteByte('}')
	case BinFrac:
		b.WriteString(`\frac{ `)
		latexNode(b, n.Left)
		b.WriteString(` }{ `)
		latexNode(b, n.Right)
		b.WriteString(` }`)
	case BinLog:
		b.WriteString(`\log_{ `)
		latexNode(b, n.Left)
		b.WriteString(` } \left( `)
		latexNode(b, n.Right)
		b.WriteString(` \right)`)
	case BinConcat:
		latexGroup(b, n.Left, lp)
		b.WriteByte(' ')
		latexGroup(b, n.Right, rp)
	case BinGeneric:
		sym := n.Op.Op.Sym.Latex
		switch n.Op.Op.Fix {
		case Prefix:
			b.WriteString(sym)
			b.WriteByte(' ')
			latexGroup(b, n.Left, lp)
			b.WriteByte(' ')
			latexGroup(b, n.Right, rp)
		case Postfix:
			latexGroup(b, n.Left, lp)
			b.WriteByte(' ')
			latexGroup(b, n.Right, rp)
			b.WriteByte(' ')
			b.WriteString(sym)
		default:
			latexGroup(b, n.Left, lp)
			b.WriteByte(' ')
			b.WriteString(sym)
			b.WriteByte(' ')
			latexGroup(b, n.Right, rp)
		}
	default:
		panic("mathtext: unknown binary kind")
	}
}

func latexGroup(b *strings.Builder, n Node, parens bool) {
	if parens {
		b.WriteByte('(')
		latexNode(b, n)
		b.WriteByte(')')
		return
	}
	latexNode(b, n)
}

// endsMacro reports whether a markup spelling ends inside a control word,
// where a following letter would change the macro name.
func endsMacro(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
