package mathtext

import (
	"github.com/golang/glog"
)

// Parsing runs in two stages. Stage one reorders the token stream into
// postfix with the shunting-yard algorithm, so that precedence, fixity, and
// delimiter matching are settled before any tree exists. Stage two folds
// the postfix stream over an expression stack into a tree, packing
// comma-chained subtrees into function argument lists and joining whatever
// expressions remain by juxtaposition.
//
// Each call allocates its own stacks and shares nothing; the catalog and
// operator tables it reads are immutable.

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(p *parsectx)
}

// parsectx holds the per-call parsing configuration.
type parsectx struct {
	// funcs is the function-name symbols the tokenizer recognizes.
	funcs []Symbol
	// own reports whether funcs is a private copy that options may extend.
	own bool
}

type (
	funcopt    struct{ sym Symbol }
	nofuncsopt struct{}
)

// ParseFunc declares an extra function name to recognize while parsing, in
// addition to the catalog's special functions. The name typesets as a roman
// macro in markup, the way catalog functions do.
func ParseFunc(name string) ParseOption {
	return &funcopt{sym: NewSymbol(name, name, `\`+name)}
}

func (o *funcopt) parseOption(p *parsectx) {
	if !p.own {
		p.funcs = append([]Symbol{}, p.funcs...)
		p.own = true
	}
	p.funcs = prioritize(append(p.funcs, o.sym))
}

// DisableDefaultFuncs disables recognition of the catalog's function names
// during parsing. Their spellings become plain operands instead.
func DisableDefaultFuncs() ParseOption {
	return nofuncsopt{}
}

func (nofuncsopt) parseOption(p *parsectx) {
	p.funcs = nil
	p.own = true
}

// Parse parses plaintext math into a tree. The given options are applied in
// order. All failures are of type ParseError; on failure the tree is nil.
func Parse(src string, opts ...ParseOption) (Node, error) {
	p := parsectx{funcs: Functions}
	for _, opt := range opts {
		opt.parseOption(&p)
	}
	toks := tokenize(src, p.funcs)
	if glog.V(2) {
		glog.Infof("mathtext: tokens %v", toks)
	}
	post, err := toPostfix(toks)
	if err != nil {
		return nil, err
	}
	if glog.V(2) {
		glog.Infof("mathtext: postfix %v", post)
	}
	return toTree(post)
}

// binds reports whether a stack operator binds its operand before an
// incoming operator to its right may have it. A stack operator that cannot
// extend rightward holds nothing open and always binds first, no matter the
// incoming precedence: 2! * 3 puts ! before *. An incoming operator that
// cannot extend leftward claims nothing on the stack: in 2 + -3 the unary
// minus never pops the +. Otherwise lower precedence values bind first, and
// the strict comparison with each operator's asymmetric pair makes equal
// precedence associate left to right.
func binds(top, incoming Op) bool {
	if !top.BindsRight() {
		return true
	}
	if !incoming.BindsLeft() {
		return false
	}
	return top.Right < incoming.Left
}

// toPostfix reorders tokens into postfix. It fails only with *BracketError:
// a closing delimiter of the wrong kind or with no opener, or an opener
// still unmatched at the end of the input.
func toPostfix(toks []token) ([]token, error) {
	var ops, out []token
scan:
	for _, t := range toks {
		if glog.V(3) {
			glog.Infof("mathtext: token %v stack %v out %v", t, ops, out)
		}
		switch t.kind {
		case tokenOperand, tokenNumber:
			out = append(out, t)
		case tokenOperator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == tokenDelim {
					// Nothing binds past an opening delimiter: at the + in
					// 2 * (3 + 4) we bind only the 3.
					break
				}
				if top.kind == tokenFunc {
					// Functions never let an operator bind through them
					// without explicit grouping: sin 2 + x is (sin 2) + x.
					out = append(out, top)
					ops = ops[:len(ops)-1]
					continue
				}
				if !binds(top.op, t.op) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		case tokenFunc:
			ops = append(ops, t)
		case tokenDelim:
			if t.delim.Dir == DelimOpen {
				ops = append(ops, t)
				continue
			}
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: t.pos, Right: t.delim.String()}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind != tokenDelim {
					out = append(out, top)
					continue
				}
				if top.delim.Kind != t.delim.Kind {
					// Something like (1 + [2)] happened.
					return nil, &BracketError{Col: t.pos, Left: top.delim.String(), Right: t.delim.String()}
				}
				// The opener did its duty. If a function sits directly
				// beneath it, this group was its argument list.
				if len(ops) > 0 && ops[len(ops)-1].kind == tokenFunc {
					out = append(out, ops[len(ops)-1])
					ops = ops[:len(ops)-1]
				}
				break
			}
		case tokenEnd:
			break scan
		default:
			panic("mathtext: unknown token " + t.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenDelim {
			return nil, &BracketError{Col: top.pos, Left: top.delim.String()}
		}
		out = append(out, top)
	}
	return out, nil
}

// toTree folds a postfix token sequence into a tree.
func toTree(post []token) (Node, error) {
	var stack []Node
	pop := func() Node {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}
	for _, t := range post {
		switch t.kind {
		case tokenOperand:
			stack = append(stack, t.sym)
		case tokenNumber:
			stack = append(stack, Number{Text: t.text})
		case tokenOperator:
			if t.op.Unary() {
				if len(stack) < 1 {
					return nil, &OperandError{Col: t.pos, Sym: t.op.Sym.ASCII}
				}
				stack = append(stack, Unary{Op: t.op, X: pop()})
				continue
			}
			if len(stack) < 2 {
				return nil, &OperandError{Col: t.pos, Sym: t.op.Sym.ASCII}
			}
			r := pop()
			l := pop()
			stack = append(stack, binaryNode(t.op, l, r))
		case tokenFunc:
			if len(stack) < 1 {
				return nil, &OperandError{Col: t.pos, Sym: t.sym.ASCII}
			}
			stack = append(stack, Call{Name: t.sym, Args: commaSepList(pop())})
		case tokenDelim:
			// An opener that stage one failed to match.
			return nil, &BracketError{Col: t.pos, Left: t.delim.String()}
		default:
			panic("mathtext: unknown token " + t.String())
		}
	}
	if len(stack) == 0 {
		return nil, &EmptyExprError{}
	}
	// Whatever expressions remain are juxtaposed, like the 2 and a of 2a:
	// fold them in input order into implicit multiplications.
	n := stack[0]
	for _, m := range stack[1:] {
		n = Binary{Op: BinaryOp{Kind: BinConcat}, Left: n, Right: m}
	}
	return n, nil
}

// binaryNode builds the tree node for a binary operator, special-casing the
// operators whose typeset form is not their symbol.
func binaryNode(op Op, l, r Node) Node {
	switch {
	case op.Equal(OpPow):
		return Binary{Op: BinaryOp{Kind: BinPower}, Left: l, Right: r}
	case op.Equal(OpDiv):
		return Binary{Op: BinaryOp{Kind: BinFrac}, Left: l, Right: r}
	default:
		return Binary{Op: BinaryOp{Kind: BinGeneric, Op: op}, Left: l, Right: r}
	}
}

// commaSepList unpacks a comma-chained subtree into a flat argument list.
// The comma parses as an ordinary weak binary operator purely so precedence
// handles grouping inside argument lists; the chain becomes a list only
// here, at the point a function consumes it.
func commaSepList(n Node) []Node {
	b, ok := n.(Binary)
	if !ok || b.Op.Kind != BinGeneric || !b.Op.Op.Sym.Equal(Comma) {
		return []Node{n}
	}
	return append(commaSepList(b.Left), commaSepList(b.Right)...)
}
