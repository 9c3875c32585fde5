package mathtext

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenOperand is a symbol operand, recognized or not.
	tokenOperand
	// tokenNumber is a numeric literal, kept as verbatim text.
	tokenNumber
	// tokenOperator is an operator from the fixed operator table.
	tokenOperator
	// tokenFunc is a declared function name.
	tokenFunc
	// tokenDelim is a delimiter.
	tokenDelim
	// tokenEnd marks the end of the input. Exactly one is emitted, last.
	tokenEnd
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "none"
	case tokenOperand:
		return "operand"
	case tokenNumber:
		return "number"
	case tokenOperator:
		return "operator"
	case tokenFunc:
		return "func"
	case tokenDelim:
		return "delim"
	case tokenEnd:
		return "end"
	default:
		return "tokenKind(?)"
	}
}

// token is one lexical element of an expression. Tokens live only for the
// duration of a single parse.
type token struct {
	kind tokenKind
	// sym is the symbol for operand and func tokens.
	sym Symbol
	// op is the operator for operator tokens.
	op Op
	// delim is the delimiter for delim tokens.
	delim Delimiter
	// text is the verbatim literal for number tokens.
	text string
	// pos is the 1-based rune column where the token began.
	pos int
}

func (t token) String() string {
	at := "@" + strconv.Itoa(t.pos)
	switch t.kind {
	case tokenOperand, tokenFunc:
		return t.kind.String() + ":" + t.sym.ASCII + at
	case tokenNumber:
		return "number:" + t.text + at
	case tokenOperator:
		return "operator:" + t.op.Sym.ASCII + at
	case tokenDelim:
		return "delim:" + t.delim.String() + at
	default:
		return t.kind.String() + at
	}
}

// lexer scans an expression string into tokens. Unlike most lexers it can
// never fail: characters that match nothing accumulate in an unknown buffer
// which becomes an opaque operand token at the next boundary.
type lexer struct {
	src string
	// pos is the 1-based rune column of the next unconsumed character.
	pos  int
	toks []token
	// unknown buffers characters that matched nothing, and unkPos is the
	// column of its first character.
	unknown strings.Builder
	unkPos  int
	// funcs is the function-name symbols to recognize, in match order.
	funcs []Symbol
}

// tokenize scans src completely. The result always ends with exactly one
// end token. funcs is the set of function-name spellings to recognize.
func tokenize(src string, funcs []Symbol) []token {
	l := lexer{src: src, pos: 1, funcs: funcs}
scan:
	for l.src != "" {
		r, size := utf8.DecodeRuneInString(l.src)
		// Whitespace separates tokens and is never one itself.
		if unicode.IsSpace(r) {
			l.flush()
			l.take(size)
			continue
		}
		mid := l.unknown.Len() > 0
		for _, d := range delims {
			if rep, ok := d.Symbol().matchFront(l.src, mid); ok {
				l.flush()
				l.emit(token{kind: tokenDelim, delim: d, pos: l.pos})
				l.take(len(rep))
				continue scan
			}
		}
		for _, op := range l.operatorCandidates() {
			if op.Equal(OpFact) && strings.HasPrefix(l.src, "!=") {
				// The factorial must not eat the front of !=.
				continue
			}
			if rep, ok := op.Sym.matchFront(l.src, mid); ok {
				l.flush()
				l.emit(token{kind: tokenOperator, op: op, pos: l.pos})
				l.take(len(rep))
				continue scan
			}
		}
		for _, f := range l.funcs {
			if rep, ok := f.matchFront(l.src, mid); ok {
				l.flush()
				l.emit(token{kind: tokenFunc, sym: f, pos: l.pos})
				l.take(len(rep))
				continue scan
			}
		}
		for _, s := range operandSymbols {
			if rep, ok := s.matchFront(l.src, mid); ok {
				l.flush()
				l.emit(token{kind: tokenOperand, sym: s, pos: l.pos})
				l.take(len(rep))
				continue scan
			}
		}
		// A digit with no identifier in progress starts a numeric literal;
		// inside an identifier it is part of the name, like x2.
		if l.unknown.Len() == 0 {
			if text := scanNumber(l.src); text != "" {
				l.emit(token{kind: tokenNumber, text: text, pos: l.pos})
				l.take(len(text))
				continue
			}
		}
		// Nothing matched. Grow the unknown buffer by one rune.
		if l.unknown.Len() == 0 {
			l.unkPos = l.pos
		}
		l.unknown.WriteRune(r)
		l.take(size)
	}
	l.flush()
	l.emit(token{kind: tokenEnd, pos: l.pos})
	return l.toks
}

// operatorCandidates selects the operator set the context allows. Unary
// operators are offered only where an operand cannot just have ended: not
// after an operand or closing delimiter, and not while an unknown
// identifier is mid-scan, so a-b and e-b both read a binary minus while
// sin -b and a leading -b read a unary one.
func (l *lexer) operatorCandidates() []Op {
	if l.unknown.Len() > 0 {
		return binaryOps
	}
	if len(l.toks) == 0 {
		return unaryOps
	}
	switch last := l.toks[len(l.toks)-1]; last.kind {
	case tokenOperand, tokenNumber:
		return binaryOps
	case tokenOperator:
		// A postfix operator completes an operand, so 2! * 3 reads a
		// binary star.
		if last.op.Fix == Postfix {
			return binaryOps
		}
	case tokenDelim:
		if last.delim.Dir == DelimClose {
			return binaryOps
		}
	}
	return unaryOps
}

// take consumes n bytes of input and accounts for their runes.
func (l *lexer) take(n int) {
	l.pos += utf8.RuneCountInString(l.src[:n])
	l.src = l.src[n:]
}

func (l *lexer) emit(t token) {
	l.toks = append(l.toks, t)
}

// flush turns any pending unknown characters into an opaque operand token.
func (l *lexer) flush() {
	if l.unknown.Len() == 0 {
		return
	}
	l.emit(token{kind: tokenOperand, sym: Sym(l.unknown.String()), pos: l.unkPos})
	l.unknown.Reset()
}

// scanNumber returns the maximal decimal literal prefixing s, or "" if s
// does not start one. The literal is digits with an optional fraction and
// exponent; a dot or exponent marker is included only when the rest of a
// valid literal follows it, so 2.x scans as just 2.
func scanNumber(s string) string {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return ""
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return s[:i]
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
