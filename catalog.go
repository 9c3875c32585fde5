package mathtext

import (
	"sort"
	"strings"
)

// This file is the symbol catalog: the read-only tables of every notation
// unit the tokenizer recognizes. All tables are built once at package init
// and never mutated, so they are safe for any number of concurrent readers.
//
// Where several symbols share a spelling, the one earlier in the match list
// wins. Match lists are ordered longest-spelling-first (ties by ASCII
// spelling) so that sinh outranks sin and cos^2 outranks cos; Lookup and the
// tokenizer both follow this order, and the ordering is a tested contract
// rather than an accident of map iteration.

// Common symbols with idiosyncratic spellings. These cover the usual
// plaintext abbreviations rather than aiming for completeness.
var (
	// LE is ≤.
	LE = NewSymbol("≤", "<=", `\le`)
	// GE is ≥.
	GE = NewSymbol("≥", ">=", `\ge`)
	// NE is ≠.
	NE = NewSymbol("≠", "!=", `\neq`, "=/=", "/=")
	// Plus is the + symbol, shared by unary and binary plus.
	Plus = NewSymbol("+", "+", "+", "plus")
	// Minus is the - symbol, shared by unary and binary minus.
	Minus = NewSymbol("-", "-", "-", "−", "minus")
	// PlusMinus is ±.
	PlusMinus = NewSymbol("±", "+/-", `\pm`, "+-", "pm")
	// Times is the multiplication dot.
	Times = NewSymbol("·", "*", `\cdot`, `\times`, "×", "times")
	// Divide is the division slash. Rendering prefers fractions.
	Divide = NewSymbol("/", "/", "/", "÷")
	// Caret is the exponentiation symbol. Exponentiation is special-cased by
	// rendering, so the markup spelling is for the rare literal caret.
	Caret = NewSymbol("^", "^", `\^{}`)
	// Bang is the factorial symbol.
	Bang = Sym("!")
	// Infinity is ∞. The plaintext spelling collides with the infimum
	// function, which outranks it on input; oo always reads as ∞.
	Infinity = NewSymbol("∞", "inf", `\infty`, "oo")
	// Element is ∈.
	Element = NewSymbol("∈", "in", `\in`, "elem")
	// Tilde is ∼, "distributed as".
	Tilde = NewSymbol("∼", "~", `\sim`)
	// Approx is ≅.
	Approx = NewSymbol("≅", "~=", `\approx`)
	// Degree is °.
	Degree = NewSymbol("°", "deg", `^{\circ}`, "degrees")
	// Comma separates function arguments.
	Comma = Sym(",")
)

// Delimiter spellings, indexed by kind.
var (
	LeftParen    = NewSymbol("(", "(", `\left(`)
	RightParen   = NewSymbol(")", ")", `\right)`)
	LeftBracket  = NewSymbol("[", "[", `\left[`)
	RightBracket = NewSymbol("]", "]", `\right]`)
	LeftBrace    = NewSymbol("{", "{", `\left\{`)
	RightBrace   = NewSymbol("}", "}", `\right\}`)
)

// Misc lists the relation and arithmetic symbols the tokenizer recognizes as
// operands, in match order.
var Misc = prioritize([]Symbol{
	LE, GE, NE, PlusMinus, Infinity, Element, Tilde, Approx, Times, Degree,
})

var greekNames = [...]struct {
	name         string
	lower, upper string
}{
	{"alpha", "α", "Α"}, {"beta", "β", "Β"}, {"gamma", "γ", "Γ"},
	{"delta", "δ", "Δ"}, {"epsilon", "ε", "Ε"}, {"zeta", "ζ", "Ζ"},
	{"eta", "η", "Η"}, {"theta", "θ", "Θ"}, {"iota", "ι", "Ι"},
	{"kappa", "κ", "Κ"}, {"lambda", "λ", "Λ"}, {"mu", "μ", "Μ"},
	{"nu", "ν", "Ν"}, {"xi", "ξ", "Ξ"}, {"omicron", "ο", "Ο"},
	{"pi", "π", "Π"}, {"rho", "ρ", "Ρ"}, {"sigma", "σ", "Σ"},
	{"tau", "τ", "Τ"}, {"upsilon", "υ", "Υ"}, {"phi", "φ", "Φ"},
	{"chi", "χ", "Χ"}, {"psi", "ψ", "Ψ"}, {"omega", "ω", "Ω"},
}

// Greek holds every Greek letter in both cases. The plaintext spelling is
// the letter's name, capitalized for the uppercase letter: pi is π and Pi
// is Π.
var Greek = greekSymbols()

func greekSymbols() []Symbol {
	syms := make([]Symbol, 0, 2*len(greekNames))
	for _, l := range greekNames {
		title := strings.ToUpper(l.name[:1]) + l.name[1:]
		syms = append(syms,
			NewSymbol(l.lower, l.name, `\`+l.name),
			NewSymbol(l.upper, title, `\`+title),
		)
	}
	return prioritize(syms)
}

// Latin holds the plain single-letter symbols a-z and A-Z. The tokenizer
// does not match these eagerly — bare letters flow through the unknown
// buffer so multi-letter identifiers stay whole — but the table is part of
// the catalog for callers building trees directly.
var Latin = latinSymbols()

func latinSymbols() []Symbol {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	syms := make([]Symbol, len(alphabet))
	for i := range syms {
		syms[i] = Sym(alphabet[i : i+1])
	}
	return syms
}

// funcNames is every special function name. These share a shape: the markup
// spelling is a roman-type macro, and squared and inverse forms like cos^2
// and cos^-1 are single symbols of their own.
var funcNames = [...]string{
	"exp", "log", "ln", "lg",
	"sin", "cos", "tan", "sec", "csc", "cot",
	"arcsin", "arccos", "arctan",
	"sinh", "cosh", "tanh", "coth",
	"max", "min",
	"Pr",
	"gcd",
	"det", "dim", "ker",
	"inf", "sup",
}

// Functions holds the special-function symbols, including the squared and
// inverse spelling of each, in match order.
var Functions = funcSymbols()

func funcSymbols() []Symbol {
	syms := make([]Symbol, 0, 3*len(funcNames))
	for _, name := range funcNames {
		syms = append(syms,
			NewSymbol(name, name, `\`+name),
			NewSymbol(name+"²", name+"^2", `\`+name+"^2"),
			NewSymbol(name+"⁻¹", name+"^-1", `\`+name+"^{-1}"),
		)
	}
	return prioritize(syms)
}

// operandSymbols is the list the tokenizer consults after delimiters,
// operators, and function names: Greek letters and the miscellaneous
// symbols, in one priority order.
var operandSymbols = prioritize(append(append([]Symbol{}, Greek...), Misc...))

// prioritize sorts symbols into deterministic match order: longest spelling
// first, ties broken by plaintext spelling. The sort is on a copy; catalog
// groups never change after init.
func prioritize(syms []Symbol) []Symbol {
	v := append([]Symbol{}, syms...)
	sort.SliceStable(v, func(i, j int) bool {
		li, lj := v[i].longest(), v[j].longest()
		if li != lj {
			return li > lj
		}
		return v[i].ASCII < v[j].ASCII
	})
	return v
}

// Lookup finds the catalog symbol with the given spelling. When several
// symbols accept the spelling, the match order decides: function names win
// over letters and relation symbols, and longer-spelled symbols win within
// each group. The second result is false if no symbol accepts the spelling.
func Lookup(spelling string) (Symbol, bool) {
	for _, group := range [][]Symbol{Functions, operandSymbols, Latin} {
		for _, s := range group {
			for _, r := range s.Reprs() {
				if r == spelling {
					return s, true
				}
			}
		}
	}
	return Symbol{}, false
}
