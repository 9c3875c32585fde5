package mathtext

import (
	"strings"
	"unicode"
)

// Symbol is a semantic notation unit with one preferred spelling per output
// format and any number of additional spellings accepted on input. Symbols
// are immutable once created; two symbols are the same symbol iff their
// preferred spellings are equal.
type Symbol struct {
	// Unicode is the preferred Unicode text spelling, e.g. "μ" or "≠".
	Unicode string
	// ASCII is the preferred plaintext spelling, e.g. "mu" or "!=".
	ASCII string
	// Latex is the preferred markup spelling, e.g. "\mu" or "\neq".
	Latex string
	// Alts is any other spellings recognized on input, in match order.
	Alts []string
}

// Sym creates a symbol whose spelling is the same in every format. This is
// the usual way unrecognized input runs become operands.
func Sym(s string) Symbol {
	return Symbol{Unicode: s, ASCII: s, Latex: s}
}

// NewSymbol creates a symbol from its three preferred spellings and any
// alternates.
func NewSymbol(unicode, ascii, latex string, alts ...string) Symbol {
	return Symbol{Unicode: unicode, ASCII: ascii, Latex: latex, Alts: alts}
}

// Reprs returns every spelling of the symbol in match order: Unicode, ASCII,
// Latex, then alternates.
func (s Symbol) Reprs() []string {
	r := make([]string, 0, 3+len(s.Alts))
	r = append(r, s.Unicode, s.ASCII, s.Latex)
	return append(r, s.Alts...)
}

// Equal reports whether s and t are the same symbol, i.e. their preferred
// spellings agree. Alternate input spellings do not contribute to identity.
func (s Symbol) Equal(t Symbol) bool {
	return s.Unicode == t.Unicode && s.ASCII == t.ASCII && s.Latex == t.Latex
}

// matchFront returns the first spelling of s that prefixes input, in Reprs
// order. When mid is true an identifier is being scanned, and spellings
// made only of letters do not match, so that amu stays one word while a-b
// still splits on the minus. The empty spelling never matches.
func (s Symbol) matchFront(input string, mid bool) (string, bool) {
	for _, r := range s.Reprs() {
		if r == "" || !strings.HasPrefix(input, r) {
			continue
		}
		if mid && allLetters(r) {
			continue
		}
		return r, true
	}
	return "", false
}

func allLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// longest returns the byte length of the longest spelling of s. The catalog
// orders ambiguous groups by this so that e.g. sinh outranks sin.
func (s Symbol) longest() int {
	n := 0
	for _, r := range s.Reprs() {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}

func (s Symbol) String() string {
	return s.ASCII
}
