package mathtext

// Formatter is a single output text format. Implementations must be pure:
// identical trees format to identical text, with no state carried between
// calls.
type Formatter interface {
	// Format typesets a tree. It is total over well-formed trees.
	Format(n Node) string
}

// Format selects one of the built-in output formats.
type Format int

const (
	// Latex is LaTeX math-mode markup.
	Latex Format = iota
	// Unicode is plain text drawing on the Unicode math symbols.
	Unicode
)

func (f Format) String() string {
	switch f {
	case Latex:
		return "latex"
	case Unicode:
		return "unicode"
	default:
		return "invalid"
	}
}

// Render typesets a tree in the given format.
func Render(n Node, f Format) string {
	switch f {
	case Latex:
		return LatexFormatter{}.Format(n)
	case Unicode:
		return UnicodeFormatter{}.Format(n)
	default:
		panic("mathtext: invalid format")
	}
}

// ToLatex parses plaintext math and typesets it as LaTeX markup. The second
// result is false if the input does not parse; callers who need the reason
// use Parse instead.
func ToLatex(src string, opts ...ParseOption) (string, bool) {
	n, err := Parse(src, opts...)
	if err != nil {
		return "", false
	}
	return Render(n, Latex), true
}

// ToUnicode parses plaintext math and typesets it as Unicode text. The
// second result is false if the input does not parse.
func ToUnicode(src string, opts ...ParseOption) (string, bool) {
	n, err := Parse(src, opts...)
	if err != nil {
		return "", false
	}
	return Render(n, Unicode), true
}
