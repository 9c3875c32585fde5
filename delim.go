package mathtext

// DelimDir is a delimiter's direction: opening or closing.
type DelimDir int8

const (
	// DelimOpen is (, [, {.
	DelimOpen DelimDir = iota
	// DelimClose is ), ], }.
	DelimClose
)

// DelimKind is a delimiter's shape. A closing delimiter matches an opening
// one only when their kinds agree.
type DelimKind int8

const (
	// Paren is ().
	Paren DelimKind = iota
	// Bracket is [].
	Bracket
	// Brace is {}.
	Brace
)

// Delimiter is one grouping character: a direction and a kind.
type Delimiter struct {
	Dir  DelimDir
	Kind DelimKind
}

// Symbol returns the catalog symbol spelling the delimiter.
func (d Delimiter) Symbol() Symbol {
	switch d {
	case Delimiter{DelimOpen, Paren}:
		return LeftParen
	case Delimiter{DelimClose, Paren}:
		return RightParen
	case Delimiter{DelimOpen, Bracket}:
		return LeftBracket
	case Delimiter{DelimClose, Bracket}:
		return RightBracket
	case Delimiter{DelimOpen, Brace}:
		return LeftBrace
	case Delimiter{DelimClose, Brace}:
		return RightBrace
	default:
		panic("mathtext: invalid delimiter")
	}
}

func (d Delimiter) String() string {
	return d.Symbol().ASCII
}

// delims is every delimiter, in tokenizer match order.
var delims = []Delimiter{
	{DelimOpen, Paren}, {DelimClose, Paren},
	{DelimOpen, Bracket}, {DelimClose, Bracket},
	{DelimOpen, Brace}, {DelimClose, Brace},
}
