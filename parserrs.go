package mathtext

import "strconv"

// ParseError is an error produced by parsing invalid input. Every such
// error carries position information. Rendering never fails; the three
// implementations below are the only errors Parse can return.
type ParseError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the
	// error, or 0 when the error has no single culprit.
	Pos() int
}

// BracketError is a mismatched-parentheses error: a closing delimiter whose
// kind disagrees with its opener, a closing delimiter with no opener, or an
// opener never closed. It implements ParseError.
type BracketError struct {
	// Col is the position of the offending delimiter.
	Col int
	// Left is the opening delimiter's spelling, if any.
	Left string
	// Right is the closing delimiter's spelling, if any.
	Right string
}

func (err *BracketError) Error() string {
	switch {
	case err.Left == "":
		return errpos(err.Col, "mismatched parentheses: "+err.Right+" with no opening delimiter")
	case err.Right == "":
		return errpos(err.Col, "mismatched parentheses: "+err.Left+" is never closed")
	default:
		return errpos(err.Col, "mismatched parentheses: "+err.Left+" closed by "+err.Right)
	}
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError is a missing-operands error: an operator or function reduced
// with fewer operands than it needs. It implements ParseError.
type OperandError struct {
	// Col is the position of the operator or function.
	Col int
	// Sym is the operator or function spelling.
	Sym string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "missing operands for "+strconv.Quote(err.Sym))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// EmptyExprError is the error for input that reduces to no expression at
// all: empty or all-whitespace text. It implements ParseError.
type EmptyExprError struct{}

func (err *EmptyExprError) Error() string {
	return "empty expression"
}

func (err *EmptyExprError) Pos() int {
	return 0
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ ParseError = (*BracketError)(nil)
	_ ParseError = (*OperandError)(nil)
	_ ParseError = (*EmptyExprError)(nil)
)
