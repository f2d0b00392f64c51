package lexer

import "strconv"

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the offending rune, or the whole digit run for an out of
	// range number.
	Text string
	// Kind is "number" when a digit run does not fit in 64 bits, empty for
	// an unexpected character.
	Kind string
	// Col is the 1-based column of the start of Text.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "number" {
		return "number " + err.Text + " at column " + strconv.Itoa(err.Col) + " is out of range"
	}
	return "unexpected character " + strconv.Quote(err.Text) + " at column " + strconv.Itoa(err.Col)
}

func (err *LexError) Pos() int {
	return err.Col
}

// InputError is an error with position information. Errors caused by invalid
// input text implement it.
type InputError interface {
	error
	// Pos returns the 1-based column of the token that caused the error.
	Pos() int
}

var _ InputError = (*LexError)(nil)
