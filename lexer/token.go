package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokError TokenType = iota
	TokEOF

	// Literals.
	TokNumber
	TokVariable

	// Operators.
	TokSum
	TokProduct

	// Delimiters.
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	if s, ok := tokenTypeStrings[tt]; ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokError: "ERROR",
	TokEOF:   "EOF",

	TokNumber:   "NUMBER",
	TokVariable: "VARIABLE",

	TokSum:     "SUM",
	TokProduct: "PRODUCT",

	TokParenLeft:  "PAREN_LEFT",
	TokParenRight: "PAREN_RIGHT",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of an expression.
type Token struct {
	Type  TokenType
	Value string // Source text of the token. Empty for EOF.

	// Number holds the parsed value of a TokNumber.
	Number uint64

	pos int // Column of the first rune, 1-based.
}

// Pos returns the 1-based column where the token starts.
func (t Token) Pos() int { return t.pos }

// Name returns the variable name of a TokVariable, 0 otherwise.
func (t Token) Name() rune {
	if t.Type != TokVariable || t.Value == "" {
		return 0
	}
	return rune(t.Value[0])
}

// Number creates a number token.
func Number(n uint64) Token {
	return Token{Type: TokNumber, Value: fmt.Sprint(n), Number: n}
}

// Variable creates a variable token.
func Variable(name rune) Token {
	return Token{Type: TokVariable, Value: string(name)}
}

// Symbol creates an operator, parenthesis or EOF token.
func Symbol(tt TokenType) Token {
	return Token{Type: tt, Value: symbolValues[tt]}
}

var symbolValues = map[TokenType]string{
	TokSum:        "+",
	TokProduct:    "*",
	TokParenLeft:  "(",
	TokParenRight: ")",
}

func (t Token) String() string {
	switch t.Type {
	case TokEOF:
		return "EOF"
	case TokError:
		return fmt.Sprintf("ERROR [%d]: %s", t.pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.pos, t.Value)
}
