package parser

import (
	"errors"
	"strconv"
	"strings"

	"go.creack.net/arith/lexer"
)

var (
	// ErrPostfixParen is the cause of a ParseError for a parenthesis in postfix input.
	ErrPostfixParen = errors.New("parentheses are not allowed in postfix notation")

	// ErrNoTokens is returned when parsing an empty token sequence, which
	// can't come from the lexer.
	ErrNoTokens = errors.New("empty token sequence")
)

// ParseError indicates a token that does not fit the grammar, including a
// premature end of input or a missing closing parenthesis.
type ParseError struct {
	// Expected lists the token types which would have been accepted. It may
	// be empty when Err describes the problem.
	Expected []lexer.TokenType
	// Got is the offending token.
	Got lexer.Token
	// Err is an optional cause.
	Err error
}

func (err *ParseError) Error() string {
	var b strings.Builder
	switch {
	case err.Err != nil:
		b.WriteString(err.Err.Error())
		b.WriteString(", got ")
	case len(err.Expected) > 0:
		b.WriteString("expected ")
		for i, tt := range err.Expected {
			if i > 0 {
				b.WriteString(" or ")
			}
			b.WriteString(describeType(tt))
		}
		b.WriteString(" but got ")
	default:
		b.WriteString("unexpected ")
	}
	b.WriteString(describeToken(err.Got))
	if pos := err.Got.Pos(); pos > 0 {
		b.WriteString(" at column ")
		b.WriteString(strconv.Itoa(pos))
	}
	return b.String()
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

func (err *ParseError) Pos() int {
	return err.Got.Pos()
}

var _ lexer.InputError = (*ParseError)(nil)

func describeType(tt lexer.TokenType) string {
	switch tt {
	case lexer.TokEOF:
		return "end of input"
	case lexer.TokNumber:
		return "number"
	case lexer.TokVariable:
		return "variable"
	}
	return strconv.Quote(lexer.Symbol(tt).Value)
}

func describeToken(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TokEOF:
		return "end of input"
	case lexer.TokNumber:
		return "number " + tok.Value
	case lexer.TokVariable:
		return "variable " + tok.Value
	}
	return strconv.Quote(tok.Value)
}
