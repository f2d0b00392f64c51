// Package parser builds expression trees from lexer tokens, in infix or
// postfix notation.
package parser

import (
	"fmt"
	"strings"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

// Parser turns a token sequence ending with lexer.TokEOF into an expression.
type Parser interface {
	Parse(tokens []lexer.Token) (ast.Expr, error)
}

type infixParser struct{}

func (infixParser) Parse(tokens []lexer.Token) (ast.Expr, error) { return ParseInfix(tokens) }
func (infixParser) String() string                               { return ModeInfix.String() }

type postfixParser struct{}

func (postfixParser) Parse(tokens []lexer.Token) (ast.Expr, error) { return ParsePostfix(tokens) }
func (postfixParser) String() string                               { return ModePostfix.String() }

// The two parsing strategies.
var (
	Infix   Parser = infixParser{}
	Postfix Parser = postfixParser{}
)

// Mode selects a parsing strategy.
type Mode int

const (
	ModeInfix Mode = iota
	ModePostfix
)

func (m Mode) String() string {
	switch m {
	case ModeInfix:
		return "infix"
	case ModePostfix:
		return "postfix"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String, case insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "infix":
		return ModeInfix, nil
	case "postfix":
		return ModePostfix, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// ForMode returns the strategy for the given mode. Unknown modes use infix.
func ForMode(m Mode) Parser {
	if m == ModePostfix {
		return Postfix
	}
	return Infix
}

// ParseString tokenizes text and parses it with the given strategy.
func ParseString(text string, strategy Parser) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return strategy.Parse(tokens)
}

// parser is a read-only cursor over a token sequence.
type parser struct {
	tokens []lexer.Token
	pos    int // Index of the token after curToken.

	prevToken lexer.Token
	curToken  lexer.Token
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{tokens: tokens}
	p.nextToken()
	return p
}

// nextToken advances the cursor. Past the end of the sequence, the current
// token is EOF.
func (p *parser) nextToken() lexer.Token {
	p.prevToken = p.curToken
	if p.pos >= len(p.tokens) {
		p.curToken = lexer.Symbol(lexer.TokEOF)
		return p.curToken
	}
	p.curToken = p.tokens[p.pos]
	p.pos++
	return p.curToken
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) (lexer.Token, error) {
	if p.curToken.Type.IsOneOf(kind...) {
		return p.curToken, nil
	}
	return p.curToken, &ParseError{Expected: kind, Got: p.curToken}
}

func operatorFor(tt lexer.TokenType) ast.Operator {
	switch tt {
	case lexer.TokSum:
		return ast.OpSum
	case lexer.TokProduct:
		return ast.OpProduct
	}
	panic(fmt.Errorf("no operator for token type %s", tt))
}
