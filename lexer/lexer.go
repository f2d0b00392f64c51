// Package lexer provides a simple lexical analyzer for integer arithmetic expressions.
package lexer

import (
	"strings"
	"unicode/utf8"
)

const (
	digits = "0123456789"
	blanks = " \t"
)

// eof is returned by next once the input is exhausted.
const eof rune = -1

type Lexer struct {
	input string

	curToken Token
	err      error

	pos int // Current position in input.
	col int // Current column in input, in runes.

	start    int // Position of the start of the current token.
	startCol int // Column where the current token started.
}

// New creates a new Lexer for the given input.
func New(input string) *Lexer {
	return &Lexer{
		input:    input,
		col:      1,
		startCol: 1,
	}
}

// Tokenize scans the whole input. On success the result ends with exactly
// one TokEOF token. The first invalid rune stops the scan with a *LexError.
func Tokenize(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		switch tok.Type {
		case TokError:
			return nil, l.err
		case TokEOF:
			return append(tokens, tok), nil
		}
		tokens = append(tokens, tok)
	}
}

// NextToken returns the next token. Once the input is exhausted or an error
// was found, it keeps returning TokEOF or TokError.
func (l *Lexer) NextToken() Token {
	if l.err != nil {
		return l.curToken
	}
	l.curToken = Token{Type: TokEOF, pos: l.col}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.curToken
		}
	}
}

// Err returns the error that stopped the lexer, if any.
func (l *Lexer) Err() error { return l.err }

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += n
	l.col++
	return r
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for r := l.peek(); r != eof && strings.ContainsRune(valid, r); r = l.peek() {
		l.next()
		accepted = true
	}
	return accepted
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		pos:   l.startCol,
	}
	l.ignore()
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) ignore() {
	l.start = l.pos
	l.startCol = l.col
}

func (l *Lexer) fail(err *LexError) stateFn {
	l.err = err
	l.curToken = Token{
		Type:  TokError,
		Value: err.Error(),
		pos:   err.Col,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
