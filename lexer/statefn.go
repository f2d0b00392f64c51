package lexer

import "strconv"

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokSum,
	'*': TokProduct,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case r == ' ' || r == '\t':
		l.acceptRun(blanks)
		l.ignore()
		return lexText
	case r >= '0' && r <= '9':
		return lexNumber
	case r >= 'a' && r <= 'z':
		// Identifiers are a single letter, "ab" is two variables.
		l.next()
		return l.emit(TokVariable)
	default:
		if tok, ok := singles[r]; ok {
			l.next()
			return l.emit(tok)
		}
		l.next()
		return l.fail(&LexError{Text: string(r), Col: l.startCol})
	}
}

func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digits)
	tok := l.thisToken(TokNumber)
	n, err := strconv.ParseUint(tok.Value, 10, 64)
	if err != nil {
		// Only digits were accepted, so this is a range error.
		return l.fail(&LexError{Text: tok.Value, Kind: "number", Col: tok.pos})
	}
	tok.Number = n
	return l.emitToken(tok)
}
