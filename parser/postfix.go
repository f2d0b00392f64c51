package parser

import (
	"github.com/edwingeng/deque"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

var postfixOperands = []lexer.TokenType{lexer.TokNumber, lexer.TokVariable, lexer.TokSum, lexer.TokProduct}

// ParsePostfix parses tokens in postfix notation. The sequence must end with
// lexer.TokEOF. It is reduced from the back: an operator pops its right
// operand first, then its left one. Parentheses are rejected. Tokens left
// over at the front once the last operator is reduced are ignored.
//
// The caller's slice is not modified.
func ParsePostfix(tokens []lexer.Token) (ast.Expr, error) {
	queue := deque.NewDeque()
	for _, tok := range tokens {
		queue.PushBack(tok)
	}
	if queue.Empty() {
		return nil, ErrNoTokens
	}
	if last := queue.PopBack().(lexer.Token); last.Type != lexer.TokEOF {
		return nil, &ParseError{Expected: []lexer.TokenType{lexer.TokEOF}, Got: last}
	}
	return reducePostfix(queue)
}

func reducePostfix(queue deque.Deque) (ast.Expr, error) {
	if queue.Empty() {
		return nil, &ParseError{Expected: postfixOperands, Got: lexer.Symbol(lexer.TokEOF)}
	}
	tok := queue.PopBack().(lexer.Token)

	switch tok.Type {
	case lexer.TokSum, lexer.TokProduct:
		// Order matters: the right operand is the closest to the operator.
		right, err := reducePostfix(queue)
		if err != nil {
			return nil, err
		}
		left, err := reducePostfix(queue)
		if err != nil {
			return nil, err
		}
		return ast.BinaryExpr{
			Operator: operatorFor(tok.Type),
			Left:     left,
			Right:    right,
		}, nil
	case lexer.TokNumber:
		return ast.NumberExpr{Value: tok.Number}, nil
	case lexer.TokVariable:
		return ast.VariableExpr{Name: tok.Name()}, nil
	case lexer.TokParenLeft, lexer.TokParenRight:
		return nil, &ParseError{Got: tok, Err: ErrPostfixParen}
	default:
		return nil, &ParseError{Expected: postfixOperands, Got: tok}
	}
}
