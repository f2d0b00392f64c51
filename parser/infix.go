package parser

import (
	"go.creack.net/arith/ast"
	"go.creack.net/arith/lexer"
)

// ParseInfix parses the first complete infix expression of tokens:
//
//	expr   -> factor '+' expr | factor
//	factor -> term '*' factor | term
//	term   -> NUMBER | '(' expr ')' | VARIABLE
//
// Both operators are right associative, "1+2+3" is Sum(1, Sum(2, 3)).
// Tokens following the expression are not checked.
func ParseInfix(tokens []lexer.Token) (ast.Expr, error) {
	return parseExpression(newParser(tokens))
}

func parseExpression(p *parser) (ast.Expr, error) {
	left, err := parseTerm(p)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokSum {
		return left, nil
	}
	p.nextToken()
	right, err := parseExpression(p)
	if err != nil {
		return nil, err
	}
	return ast.BinaryExpr{
		Operator: ast.OpSum,
		Left:     left,
		Right:    right,
	}, nil
}

func parseTerm(p *parser) (ast.Expr, error) {
	left, err := parsePrimary(p)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokProduct {
		return left, nil
	}
	p.nextToken()
	right, err := parseTerm(p)
	if err != nil {
		return nil, err
	}
	return ast.BinaryExpr{
		Operator: ast.OpProduct,
		Left:     left,
		Right:    right,
	}, nil
}

func parsePrimary(p *parser) (ast.Expr, error) {
	tok, err := p.expect(lexer.TokNumber, lexer.TokVariable, lexer.TokParenLeft)
	if err != nil {
		return nil, err
	}
	p.nextToken()

	switch tok.Type {
	case lexer.TokNumber:
		return ast.NumberExpr{Value: tok.Number}, nil
	case lexer.TokVariable:
		return ast.VariableExpr{Name: tok.Name()}, nil
	default: // lexer.TokParenLeft.
		expr, err := parseExpression(p)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokParenRight); err != nil {
			return nil, err
		}
		p.nextToken()
		return expr, nil
	}
}
