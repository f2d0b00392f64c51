package ast

import "strings"

// Structure following the expression grammar:
//
//	expr   -> factor '+' expr | factor
//	factor -> term '*' factor | term
//	term   -> NUMBER | '(' expr ')' | VARIABLE

// Operator is a binary operator.
type Operator int

const (
	OpSum Operator = iota + 1
	OpProduct
)

func (op Operator) String() string {
	switch op {
	case OpSum:
		return "+"
	case OpProduct:
		return "*"
	}
	return "?"
}

// Expr is a node of the expression tree. The set of implementations is closed:
// NumberExpr, VariableExpr and BinaryExpr.
type Expr interface {
	// Dump returns the infix form of the expression, with every nested binary
	// operation parenthesized. Parsing it back yields an equal tree.
	Dump() string
	expr()
}

// DumpPostfix returns the space separated postfix form of the expression.
func DumpPostfix(e Expr) string {
	var b strings.Builder
	dumpPostfix(&b, e)
	return b.String()
}

func dumpPostfix(b *strings.Builder, e Expr) {
	switch e := e.(type) {
	case BinaryExpr:
		dumpPostfix(b, e.Left)
		b.WriteByte(' ')
		dumpPostfix(b, e.Right)
		b.WriteByte(' ')
		b.WriteString(e.Operator.String())
	case nil:
	default:
		b.WriteString(e.Dump())
	}
}

// Equal reports whether two trees have the same shape and leaves.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case NumberExpr:
		bn, ok := b.(NumberExpr)
		return ok && a.Value == bn.Value
	case VariableExpr:
		bv, ok := b.(VariableExpr)
		return ok && a.Name == bv.Name
	case BinaryExpr:
		bb, ok := b.(BinaryExpr)
		return ok && a.Operator == bb.Operator && Equal(a.Left, bb.Left) && Equal(a.Right, bb.Right)
	case nil:
		return b == nil
	}
	return false
}
