package ast

import "strconv"

type NumberExpr struct {
	Value uint64
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string { return strconv.FormatUint(n.Value, 10) }

// VariableExpr references a single letter variable, resolved at evaluation.
type VariableExpr struct {
	Name rune
}

func (VariableExpr) expr() {}

func (v VariableExpr) Dump() string { return string(v.Name) }

type BinaryExpr struct {
	Operator Operator
	Left     Expr
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return dumpOperand(b.Left) + " " + b.Operator.String() + " " + dumpOperand(b.Right)
}

func dumpOperand(e Expr) string {
	if _, ok := e.(BinaryExpr); ok {
		return "(" + e.Dump() + ")"
	}
	return e.Dump()
}

// Num, Var, Sum and Product are shorthands to build trees by hand.

func Num(n uint64) Expr      { return NumberExpr{Value: n} }
func Var(name rune) Expr     { return VariableExpr{Name: name} }
func Sum(l, r Expr) Expr     { return BinaryExpr{Operator: OpSum, Left: l, Right: r} }
func Product(l, r Expr) Expr { return BinaryExpr{Operator: OpProduct, Left: l, Right: r} }
