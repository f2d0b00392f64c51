// Package evaluator computes the value of expression trees.
//
// Variables are resolved lazily: the table maps a name to the raw text of
// its definition, which is tokenized, parsed as infix and evaluated every
// time the name is referenced.
package evaluator

import (
	"fmt"
	"slices"

	"github.com/ahrtr/gocontainer/set"
	"lukechampine.com/uint128"

	"go.creack.net/arith/ast"
	"go.creack.net/arith/parser"
)

// Table gives read-only access to variable definitions.
type Table interface {
	Lookup(name rune) (text string, ok bool)
}

// Map is a Table backed by a map.
type Map map[rune]string

func (m Map) Lookup(name rune) (string, bool) {
	text, ok := m[name]
	return text, ok
}

type evaluator struct {
	vars Table

	// resolving holds the variables being resolved on the current path,
	// chain has them in order.
	resolving set.Interface
	chain     []rune
}

// Evaluate computes the value of expr. A nil table has no variables.
//
// Sums and products which do not fit in 64 bits fail with an *OverflowError.
// A variable whose definition refers back to itself, directly or not, fails
// with a *CycleError.
func Evaluate(expr ast.Expr, vars Table) (uint64, error) {
	if vars == nil {
		vars = Map(nil)
	}
	e := &evaluator{
		vars:      vars,
		resolving: set.New(),
	}
	return e.evaluate(expr)
}

// EvaluateString tokenizes text, parses it with strategy and evaluates it.
func EvaluateString(text string, strategy parser.Parser, vars Table) (uint64, error) {
	expr, err := parser.ParseString(text, strategy)
	if err != nil {
		return 0, err
	}
	return Evaluate(expr, vars)
}

func (e *evaluator) evaluate(expr ast.Expr) (uint64, error) {
	switch expr := expr.(type) {
	case ast.NumberExpr:
		return expr.Value, nil
	case ast.VariableExpr:
		return e.evaluateVariable(expr.Name)
	case ast.BinaryExpr:
		return e.evaluateBinary(expr)
	default:
		panic(fmt.Errorf("unsupported expression type %T", expr))
	}
}

func (e *evaluator) evaluateVariable(name rune) (uint64, error) {
	if e.resolving.Contains(name) {
		return 0, &CycleError{Chain: append(slices.Clone(e.chain), name)}
	}
	text, ok := e.vars.Lookup(name)
	if !ok {
		return 0, &VariableNotFoundError{Name: name}
	}
	// Definitions are always written in infix, whatever the input mode.
	expr, err := parser.ParseString(text, parser.Infix)
	if err != nil {
		return 0, fmt.Errorf("variable %c: %w", name, err)
	}

	e.resolving.Add(name)
	e.chain = append(e.chain, name)
	defer func() {
		e.resolving.Remove(name)
		e.chain = e.chain[:len(e.chain)-1]
	}()

	return e.evaluate(expr)
}

func (e *evaluator) evaluateBinary(b ast.BinaryExpr) (uint64, error) {
	left, err := e.evaluate(b.Left)
	if err != nil {
		return 0, err
	}
	right, err := e.evaluate(b.Right)
	if err != nil {
		return 0, err
	}

	var result uint128.Uint128
	switch b.Operator {
	case ast.OpSum:
		result = uint128.From64(left).Add64(right)
	case ast.OpProduct:
		result = uint128.From64(left).Mul64(right)
	default:
		panic(fmt.Errorf("unsupported operator %d", int(b.Operator)))
	}
	if result.Hi != 0 {
		return 0, &OverflowError{Operator: b.Operator, Left: left, Right: right}
	}
	return result.Lo, nil
}
