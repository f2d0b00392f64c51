package evaluator

import (
	"fmt"
	"strings"

	"go.creack.net/arith/ast"
)

// VariableNotFoundError is returned when an expression references a
// variable missing from the table.
type VariableNotFoundError struct {
	Name rune
}

func (err *VariableNotFoundError) Error() string {
	return fmt.Sprintf("variable %c not found", err.Name)
}

// CycleError is returned when resolving a variable requires its own value.
type CycleError struct {
	// Chain is the resolution path, ending with the name that closed the cycle.
	Chain []rune
}

func (err *CycleError) Error() string {
	names := make([]string, len(err.Chain))
	for i, name := range err.Chain {
		names[i] = string(name)
	}
	return "cyclic variable definition: " + strings.Join(names, " -> ")
}

// OverflowError is returned when a sum or product does not fit in 64 bits.
type OverflowError struct {
	Operator    ast.Operator
	Left, Right uint64
}

func (err *OverflowError) Error() string {
	return fmt.Sprintf("overflow: %d %s %d does not fit in 64 bits", err.Left, err.Operator, err.Right)
}
