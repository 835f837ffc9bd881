package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNonIntegerDivision is returned when a division would produce a
	// fractional result or divide by zero.
	ErrNonIntegerDivision = errors.New("division does not produce an integer")

	// ErrUnknownOperator is returned when parsing an unrecognized operator symbol.
	ErrUnknownOperator = errors.New("unknown operator")
)

// Operator is one of the four arithmetic operations applied between cards.
type Operator int

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

// Operators returns the four operators in a fresh slice.
func Operators() []Operator {
	return []Operator{Add, Subtract, Multiply, Divide}
}

// Apply computes left op right. Division is integer-exact: a remainder or a
// zero divisor returns ErrNonIntegerDivision.
func (o Operator) Apply(left, right int) (int, error) {
	switch o {
	case Add:
		return left + right, nil
	case Subtract:
		return left - right, nil
	case Multiply:
		return left * right, nil
	case Divide:
		if right == 0 || left%right != 0 {
			return 0, fmt.Errorf("%d / %d: %w", left, right, ErrNonIntegerDivision)
		}
		return left / right, nil
	default:
		panic(fmt.Sprintf("invalid operator %d", int(o)))
	}
}

// Symbol returns the single-character display form of the operator.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		panic(fmt.Sprintf("invalid operator %d", int(o)))
	}
}

func (o Operator) String() string {
	return o.Symbol()
}

// ParseOperator converts a display symbol back into an Operator.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return Add, nil
	case "-":
		return Subtract, nil
	case "*":
		return Multiply, nil
	case "/":
		return Divide, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownOperator)
	}
}
