// Package calc serves integer arithmetic and greeting routes.
package calc

import (
	"fmt"
	"math"
	"math/big"

	"github.com/go-barry/exercises/core"
)

type Operation int

const (
	Add Operation = iota
	Sub
	Mult
	Div
)

var operationNames = [...]string{
	Add:  "add",
	Sub:  "sub",
	Mult: "mult",
	Div:  "div",
}

func Operations() []Operation {
	return []Operation{Add, Sub, Mult, Div}
}

func (op Operation) String() string {
	if op < 0 || int(op) >= len(operationNames) {
		return fmt.Sprintf("Operation(%d)", int(op))
	}
	return operationNames[op]
}

func ParseOperation(name string) (Operation, error) {
	for _, op := range Operations() {
		if op.String() == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("operation %q: %w", name, core.ErrNotFound)
}

// Apply runs op on a and b. Add, Sub and Mult are exact; Div is true division
// rounded to the nearest float64.
func (op Operation) Apply(a, b *big.Int) (Result, error) {
	var n *big.Int
	switch op {
	case Add:
		n = new(big.Int).Add(a, b)
	case Sub:
		n = new(big.Int).Sub(a, b)
	case Mult:
		n = new(big.Int).Mul(a, b)
	case Div:
		return divide(a, b)
	default:
		return Result{}, fmt.Errorf("operation %d: %w", int(op), core.ErrNotFound)
	}

	if err := checkDigits(n); err != nil {
		return Result{}, err
	}
	return intResult(n), nil
}

func divide(a, b *big.Int) (Result, error) {
	if b.Sign() == 0 {
		return Result{}, ErrDivisionByZero
	}
	if a.Sign() == 0 {
		// zero over a negative divisor is negative zero
		return floatResult(math.Copysign(0, float64(b.Sign()))), nil
	}

	f, _ := new(big.Rat).SetFrac(a, b).Float64()
	if math.IsInf(f, 0) {
		return Result{}, ErrOverflow
	}
	return floatResult(f), nil
}
