package calc

import "errors"

var (
	ErrInvalidOperand = errors.New("invalid operand")
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer division result too large for a float")
	ErrTooManyDigits  = errors.New("integer exceeds the digit limit")
)
