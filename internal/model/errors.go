package model

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when an operand field is blank after trimming.
	ErrEmptyInput = errors.New("please enter values for both A and B")
	// ErrNotNumeric is returned when a non-blank operand is not a finite decimal number.
	ErrNotNumeric = errors.New("operands must be numbers (e.g. 12, 3.5)")
	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("cannot divide by zero")
	// ErrUnknownOperation is returned when an operation outside the known set is dispatched.
	ErrUnknownOperation = errors.New("unknown operation")
)

// InputError reports which operand field failed to parse.
type InputError struct {
	Field string // "A" or "B"
	Text  string // trimmed text that was rejected
	Err   error
}

func (e *InputError) Error() string {
	if errors.Is(e.Err, ErrNotNumeric) {
		return fmt.Sprintf("%s must be a number (e.g. 12, 3.5)", e.Field)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies calculator failures.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindEmptyInput
	KindNotNumeric
	KindDivisionByZero
	KindUnknownOperation
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindEmptyInput:
		return "empty_input"
	case KindNotNumeric:
		return "not_numeric"
	case KindDivisionByZero:
		return "division_by_zero"
	case KindUnknownOperation:
		return "unknown_operation"
	default:
		return "other"
	}
}

// KindOf maps err to its ErrorKind. A nil error is KindNone.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, ErrNotNumeric):
		return KindNotNumeric
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, ErrUnknownOperation):
		return KindUnknownOperation
	default:
		return KindOther
	}
}
