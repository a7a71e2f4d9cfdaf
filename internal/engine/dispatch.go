// Package engine turns operand text and an operation into a computed result.
package engine

import "github.com/piwi3910/QuickCalc/internal/model"

// Dispatch applies op to a and b.
func Dispatch(op model.Operation, a, b float64) (model.Result, error) {
	var (
		value float64
		err   error
	)
	switch op {
	case model.OpAdd:
		value = model.Add(a, b)
	case model.OpSubtract:
		value = model.Subtract(a, b)
	case model.OpMultiply:
		value = model.Multiply(a, b)
	case model.OpDivide:
		value, err = model.Divide(a, b)
	default:
		return model.Result{}, model.ErrUnknownOperation
	}
	if err != nil {
		return model.Result{}, err
	}
	return model.Result{A: a, B: b, Op: op, Value: value}, nil
}

// Evaluate parses both operand fields and dispatches op. It either returns a
// complete result or an error, never both.
func Evaluate(op model.Operation, textA, textB string) (model.Result, error) {
	a, b, err := ParseOperands(textA, textB)
	if err != nil {
		return model.Result{}, err
	}
	return Dispatch(op, a, b)
}
