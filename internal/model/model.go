package model

// Operation identifies one of the four arithmetic operations the calculator offers.
type Operation int

const (
	OpAdd      Operation = iota // a + b
	OpSubtract                  // a - b
	OpMultiply                  // a × b
	OpDivide                    // a ÷ b
)

// Operations returns every supported operation in button order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// Valid reports whether o is one of the known operations.
func (o Operation) Valid() bool {
	return o >= OpAdd && o <= OpDivide
}

// Symbol returns the sign shown on the operation's button and in results.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return "?"
	}
}

func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpMultiply:
		return "Multiply"
	case OpDivide:
		return "Divide"
	default:
		return "Unknown"
	}
}

// Result holds the operands and outcome of one successful computation.
type Result struct {
	A     float64
	B     float64
	Op    Operation
	Value float64
}

// String renders the result as "<A> <SYM> <B> = <OUT>".
func (r Result) String() string {
	return FormatResult(r)
}
