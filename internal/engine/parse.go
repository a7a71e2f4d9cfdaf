package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/piwi3910/QuickCalc/internal/model"
)

// ParseOperands trims and parses the two raw operand strings.
//
// Both fields are checked for blankness before either is parsed, so a blank
// field always reports ErrEmptyInput. Parse failures are reported for A
// before B and wrap ErrNotNumeric in a *model.InputError.
func ParseOperands(textA, textB string) (float64, float64, error) {
	textA = strings.TrimSpace(textA)
	textB = strings.TrimSpace(textB)
	if textA == "" || textB == "" {
		return 0, 0, model.ErrEmptyInput
	}

	a, err := parseOperand("A", textA)
	if err != nil {
		return 0, 0, err
	}
	b, err := parseOperand("B", textB)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// parseOperand accepts finite decimal literals only: an optional sign,
// digits with an optional fraction, and an optional exponent.
func parseOperand(field, text string) (float64, error) {
	if strings.ContainsAny(text, "xXpP_") {
		return 0, notNumeric(field, text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, notNumeric(field, text)
	}
	return v, nil
}

func notNumeric(field, text string) error {
	return &model.InputError{Field: field, Text: text, Err: model.ErrNotNumeric}
}
