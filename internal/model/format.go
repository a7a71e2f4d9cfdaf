package model

import (
	"fmt"
	"strconv"
)

// FormatNumber renders v in general notation with the fewest digits that
// round-trip: 5 not 5.0, 0.30000000000000004 for 0.1+0.2.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatResult renders r as "<A> <SYM> <B> = <OUT>".
func FormatResult(r Result) string {
	return fmt.Sprintf("%s %s %s = %s",
		FormatNumber(r.A), r.Op.Symbol(), FormatNumber(r.B), FormatNumber(r.Value))
}
