package session

import (
	"math"
	"slices"

	"github.com/private-landing/calc/internal/expr"
)

// Keypad symbols with behavior beyond appending.
const (
	SymbolClear  = "C"
	SymbolEquals = "="
	SymbolSqrt   = "sqrt"
)

// Symbols is every symbol the keypad can send.
var Symbols = []string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".",
	"+", "-", "*", "/",
	SymbolClear, SymbolEquals, SymbolSqrt,
}

// IsSymbol reports whether s is a keypad symbol.
func IsSymbol(s string) bool {
	return slices.Contains(Symbols, s)
}

// Apply returns the buffer that results from pressing symbol with buffer
// showing. "=" evaluates the buffer, "C" clears it and "sqrt" replaces a
// buffer holding a single number with its square root. Any other symbol is
// appended as is.
//
// A failed "=" or "sqrt" leaves expr.ErrorText in the buffer; further input is
// appended to it.
func Apply(buffer, symbol string) string {
	switch symbol {
	case SymbolEquals:
		return expr.Evaluate(buffer)
	case SymbolClear:
		return ""
	case SymbolSqrt:
		v, err := expr.ParseNumber(buffer)
		if err != nil {
			return expr.ErrorText
		}
		return expr.FormatNumber(math.Sqrt(v))
	default:
		return buffer + symbol
	}
}
