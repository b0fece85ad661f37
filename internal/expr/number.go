package expr

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNumber decodes a numeric literal. Literals too large or too small for
// a float64 saturate to ±Inf or zero rather than failing.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, err
	}
	return v, nil
}

// FormatNumber renders v as the shortest decimal that parses back to v,
// never in exponent form. Integral values keep a ".0" suffix so results read
// as decimals ("4.0").
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
