package expr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireTokens(t *testing.T, input string, want ...Token) {
	t.Helper()
	require.Equal(t, want, Tokens(input), "tokens of %q", input)
}

func TestTokenizeSingleNumber(t *testing.T) {
	requireTokens(t, "42", Number("42"))
}

func TestTokenizeDecimal(t *testing.T) {
	requireTokens(t, "3.25", Number("3.25"))
}

func TestTokenizeEmpty(t *testing.T) {
	requireTokens(t, "", Number(""))
}

func TestTokenizeBinary(t *testing.T) {
	requireTokens(t, "2+3", Number("2"), Operator("+"), Number("3"))
}

func TestTokenizeAllOperators(t *testing.T) {
	requireTokens(t, "1+2-3*4/5",
		Number("1"), Operator("+"),
		Number("2"), Operator("-"),
		Number("3"), Operator("*"),
		Number("4"), Operator("/"),
		Number("5"),
	)
}

func TestTokenizeLeadingMinus(t *testing.T) {
	requireTokens(t, "-4", Number(""), Operator("-"), Number("4"))
}

func TestTokenizeTrailingOperator(t *testing.T) {
	requireTokens(t, "5+", Number("5"), Operator("+"), Number(""))
}

func TestTokenizeAdjacentOperators(t *testing.T) {
	requireTokens(t, "2++3", Number("2"), Operator("+"), Operator("+"), Number("3"))
}

func TestTokenizeLoneOperator(t *testing.T) {
	requireTokens(t, "*", Number(""), Operator("*"), Number(""))
}

func TestTokenizeKeepsNonNumericRuns(t *testing.T) {
	requireTokens(t, "Error+1", Number("Error"), Operator("+"), Number("1"))
}

func TestTokenizeRestartable(t *testing.T) {
	seq := Tokenize("7*8-9")
	var first, second []Token
	for tok := range seq {
		first = append(first, tok)
	}
	for tok := range seq {
		second = append(second, tok)
	}
	require.Len(t, first, 5)
	require.Equal(t, first, second)
}

func TestTokenizeStopsEarly(t *testing.T) {
	var got []Token
	for tok := range Tokenize("1+2+3") {
		got = append(got, tok)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []Token{Number("1"), Operator("+")}, got)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "number", KindNumber.String())
	require.Equal(t, "operator", KindOperator.String())
	require.Equal(t, "unknown", Kind(9).String())
}
