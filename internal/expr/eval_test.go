package expr

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"single number", "7", "7.0"},
		{"decimal", "2.5", "2.5"},
		{"addition", "2+3", "5.0"},
		{"no precedence", "2+3*4", "20.0"},
		{"left to right subtraction", "10-2-3", "5.0"},
		{"left to right division", "100/10/5", "2.0"},
		{"mixed", "1.5*4-1/2", "2.5"},
		{"float rounding", "0.1+0.2", "0.30000000000000004"},
		{"divide by zero", "1/0", "Infinity"},
		{"negative divide by zero", "0-1/0", "-Infinity"},
		{"zero over zero", "0/0", "NaN"},
		{"trailing dot", "3.+1", "4.0"},
		{"leading dot", ".5*2", "1.0"},
		{"negative result", "2-5", "-3.0"},
		{"infinity literal", "Infinity", "Infinity"},
		{"nan literal", "NaN", "NaN"},
		{"huge literal saturates", "1e400", "Infinity"},

		{"empty", "", ErrorText},
		{"letters", "abc", ErrorText},
		{"trailing operator", "5+", ErrorText},
		{"leading minus", "-4", ErrorText},
		{"double operator", "2++3", ErrorText},
		{"lone dot", ".", ErrorText},
		{"two dots", "1.2.3", ErrorText},
		{"error text", "Error", ErrorText},
		{"appended to error", "Error5+1", ErrorText},
		{"lone operator", "/", ErrorText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Evaluate(tt.expr))
		})
	}
}

func TestEvaluateIsIdempotentOnNumbers(t *testing.T) {
	for _, expr := range []string{"2+3*4", "10-2-3", "0.1+0.2", "1/3", "1/0", "0/0", "123456789*1000000000000"} {
		first := Evaluate(expr)
		require.Equal(t, first, Evaluate(first), "re-evaluating %q", first)
	}
}

func TestEvalErrorsAreEvaluationErrors(t *testing.T) {
	for _, expr := range []string{"", "abc", "5+", "-4", "1*+2"} {
		_, err := Eval(Tokenize(expr))
		require.Error(t, err, expr)
		require.True(t, errors.Is(err, ErrEvaluation), "errors.Is(%v, ErrEvaluation)", err)

		var evalErr *EvaluationError
		require.True(t, errors.As(err, &evalErr))
	}
}

func TestEvalReportsOffendingToken(t *testing.T) {
	_, err := Eval(Tokenize("1+2*x"))
	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))
	require.Equal(t, 4, evalErr.Index)
	require.Equal(t, "x", evalErr.Text)
	require.Equal(t, "invalid number", evalErr.Reason)
}

func TestEvalMissingOperand(t *testing.T) {
	tokens := slices.Values([]Token{Number("5"), Operator("+")})
	_, err := Eval(tokens)
	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))
	require.Equal(t, "missing operand", evalErr.Reason)
	require.Equal(t, `token 1 "+": missing operand`, evalErr.Error())
}

func TestEvalEmptySequence(t *testing.T) {
	_, err := Eval(slices.Values([]Token(nil)))
	require.ErrorIs(t, err, ErrEvaluation)
}

func TestEvalUnknownOperatorIsNoop(t *testing.T) {
	tokens := slices.Values([]Token{Number("6"), Operator("%"), Number("4"), Operator("+"), Number("1")})
	v, err := Eval(tokens)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)
}

func TestEvalDivisionByZero(t *testing.T) {
	v, err := Eval(Tokenize("5/0"))
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}
