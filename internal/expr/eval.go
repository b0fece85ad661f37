package expr

import (
	"errors"
	"fmt"
	"iter"
)

// ErrorText is what Evaluate returns in place of a result when the
// expression cannot be evaluated.
const ErrorText = "Error"

// ErrEvaluation matches every *EvaluationError via errors.Is.
var ErrEvaluation = errors.New("evaluation failed")

// EvaluationError reports why an expression could not be evaluated. Index is
// the ordinal of the offending token.
type EvaluationError struct {
	Index  int
	Text   string
	Reason string
	Err    error
}

func (e *EvaluationError) Error() string {
	msg := fmt.Sprintf("token %d %q: %s", e.Index, e.Text, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EvaluationError) Unwrap() error { return e.Err }

func (e *EvaluationError) Is(target error) bool { return target == ErrEvaluation }

// Eval folds tokens strictly left to right: a leading number followed by
// (operator, number) pairs. Division by zero yields ±Inf or NaN. An operator
// token that is not one of + - * / leaves the accumulator unchanged.
func Eval(tokens iter.Seq[Token]) (float64, error) {
	var (
		acc float64
		op  Token
		n   int
	)
	for tok := range tokens {
		switch {
		case n == 0:
			v, err := ParseNumber(tok.Text)
			if err != nil {
				return 0, &EvaluationError{Index: n, Text: tok.Text, Reason: "invalid number", Err: err}
			}
			acc = v
		case n%2 == 1:
			op = tok
		default:
			v, err := ParseNumber(tok.Text)
			if err != nil {
				return 0, &EvaluationError{Index: n, Text: tok.Text, Reason: "invalid number", Err: err}
			}
			acc = applyOperator(op.Text, acc, v)
		}
		n++
	}
	if n == 0 {
		return 0, &EvaluationError{Reason: "empty expression"}
	}
	if n%2 == 0 {
		return 0, &EvaluationError{Index: n - 1, Text: op.Text, Reason: "missing operand"}
	}
	return acc, nil
}

func applyOperator(op string, acc, v float64) float64 {
	switch op {
	case "+":
		return acc + v
	case "-":
		return acc - v
	case "*":
		return acc * v
	case "/":
		return acc / v
	}
	return acc
}

// Evaluate tokenizes and evaluates expression. It returns the formatted
// result, or ErrorText if the expression is malformed.
func Evaluate(expression string) string {
	v, err := Eval(Tokenize(expression))
	if err != nil {
		return ErrorText
	}
	return FormatNumber(v)
}
