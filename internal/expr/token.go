// Package expr tokenizes and evaluates calculator expressions. Operators
// have no precedence: "2+3*4" folds left to right to 20.
package expr

import "iter"

// Kind distinguishes number tokens from operator tokens.
type Kind int

const (
	KindNumber Kind = iota
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// Token is one unit of an expression. Number tokens keep their literal text
// and are decoded by the evaluator, so a malformed literal fails there.
type Token struct {
	Kind Kind
	Text string
}

// Number returns a number token holding the literal text.
func Number(text string) Token {
	return Token{Kind: KindNumber, Text: text}
}

// Operator returns an operator token.
func Operator(op string) Token {
	return Token{Kind: KindOperator, Text: op}
}

func isOperator(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/':
		return true
	}
	return false
}

// Tokenize splits s before and after every '+', '-', '*' and '/'. The runs
// between operators become number tokens, including the empty run before a
// leading operator and after a trailing one. Adjacent operators produce no
// empty token between them.
//
// The sequence is lazy and can be ranged over any number of times.
func Tokenize(s string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		start := 0
		for i := 0; i < len(s); i++ {
			if !isOperator(s[i]) {
				continue
			}
			if i > start || i == 0 {
				if !yield(Number(s[start:i])) {
					return
				}
			}
			if !yield(Operator(s[i : i+1])) {
				return
			}
			start = i + 1
		}
		yield(Number(s[start:]))
	}
}

// Tokens collects Tokenize(s) into a slice.
func Tokens(s string) []Token {
	var out []Token
	for tok := range Tokenize(s) {
		out = append(out, tok)
	}
	return out
}
