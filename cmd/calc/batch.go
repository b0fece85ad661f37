package main

import (
	"errors"
	"fmt"

	"github.com/google/shlex"
	"github.com/private-landing/calc/internal/expr"
	"github.com/private-landing/calc/internal/session"
)

var errNoKeys = errors.New("no keys given")

// parseKeys splits a key sequence into keypad symbols. Words are separated
// by whitespace with shell quoting rules; a word that is not itself a symbol
// is split into single-character symbols, so "12+3" presses 1 2 + 3.
func parseKeys(sequence string) ([]string, error) {
	words, err := shlex.Split(sequence)
	if err != nil {
		return nil, fmt.Errorf("split keys: %w", err)
	}
	if len(words) == 0 {
		return nil, errNoKeys
	}

	var symbols []string
	for _, w := range words {
		if session.IsSymbol(w) {
			symbols = append(symbols, w)
			continue
		}
		for _, r := range w {
			s := string(r)
			if !session.IsSymbol(s) {
				return nil, fmt.Errorf("unknown key %q in %q", s, w)
			}
			symbols = append(symbols, s)
		}
	}
	return symbols, nil
}

// runKeys presses every symbol of sequence on an empty buffer and returns the
// final buffer.
func runKeys(sequence string) (string, error) {
	symbols, err := parseKeys(sequence)
	if err != nil {
		return "", err
	}
	var input session.InputBuffer
	for _, s := range symbols {
		input.Press(s)
	}
	return input.Value, nil
}

func isErrorResult(s string) bool {
	return s == expr.ErrorText
}

