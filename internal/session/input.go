package session

import "unicode/utf8"

// InputBuffer holds the expression typed so far.
type InputBuffer struct {
	Value string
}

// Append adds runes to the buffer.
func (b *InputBuffer) Append(runes []rune) {
	if len(runes) > 0 {
		b.Value += string(runes)
	}
}

// Backspace removes the last character.
func (b *InputBuffer) Backspace() {
	if len(b.Value) > 0 {
		_, size := utf8.DecodeLastRuneInString(b.Value)
		b.Value = b.Value[:len(b.Value)-size]
	}
}

// Clear resets the buffer.
func (b *InputBuffer) Clear() {
	b.Value = ""
}

// Press applies a keypad symbol to the buffer and returns the new value.
func (b *InputBuffer) Press(symbol string) string {
	b.Value = Apply(b.Value, symbol)
	return b.Value
}
