package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	buttonWidth = 5
	buttonGap   = 1
)

// KeypadRows is the calculator button layout.
var KeypadRows = [][]string{
	{"1", "2", "3", "+", "*"},
	{"4", "5", "6", "-", "/"},
	{"7", "8", "9", "sqrt"},
	{"0", ".", "C", "="},
}

// Keypad tracks the selected button on a grid of symbols.
type Keypad struct {
	rows     [][]string
	row, col int
}

// NewKeypad returns a keypad with the first button selected.
func NewKeypad(rows [][]string) Keypad {
	return Keypad{rows: rows}
}

// Selected returns the symbol under the cursor.
func (k Keypad) Selected() string {
	if len(k.rows) == 0 || len(k.rows[k.row]) == 0 {
		return ""
	}
	return k.rows[k.row][k.col]
}

// Position returns the cursor's row and column.
func (k Keypad) Position() (row, col int) {
	return k.row, k.col
}

// Move shifts the cursor, stopping at the grid edges. Moving onto a shorter
// row clamps the column to its last button.
func (k *Keypad) Move(dRow, dCol int) {
	if len(k.rows) == 0 {
		return
	}
	k.row = clamp(k.row+dRow, 0, len(k.rows)-1)
	k.col = clamp(k.col+dCol, 0, len(k.rows[k.row])-1)
}

// Select moves the cursor onto symbol and reports whether it was found.
func (k *Keypad) Select(symbol string) bool {
	for r, row := range k.rows {
		for c, s := range row {
			if s == symbol {
				k.row, k.col = r, c
				return true
			}
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Render draws the keypad. Words such as "sqrt" get a double-width button.
func (k Keypad) Render() string {
	rows := make([]string, 0, len(k.rows))
	for r, row := range k.rows {
		buttons := make([]string, 0, len(row)*2)
		for c, symbol := range row {
			if c > 0 {
				buttons = append(buttons, strings.Repeat(" ", buttonGap))
			}
			style := ButtonStyle
			if r == k.row && c == k.col {
				style = SelectedButtonStyle
			}
			buttons = append(buttons, style.Width(buttonSpan(symbol)).Render(symbol))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Width returns the rendered width of the widest row.
func (k Keypad) Width() int {
	return lipgloss.Width(k.Render())
}

func buttonSpan(symbol string) int {
	if len(symbol) > 1 || symbol == "=" {
		return buttonWidth*2 + buttonGap + 2
	}
	return buttonWidth
}
