package ui

import (
	"fmt"
	"strings"
)

// Column defines a table column with a header label and width.
type Column struct {
	Header string
	Width  int
}

// RenderTable renders rows as a fixed-width table with column headers.
func RenderTable(columns []Column, rows [][]string) string {
	var b strings.Builder

	for i, col := range columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(HeaderStyle.Render(pad(col.Header, col.Width)))
	}
	b.WriteString("\n")

	for i, col := range columns {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(DimStyle.Render(strings.Repeat("─", col.Width)))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, col := range columns {
			if i > 0 {
				b.WriteString("  ")
			}
			val := ""
			if i < len(row) {
				val = row[i]
			}
			b.WriteString(pad(val, col.Width))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// TapeEntry is one completed calculation.
type TapeEntry struct {
	Input  string
	Symbol string
	Result string
}

var tapeColumns = []Column{
	{Header: "Input", Width: 24},
	{Header: "Key", Width: 4},
	{Header: "Result", Width: 24},
}

// RenderTape renders the most recent limit entries, newest last.
func RenderTape(entries []TapeEntry, limit int) string {
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		input := e.Input
		if input == "" {
			input = "-"
		}
		rows[i] = []string{input, e.Symbol, e.Result}
	}
	return RenderTable(tapeColumns, rows)
}

// pad truncates long values from the left so the least significant digits
// stay visible.
func pad(s string, width int) string {
	if len(s) > width {
		return "…" + s[len(s)-width+1:]
	}
	return fmt.Sprintf("%-*s", width, s)
}
