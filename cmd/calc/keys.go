package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/private-landing/calc/internal/session"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Press     key.Binding
	Backspace key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Press, k.Backspace, k.Quit}
}

// helpLine renders the bindings as "key desc • key desc".
func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	parts = append(parts, "c clear • s sqrt")
	return strings.Join(parts, " • ")
}

// symbolForKey maps a typed key to the keypad symbol it presses.
func symbolForKey(k string) (string, bool) {
	switch k {
	case "c", "C":
		return session.SymbolClear, true
	case "s", "S":
		return session.SymbolSqrt, true
	}
	if len(k) == 1 && session.IsSymbol(k) {
		return k, true
	}
	return "", false
}
