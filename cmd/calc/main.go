package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/private-landing/calc/internal/config"
	"github.com/private-landing/calc/internal/expr"
	"github.com/private-landing/calc/internal/logger"
	"github.com/private-landing/calc/internal/session"
	"github.com/private-landing/calc/internal/ui"
)

const tapeLimit = 5

type model struct {
	log      *slog.Logger
	keys     keyMap
	input    session.InputBuffer
	keypad   ui.Keypad
	tape     []ui.TapeEntry
	quitting bool
}

func initialModel(log *slog.Logger) model {
	return model{
		log:    log,
		keys:   defaultKeyMap(),
		keypad: ui.NewKeypad(ui.KeypadRows),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.keypad.Move(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.keypad.Move(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.keypad.Move(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.keypad.Move(0, 1)
	case key.Matches(msg, m.keys.Press):
		m.press(m.keypad.Selected())
	case key.Matches(msg, m.keys.Backspace):
		m.input.Backspace()
	default:
		if symbol, ok := symbolForKey(msg.String()); ok {
			m.keypad.Select(symbol)
			m.press(symbol)
		}
	}
	return m, nil
}

func (m *model) press(symbol string) {
	if symbol == "" {
		return
	}
	before := m.input.Value
	after := m.input.Press(symbol)
	m.log.Debug("key pressed", "symbol", symbol, "before", before, "after", after)

	switch symbol {
	case session.SymbolEquals, session.SymbolSqrt:
		m.tape = append(m.tape, ui.TapeEntry{Input: before, Symbol: symbol, Result: after})
		if isErrorResult(after) {
			m.log.Info("evaluation failed", "symbol", symbol, "input", before)
		}
	}
}

// --- Views ---

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("Calculator"))
	b.WriteString("\n\n")
	b.WriteString(m.viewDisplay())
	b.WriteString("\n")
	b.WriteString(m.keypad.Render())
	b.WriteString("\n")

	if len(m.tape) > 0 {
		b.WriteString("\n")
		b.WriteString(ui.RenderTape(m.tape, tapeLimit))
	}

	b.WriteString(ui.DimStyle.Render("\nCalculation order is strictly left to right, with no operator precedence."))
	b.WriteString("\n")
	b.WriteString(ui.DimStyle.Render(helpLine(m.keys.shortHelp())))
	b.WriteString("\n")
	return b.String()
}

func (m model) viewDisplay() string {
	width := m.keypad.Width() - ui.DisplayStyle.GetHorizontalBorderSize()

	value := m.input.Value
	style := ui.ActiveStyle
	switch {
	case value == "":
		value = "0"
		style = ui.DimStyle
	case isErrorResult(value):
		style = ui.ErrorStyle
	}
	return ui.DisplayStyle.Width(width).Render(style.Render(value))
}

// --- Batch modes ---

func runEval(expression string, stdout io.Writer) int {
	result := expr.Evaluate(expression)
	fmt.Fprintln(stdout, result)
	if isErrorResult(result) {
		return 2
	}
	return 0
}

func runBatch(sequence string, stdout, stderr io.Writer) int {
	result, err := runKeys(sequence)
	if err != nil {
		fmt.Fprintln(stderr, ui.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return 1
	}
	fmt.Fprintln(stdout, result)
	if isErrorResult(result) {
		return 2
	}
	return 0
}

func runTUI(cfg config.Config, stderr io.Writer) int {
	log, closer, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	log.Info("session started", "level", cfg.LogLevel.String())

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(initialModel(log), opts...)
	if _, err := p.Run(); err != nil {
		log.Error("program failed", "err", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log.Info("session ended")
	return 0
}

func printUsage(w io.Writer) {
	heading := ui.TitleStyle.Render
	label := ui.PromptStyle.Render
	dim := ui.DimStyle.Render

	fmt.Fprintln(w, heading("calc")+dim(" - left-to-right button calculator"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Usage:"))
	fmt.Fprintln(w, "  calc [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Without flags, launches an interactive keypad. Operators have no")
	fmt.Fprintln(w, "  precedence: 2+3*4 is 20.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Flags:"))
	fmt.Fprintln(w, "  "+label("-e, --eval EXPR")+"    Print the value of EXPR")
	fmt.Fprintln(w, "  "+label("-k, --keys KEYS")+"    Press KEYS on an empty keypad and print the display")
	fmt.Fprintln(w, "  "+label("-h, --help")+"         Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Keys:"))
	fmt.Fprintln(w, "  0-9 . + - * /   "+dim("Append to the input"))
	fmt.Fprintln(w, "  =               "+dim("Evaluate the input"))
	fmt.Fprintln(w, "  C               "+dim("Clear the input"))
	fmt.Fprintln(w, "  sqrt            "+dim("Square root of a single number"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Environment:"))
	fmt.Fprintln(w, "  "+label(config.EnvLogFile)+"     Append debug logs to this file (optional)")
	fmt.Fprintln(w, "  "+label(config.EnvLogLevel)+"    debug, info, warn, error or none (default info)")
	fmt.Fprintln(w, "  "+label(config.EnvAltScreen)+"   Use the full terminal screen when set to 1")
}

func run(args []string, stdout, stderr io.Writer) int {
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-h", "--help":
			printUsage(stdout)
			return 0
		case "-e", "--eval", "-k", "--keys":
			if i+1 >= len(args) {
				fmt.Fprintln(stderr, ui.ErrorStyle.Render(fmt.Sprintf("%s requires an argument", arg)))
				return 1
			}
			if arg == "-e" || arg == "--eval" {
				return runEval(args[i+1], stdout)
			}
			return runBatch(args[i+1], stdout, stderr)
		default:
			fmt.Fprintln(stderr, ui.ErrorStyle.Render(fmt.Sprintf("unknown flag %q", arg)))
			fmt.Fprintln(stderr, "Run 'calc --help' for usage information")
			return 1
		}
	}

	return runTUI(config.FromEnv(), stderr)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
