package ui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	ActiveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	PromptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))

	DisplayStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Align(lipgloss.Right)

	ButtonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8")).
			Align(lipgloss.Center)
	SelectedButtonStyle = ButtonStyle.
				BorderForeground(lipgloss.Color("2")).
				Foreground(lipgloss.Color("2")).
				Bold(true)
)
