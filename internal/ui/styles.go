package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorDim       = lipgloss.Color("240") // gray
	colorHighlight = lipgloss.Color("11")  // bright yellow
	colorError     = lipgloss.Color("9")   // bright red

	styleHeader = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorDim)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	styleNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleDuration = lipgloss.NewStyle().
			Foreground(colorDim)

	styleStatus = lipgloss.NewStyle().
			Foreground(colorDim)

	styleError = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)
