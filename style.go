package main

import "github.com/charmbracelet/lipgloss"

const (
	textFGColor   = "#c0c0c0"
	accentFGColor = "#ff9f1c"
	dimFGColor    = "#6c6c6c"
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentFGColor))

	fieldsArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	historyArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1).
			MarginLeft(1)

	historyTitleStyle = lipgloss.NewStyle().Faint(true)
	historyRowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(textFGColor))
	historyEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(dimFGColor)).Italic(true)
)
