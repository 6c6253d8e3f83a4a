package tui

import "github.com/charmbracelet/lipgloss"

const (
	accentColor   = "#ff9f1c"
	textFGColor   = "#c0c0c0"
	dimFGColor    = "#6c6c6c"
	selectedBG    = "#3a3a3a"
	disabledColor = "#4a4a4a"
)

var (
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color(textFGColor)).Width(8)
	inputStyle        = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	inputFocusedStyle = inputStyle.BorderForeground(lipgloss.Color(accentColor))
	inputDisabled     = inputStyle.Foreground(lipgloss.Color(disabledColor))
	clearMarkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(dimFGColor))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)

	cellStyle         = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(textFGColor))
	cellSelectedStyle = cellStyle.Background(lipgloss.Color(selectedBG))
	cellActiveStyle   = cellStyle.Background(lipgloss.Color(accentColor)).Foreground(lipgloss.Color("#000000"))
	cellDisabledStyle = cellStyle.Foreground(lipgloss.Color(disabledColor)).Strikethrough(true)
	columnTitleStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	panelHintStyle    = lipgloss.NewStyle().Faint(true)
	endTabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color(dimFGColor))
	endTabActiveStyle = endTabStyle.Foreground(lipgloss.Color(accentColor)).Bold(true)
)
