package dialogs

import "github.com/charmbracelet/lipgloss"

const (
	boxWidth     = 60
	overlayColor = "236"
)

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color(overlayColor)).
		Padding(1, 2).
		Width(boxWidth)
}

// Place centres a dialog on a width x height overlay.
func Place(d Dialog, width, height int) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		d.View(),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(overlayColor)),
	)
}
