package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/siftly-timepick/logging"
)

const keyColumnWidth = 12

// HelpSection is a titled group of bindings.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// Help shows key bindings grouped by section.
type Help struct {
	visible  bool
	sections []HelpSection
}

func (d Help) Init() tea.Cmd { return nil }

// NewHelpDialog creates a visible help dialog showing the given sections.
func NewHelpDialog(sections ...HelpSection) *Help {
	return &Help{
		visible:  true,
		sections: sections,
	}
}

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "f1":
			logging.Debugf("HelpDialog: closed with %s", m.String())
			d.visible = false
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true)
	// the description column wraps inside the box, under its own start
	descW := boxWidth - 4 - keyColumnWidth - 1

	var blocks []string
	for _, s := range d.sections {
		lines := []string{title.Render(s.Title)}
		for _, b := range s.Bindings {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			desc := wordwrap.String(h.Desc, descW)
			first, rest, _ := strings.Cut(desc, "\n")
			lines = append(lines, fmt.Sprintf("%-*s %s", keyColumnWidth, h.Key, first))
			if rest != "" {
				lines = append(lines, indent.String(rest, uint(keyColumnWidth+1)))
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	hint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	content := fmt.Sprintf("%s\n\n%s", strings.Join(blocks, "\n\n"), hint)
	return boxStyle().Render(content)
}

func (d *Help) Show() {
	d.visible = true
}

func (d *Help) Hide() {
	d.visible = false
}

func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
