package dialogs

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-timepick/logging"
)

// --- Messages ---------------------------------------------------------------

type (
	SaveConfirmedMsg struct{ Path string }
	SaveCanceledMsg  struct{}
)

// --- Save dialog (modal) ----------------------------------------------------

// Save prompts for the file the current selection is written to.
type Save struct {
	input   textinput.Model
	visible bool
	// relative names land here when set
	lastDir string
}

func (d Save) Init() tea.Cmd { return textinput.Blink }

func NewSaveDialog(defaultName, lastDir string) *Save {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Save selection as: "
	ti.CharLimit = 256
	ti.Width = 40
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	ti.Focus()
	return &Save{input: ti, visible: true, lastDir: lastDir}
}

func (d *Save) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.Path()
			if path == "" {
				return d, nil
			}
			logging.Debugf("SaveDialog: confirmed %s", path)
			return d, func() tea.Msg { return SaveConfirmedMsg{Path: path} }
		case "esc":
			logging.Debugf("SaveDialog: canceled")
			return d, func() tea.Msg { return SaveCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// Path is the target the dialog would confirm right now: the typed name, or
// the placeholder when left blank, joined onto lastDir when it is a bare name.
func (d *Save) Path() string {
	val := d.input.Value()
	if val == "" {
		val = d.input.Placeholder
	}
	if val == "" {
		return ""
	}
	if d.lastDir != "" && !filepath.IsAbs(val) && filepath.Dir(val) == "." {
		return filepath.Join(d.lastDir, filepath.Base(val))
	}
	return val
}

func (d Save) View() string {
	if !d.visible {
		return ""
	}
	help := lipgloss.NewStyle().
		Faint(true).
		Render("enter to save • esc to cancel")

	content := fmt.Sprintf("%s\n\n%s", d.input.View(), help)
	return boxStyle().Render(content)
}

func (d *Save) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Save) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Save) Focus() tea.Cmd { return d.input.Focus() }
func (d *Save) Blur()          { d.input.Blur() }
func (d Save) IsVisible() bool { return d.visible }
