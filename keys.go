package main

import (
	"github.com/charmbracelet/bubbles/key"
)

// Global keys use modifiers so they never collide with text typed into the
// time input.
type Keymap struct {
	Quit      key.Binding
	NextField key.Binding
	PrevField key.Binding
	OpenHelp  key.Binding
	Save      key.Binding
	Copy      key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+q"),
		key.WithHelp("ctrl+q", "quit"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help / keys"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save selection to file"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy focused value to clipboard"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.NextField,
		k.PrevField,
		k.OpenHelp,
		k.Save,
		k.Copy,
	}
}
