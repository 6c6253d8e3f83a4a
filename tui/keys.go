package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings a field reacts to while it has focus.
type KeyMap struct {
	Open      key.Binding
	Close     key.Binding
	Confirm   key.Binding
	Clear     key.Binding
	Prev      key.Binding
	Next      key.Binding
	Up        key.Binding
	Down      key.Binding
	SwitchEnd key.Binding
}

var DefaultKeyMap = KeyMap{
	Open: key.NewBinding(
		key.WithKeys("enter", "down"),
		key.WithHelp("enter/↓", "open panel"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close panel"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous column"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next column"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous value"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next value"),
	),
	SwitchEnd: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "start/end"),
	),
}

// Legend lists the bindings worth showing in a help view.
func (k KeyMap) Legend() []key.Binding {
	return []key.Binding{k.Open, k.Confirm, k.Close, k.Clear, k.Prev, k.Next, k.Up, k.Down, k.SwitchEnd}
}
