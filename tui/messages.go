package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-timepick/timepicker"
)

// --- Messages ---------------------------------------------------------------

type (
	ChangeMsg struct {
		ID    string
		Value timepicker.TimeValue
	}
	RangeChangeMsg struct {
		ID    string
		Value timepicker.RangeValue
	}
	OpenMsg struct {
		ID      string
		Trigger timepicker.Trigger
	}
	CloseMsg struct {
		ID      string
		Trigger timepicker.Trigger
	}
	FocusMsg struct{ ID string }
	BlurMsg  struct{ ID string }
)

// outbox collects messages raised by picker callbacks during one Update and
// hands them to Bubble Tea in the order they were raised.
type outbox struct {
	msgs []tea.Msg
}

func (o *outbox) push(msg tea.Msg) { o.msgs = append(o.msgs, msg) }

func (o *outbox) flush() tea.Cmd {
	if len(o.msgs) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(o.msgs))
	for _, msg := range o.msgs {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	o.msgs = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}
