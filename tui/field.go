package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-timepick/logging"
	"github.com/andareed/siftly-timepick/timepicker"
)

// Field binds a timepicker.Picker to a text input and a Panel. Callbacks set
// on the props still fire; in addition every callback is raised as a message
// (ChangeMsg, OpenMsg, ...) from Update.
type Field struct {
	ID    string
	Label string

	picker  *timepicker.Picker
	input   textinput.Model
	panel   Panel
	keys    KeyMap
	focused bool
	out     outbox
}

func NewField(id, label string, props timepicker.Props) *Field {
	f := &Field{ID: id, Label: label, keys: DefaultKeyMap}
	f.picker = timepicker.New(f.wrap(props))
	f.input = newInput(f.picker.Props().Format)
	f.panel = NewPanel(f.picker.Snapshot().Panel)
	f.sync()
	return f
}

func newInput(format string) textinput.Model {
	width := timepicker.InputWidth(format)
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = width
	ti.Width = width
	return ti
}

// SetProps re-renders the field with new host props.
func (f *Field) SetProps(props timepicker.Props) {
	f.picker.SetProps(f.wrap(props))
	f.input = newInput(f.picker.Props().Format)
	if f.focused && f.picker.Props().AllowInput {
		f.input.Focus()
	}
	f.panel.Configure(f.picker.Snapshot().Panel)
	f.sync()
}

func (f *Field) wrap(p timepicker.Props) timepicker.Props {
	onChange, onOpen, onClose, onBlur, onFocus := p.OnChange, p.OnOpen, p.OnClose, p.OnBlur, p.OnFocus
	p.OnChange = func(v timepicker.TimeValue) {
		if onChange != nil {
			onChange(v)
		}
		f.out.push(ChangeMsg{ID: f.ID, Value: v})
	}
	p.OnOpen = func(ctx timepicker.VisibilityContext) {
		if onOpen != nil {
			onOpen(ctx)
		}
		f.out.push(OpenMsg{ID: f.ID, Trigger: ctx.Trigger})
	}
	p.OnClose = func(ctx timepicker.VisibilityContext) {
		if onClose != nil {
			onClose(ctx)
		}
		f.out.push(CloseMsg{ID: f.ID, Trigger: ctx.Trigger})
	}
	p.OnBlur = func(ctx timepicker.FocusContext) {
		if onBlur != nil {
			onBlur(ctx)
		}
		f.out.push(BlurMsg{ID: f.ID})
	}
	p.OnFocus = func(ctx timepicker.FocusContext) {
		if onFocus != nil {
			onFocus(ctx)
		}
		f.out.push(FocusMsg{ID: f.ID})
	}
	return p
}

func (f *Field) Picker() *timepicker.Picker  { return f.picker }
func (f *Field) Value() timepicker.TimeValue { return f.picker.Value() }
func (f *Field) Focused() bool               { return f.focused }
func (f *Field) IsOpen() bool                { return f.picker.Visibility() == timepicker.Open }

// InputText is what the input currently shows, typed or committed.
func (f *Field) InputText() string { return f.input.Value() }

// sync copies the committed value into the input, dropping any partial text.
func (f *Field) sync() {
	snap := f.picker.Snapshot()
	f.input.SetValue(snap.Display)
	if snap.Placeholder != "" {
		f.input.Placeholder = snap.Placeholder
	}
}

func (f *Field) Focus() tea.Cmd {
	f.focused = true
	var cmd tea.Cmd
	if f.picker.Props().AllowInput {
		cmd = f.input.Focus()
	}
	f.picker.OnFocus(timepicker.FocusContext{Input: f.input.Value()})
	return tea.Batch(cmd, f.out.flush())
}

// Blur drops focus. An open panel closes as if the user clicked away.
func (f *Field) Blur() tea.Cmd {
	if f.IsOpen() {
		f.picker.OnVisibilityChange(false, timepicker.VisibilityContext{Trigger: timepicker.TriggerOutside})
	}
	f.focused = false
	f.input.Blur()
	f.picker.OnBlur(timepicker.FocusContext{Input: f.input.Value()})
	f.sync()
	return f.out.flush()
}

func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}
	snap := f.picker.Snapshot()
	if snap.Disabled {
		return f, nil
	}

	if key.Matches(km, f.keys.Clear) && f.picker.OnClear() {
		// consumed: the same key must not reach the panel or the toggle
		logging.Debugf("tui: field %s cleared", f.ID)
		f.sync()
		return f, f.out.flush()
	}

	if snap.Open {
		f.updateOpen(km)
		return f, f.out.flush()
	}

	if key.Matches(km, f.keys.Open) {
		f.picker.OnVisibilityChange(true, timepicker.VisibilityContext{Trigger: timepicker.TriggerKeyboard})
		f.panel.Configure(snap.Panel)
		f.panel.SetValue(snap.Display)
		f.input.Blur()
		return f, f.out.flush()
	}

	if !snap.AllowInput {
		return f, nil
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(km)
	if text := f.input.Value(); text != before {
		f.picker.OnInputChange(text)
	}
	return f, tea.Batch(cmd, f.out.flush())
}

func (f *Field) updateOpen(km tea.KeyMsg) {
	switch {
	case key.Matches(km, f.keys.Close):
		f.picker.OnVisibilityChange(false, timepicker.VisibilityContext{Trigger: timepicker.TriggerKeyboard})
	case key.Matches(km, f.keys.Confirm):
		f.picker.OnPanelConfirm(f.panel.Time())
	default:
		if f.panel.Update(km) {
			f.picker.OnPanelChange(f.panel.Time())
		}
	}
	f.sync()
	if !f.IsOpen() && f.picker.Props().AllowInput {
		f.input.Focus()
	}
}

func (f *Field) View() string {
	snap := f.picker.Snapshot()
	style := inputStyle
	switch {
	case snap.Disabled:
		style = inputDisabled
	case f.focused:
		style = inputFocusedStyle
	}
	box := f.input.View()
	if snap.Clearable && snap.HasValue && !snap.Disabled {
		box += clearMarkStyle.Render(" ×")
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, labelStyle.Render(f.Label), style.Render(box))
	if !snap.Open {
		return row
	}
	hint := panelHintStyle.Render("enter confirm · esc close")
	return lipgloss.JoinVertical(lipgloss.Left, row, panelStyle.Render(f.panel.View(true)+"\n"+hint))
}
