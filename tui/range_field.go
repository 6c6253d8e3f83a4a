package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-timepick/logging"
	"github.com/andareed/siftly-timepick/timepicker"
)

const (
	rangeStart = iota
	rangeEnd
)

// RangeField binds a timepicker.RangePicker to a read-only input and a pair
// of panels, one per endpoint.
type RangeField struct {
	ID    string
	Label string

	picker  *timepicker.RangePicker
	input   textinput.Model
	panels  [2]Panel
	active  int
	keys    KeyMap
	focused bool
	out     outbox
}

func NewRangeField(id, label string, props timepicker.RangeProps) *RangeField {
	f := &RangeField{ID: id, Label: label, keys: DefaultKeyMap}
	f.picker = timepicker.NewRange(f.wrap(props))
	f.input = newRangeInput(f.picker.Props().Format)
	cfg := f.picker.Snapshot().Panel
	f.panels = [2]Panel{NewPanel(cfg), NewPanel(cfg)}
	f.sync()
	return f
}

func newRangeInput(format string) textinput.Model {
	ti := newInput(format)
	ti.CharLimit = 0
	ti.Width = 2*ti.Width + len(" - ")
	return ti
}

func (f *RangeField) SetProps(props timepicker.RangeProps) {
	f.picker.SetProps(f.wrap(props))
	f.input = newRangeInput(f.picker.Props().Format)
	cfg := f.picker.Snapshot().Panel
	f.panels[rangeStart].Configure(cfg)
	f.panels[rangeEnd].Configure(cfg)
	f.sync()
}

func (f *RangeField) wrap(p timepicker.RangeProps) timepicker.RangeProps {
	onChange, onOpen, onClose, onBlur, onFocus := p.OnChange, p.OnOpen, p.OnClose, p.OnBlur, p.OnFocus
	p.OnChange = func(v timepicker.RangeValue) {
		if onChange != nil {
			onChange(v)
		}
		f.out.push(RangeChangeMsg{ID: f.ID, Value: v})
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

func (f *RangeField) Picker() *timepicker.RangePicker { return f.picker }
func (f *RangeField) Value() timepicker.RangeValue    { return f.picker.Value() }
func (f *RangeField) Focused() bool                   { return f.focused }
func (f *RangeField) IsOpen() bool                    { return f.picker.Visibility() == timepicker.Open }

// ActiveEnd is 0 while the start panel takes input, 1 for the end panel.
func (f *RangeField) ActiveEnd() int { return f.active }

func (f *RangeField) sync() {
	snap := f.picker.Snapshot()
	f.input.SetValue(snap.Display)
	if snap.Placeholder != "" {
		f.input.Placeholder = snap.Placeholder
	}
}

func (f *RangeField) Focus() tea.Cmd {
	f.focused = true
	f.picker.OnFocus(timepicker.FocusContext{Input: f.input.Value()})
	return f.out.flush()
}

func (f *RangeField) Blur() tea.Cmd {
	if f.IsOpen() {
		f.picker.OnVisibilityChange(false, timepicker.VisibilityContext{Trigger: timepicker.TriggerOutside})
	}
	f.focused = false
	f.picker.OnBlur(timepicker.FocusContext{Input: f.input.Value()})
	return f.out.flush()
}

func (f *RangeField) pair() timepicker.RangeValue {
	return timepicker.RangeOf(f.panels[rangeStart].Value(), f.panels[rangeEnd].Value())
}

func (f *RangeField) Update(msg tea.Msg) (*RangeField, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !f.focused {
		return f, nil
	}
	snap := f.picker.Snapshot()
	if snap.Disabled {
		return f, nil
	}

	if key.Matches(km, f.keys.Clear) && f.picker.OnClear() {
		logging.Debugf("tui: range field %s cleared", f.ID)
		f.sync()
		return f, f.out.flush()
	}

	if !snap.Open {
		if key.Matches(km, f.keys.Open) {
			f.picker.OnVisibilityChange(true, timepicker.VisibilityContext{Trigger: timepicker.TriggerKeyboard})
			f.panels[rangeStart].Configure(snap.Panel)
			f.panels[rangeEnd].Configure(snap.Panel)
			f.panels[rangeStart].SetValue(snap.Value.Start())
			f.panels[rangeEnd].SetValue(snap.Value.End())
			f.active = rangeStart
		}
		return f, f.out.flush()
	}

	switch {
	case key.Matches(km, f.keys.Close):
		f.picker.OnVisibilityChange(false, timepicker.VisibilityContext{Trigger: timepicker.TriggerKeyboard})
	case key.Matches(km, f.keys.Confirm):
		f.picker.OnPanelConfirm(f.pair())
	case key.Matches(km, f.keys.SwitchEnd):
		f.active = 1 - f.active
	default:
		if f.panels[f.active].Update(km) {
			f.picker.OnPanelChange(f.pair())
		}
	}
	f.sync()
	return f, f.out.flush()
}

func (f *RangeField) View() string {
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
	var panels [2]string
	for i, title := range []string{"Start", "End"} {
		tabStyle := endTabStyle
		if i == f.active {
			tabStyle = endTabActiveStyle
		}
		panels[i] = lipgloss.JoinVertical(lipgloss.Left, tabStyle.Render(title), f.panels[i].View(i == f.active))
	}
	hint := panelHintStyle.Render("tab start/end · enter confirm · esc close")
	body := lipgloss.JoinHorizontal(lipgloss.Top, panels[rangeStart], "  ", panels[rangeEnd])
	return lipgloss.JoinVertical(lipgloss.Left, row, panelStyle.Render(body+"\n"+hint))
}
