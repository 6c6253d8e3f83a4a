package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/siftly-timepick/timepicker"
)

// panelRows is how many values each column shows around the selection.
const panelRows = 5

// Panel is a column selector: one column per unit the format renders, values
// limited by the configured steps, disabled times hidden or struck through.
// It never produces a value the configuration forbids unless every candidate
// in a column is disabled.
type Panel struct {
	cfg    timepicker.PanelConfig
	layout timepicker.Layout
	units  []timepicker.Unit
	column int
	cur    time.Time
	keys   KeyMap
}

func NewPanel(cfg timepicker.PanelConfig) Panel {
	p := Panel{keys: DefaultKeyMap}
	p.Configure(cfg)
	return p
}

// Configure applies a new panel configuration and re-snaps the selection.
func (p *Panel) Configure(cfg timepicker.PanelConfig) {
	p.cfg = cfg
	p.units = nil
	layout, err := timepicker.CompileFormat(cfg.Format)
	if err != nil {
		layout, _ = timepicker.CompileFormat(timepicker.DefaultFormat)
	}
	p.layout = layout
	for _, u := range []timepicker.Unit{timepicker.Hour, timepicker.Minute, timepicker.Second, timepicker.Meridiem} {
		if layout.Has(u) {
			p.units = append(p.units, u)
		}
	}
	if len(p.units) == 0 {
		p.units = append(p.units, timepicker.Hour)
	}
	if p.column >= len(p.units) {
		p.column = 0
	}
	p.SetTime(p.cur)
}

// SetValue positions the panel on a formatted value; unparseable or empty
// values start at midnight.
func (p *Panel) SetValue(text string) {
	t, err := p.layout.Parse(text)
	if err != nil {
		t = timepicker.Clock(0, 0, 0, 0)
	}
	p.SetTime(t)
}

// SetTime positions the panel on t, snapped down to the configured steps.
// Units the format does not render are zeroed.
func (p *Panel) SetTime(t time.Time) {
	snapped := timepicker.Clock(0, 0, 0, 0)
	for _, u := range p.units {
		if u == timepicker.Meridiem {
			continue
		}
		v := u.Get(t)
		v -= v % p.cfg.Steps.Step(u)
		snapped = u.Set(snapped, v)
	}
	p.cur = snapped
	for _, u := range p.units {
		if p.cfg.DisableTime.Disabled(p.cur) {
			p.shift(u, 1)
		}
	}
}

func (p Panel) Time() time.Time { return p.cur }

// Value is the selection rendered in the configured format.
func (p Panel) Value() string {
	return p.layout.Render(p.cur)
}

// Column returns the unit under the column cursor.
func (p Panel) Column() timepicker.Unit { return p.units[p.column] }

// candidates are the values column u can step through. On a 12-hour clock
// the hour column stays within the current half of the day.
func (p Panel) candidates(u timepicker.Unit) []int {
	all := p.cfg.Steps.Values(u)
	if u != timepicker.Hour || !p.layout.TwelveHour() {
		return all
	}
	half := timepicker.Meridiem.Get(p.cur)
	out := all[:0:0]
	for _, v := range all {
		if v/12 == half {
			out = append(out, v)
		}
	}
	return out
}

// label renders one column cell the way the format shows that unit.
func (p Panel) label(u timepicker.Unit, v int) string {
	switch {
	case u == timepicker.Meridiem:
		text := "AM"
		if v == 1 {
			text = "PM"
		}
		if strings.Contains(p.layout.Format(), "a") {
			text = strings.ToLower(text)
		}
		return text
	case u == timepicker.Hour && p.layout.TwelveHour():
		if v%12 == 0 {
			return "12"
		}
		return fmt.Sprintf("%02d", v%12)
	}
	return fmt.Sprintf("%02d", v)
}

type option struct {
	value    int
	disabled bool
}

// options lists what column u offers given the rest of the selection.
func (p Panel) options(u timepicker.Unit) []option {
	var out []option
	for _, v := range p.candidates(u) {
		disabled := p.cfg.DisableTime.Disabled(u.Set(p.cur, v))
		if disabled && p.cfg.HideDisabledTime {
			continue
		}
		out = append(out, option{value: v, disabled: disabled})
	}
	return out
}

// shift moves unit u by delta enabled options, wrapping around. It reports
// whether the selection changed.
func (p *Panel) shift(u timepicker.Unit, delta int) bool {
	all := p.candidates(u)
	if len(all) == 0 {
		return false
	}
	idx := 0
	cur := u.Get(p.cur)
	for i, v := range all {
		if v <= cur {
			idx = i
		}
	}
	dir := 1
	if delta < 0 {
		dir = -1
		delta = -delta
	}
	for moved := 0; moved < delta; moved++ {
		found := false
		for tries := 0; tries < len(all); tries++ {
			idx = (idx + dir + len(all)) % len(all)
			if !p.cfg.DisableTime.Disabled(u.Set(p.cur, all[idx])) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	next := u.Set(p.cur, all[idx])
	if next.Equal(p.cur) {
		return false
	}
	p.cur = next
	return true
}

// Update moves the column cursor or the selection. It reports whether the
// selected time changed.
func (p *Panel) Update(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, p.keys.Prev):
		p.column = (p.column + len(p.units) - 1) % len(p.units)
	case key.Matches(msg, p.keys.Next):
		p.column = (p.column + 1) % len(p.units)
	case key.Matches(msg, p.keys.Up):
		return p.shift(p.Column(), -1)
	case key.Matches(msg, p.keys.Down):
		return p.shift(p.Column(), 1)
	}
	return false
}

// View renders the columns. active marks whether key input goes here.
func (p Panel) View(active bool) string {
	cols := make([]string, 0, len(p.units))
	for i, u := range p.units {
		cols = append(cols, p.columnView(u, active && i == p.column))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (p Panel) columnView(u timepicker.Unit, active bool) string {
	opts := p.options(u)
	cur := u.Get(p.cur)
	sel := 0
	for i, o := range opts {
		if o.value <= cur {
			sel = i
		}
	}
	title := strings.ToUpper(u.String()[:1])
	if u == timepicker.Meridiem {
		title = "A"
	}
	lines := []string{columnTitleStyle.Render(title)}
	for row := sel - panelRows/2; row <= sel+panelRows/2; row++ {
		if row < 0 || row >= len(opts) {
			lines = append(lines, cellStyle.Render("  "))
			continue
		}
		o := opts[row]
		text := p.label(u, o.value)
		switch {
		case row == sel && active:
			lines = append(lines, cellActiveStyle.Render(text))
		case row == sel:
			lines = append(lines, cellSelectedStyle.Render(text))
		case o.disabled:
			lines = append(lines, cellDisabledStyle.Render(text))
		default:
			lines = append(lines, cellStyle.Render(text))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
