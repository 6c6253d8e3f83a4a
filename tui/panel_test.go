package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-timepick/timepicker"
)

func TestPanelColumnsFollowFormat(t *testing.T) {
	p := NewPanel(timepicker.PanelConfig{Format: "HH:mm", Steps: timepicker.DefaultSteps})
	assert.Equal(t, []timepicker.Unit{timepicker.Hour, timepicker.Minute}, p.units)

	p.Configure(timepicker.PanelConfig{Format: "HH:mm:ss", Steps: timepicker.DefaultSteps})
	assert.Len(t, p.units, 3)
}

func TestPanelStepsAndWrap(t *testing.T) {
	p := NewPanel(timepicker.PanelConfig{Format: "HH:mm", Steps: timepicker.Steps{1, 15, 1}})

	p.Update(keyMsg("right"))
	assert.Equal(t, timepicker.Minute, p.Column())
	assert.True(t, p.Update(keyMsg("down")))
	assert.Equal(t, "00:15", p.Value())

	p.Update(keyMsg("up"))
	assert.True(t, p.Update(keyMsg("up")))
	assert.Equal(t, "00:45", p.Value(), "moving up from the first value wraps")

	p.Update(keyMsg("right"))
	assert.Equal(t, timepicker.Hour, p.Column(), "column cursor wraps")
	assert.False(t, p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}))
}

func TestPanelSnapsToSteps(t *testing.T) {
	p := NewPanel(timepicker.PanelConfig{Format: "HH:mm:ss", Steps: timepicker.Steps{2, 15, 30}})

	p.SetValue("11:37:45")

	assert.Equal(t, "10:30:30", p.Value())
}

func TestPanelSkipsDisabledTimes(t *testing.T) {
	disable, err := timepicker.CompileDisableExpr("hour < 9 || hour > 17")
	require.NoError(t, err)
	cfg := timepicker.PanelConfig{
		Format:           "HH:mm",
		Steps:            timepicker.DefaultSteps,
		DisableTime:      disable,
		HideDisabledTime: true,
	}
	p := NewPanel(cfg)

	assert.Equal(t, 9, p.Time().Hour(), "start moves to the first enabled hour")
	assert.Len(t, p.options(timepicker.Hour), 9)

	p.Update(keyMsg("up"))
	assert.Equal(t, 17, p.Time().Hour(), "wraps past disabled hours")

	cfg.HideDisabledTime = false
	p.Configure(cfg)
	opts := p.options(timepicker.Hour)
	require.Len(t, opts, 24)
	assert.True(t, opts[0].disabled)
	assert.False(t, opts[9].disabled)
}

func TestPanelView(t *testing.T) {
	p := NewPanel(timepicker.PanelConfig{Format: "HH:mm:ss", Steps: timepicker.DefaultSteps})
	p.SetValue("07:08:09")

	view := p.View(true)

	for _, want := range []string{"H", "M", "S", "07", "08", "09"} {
		assert.Contains(t, view, want)
	}
}

func TestPanelTwelveHourClock(t *testing.T) {
	p := NewPanel(timepicker.PanelConfig{Format: "hh:mm A", Steps: timepicker.DefaultSteps})
	assert.Equal(t, []timepicker.Unit{timepicker.Hour, timepicker.Minute, timepicker.Meridiem}, p.units)

	p.SetValue("01:00 PM")
	assert.Equal(t, 13, p.Time().Hour())
	assert.Equal(t, "01:00 PM", p.Value())
	assert.Len(t, p.options(timepicker.Hour), 12, "hours stay in the current half of the day")

	view := p.View(false)
	assert.Contains(t, view, "PM")
	assert.Contains(t, view, "01")
	assert.NotContains(t, view, "13")

	assert.True(t, p.Update(keyMsg("up")))
	assert.Equal(t, "12:00 PM", p.Value())
	assert.True(t, p.Update(keyMsg("up")))
	assert.Equal(t, "11:00 PM", p.Value(), "hour wraps within PM")

	p.Update(keyMsg("left"))
	assert.Equal(t, timepicker.Meridiem, p.Column())
	assert.True(t, p.Update(keyMsg("down")))
	assert.Equal(t, "11:00 AM", p.Value())
	assert.Equal(t, 11, p.Time().Hour())
}

func TestPanelLowerCaseMeridiem(t *testing.T) {
	p := NewPanel(timepicker.PanelConfig{Format: "h:mm a", Steps: timepicker.DefaultSteps})
	p.SetValue("9:30 am")

	view := p.View(true)
	assert.Contains(t, view, "am")
	assert.Contains(t, view, "09")
}
