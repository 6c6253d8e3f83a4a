package timepicker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	changes []TimeValue
	opens   []VisibilityContext
	closes  []VisibilityContext
	blurs   []FocusContext
	focuses []FocusContext
}

func (r *recorder) props(p Props) Props {
	p.OnChange = func(v TimeValue) { r.changes = append(r.changes, v) }
	p.OnOpen = func(c VisibilityContext) { r.opens = append(r.opens, c) }
	p.OnClose = func(c VisibilityContext) { r.closes = append(r.closes, c) }
	p.OnBlur = func(c FocusContext) { r.blurs = append(r.blurs, c) }
	p.OnFocus = func(c FocusContext) { r.focuses = append(r.focuses, c) }
	return p
}

func TestPickerInputCommitsValidText(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{AllowInput: true}))

	assert.True(t, p.OnInputChange("12:30:00"))
	require.Len(t, rec.changes, 1)
	assert.Equal(t, TimeOf("12:30:00"), rec.changes[0])
	assert.Equal(t, "12:30:00", p.Value().String())
}

func TestPickerInputDropsIncompleteText(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{AllowInput: true}))

	for _, raw := range []string{"1", "12", "12:", "12:3", "12:30", "12:30:"} {
		assert.False(t, p.OnInputChange(raw), raw)
	}
	assert.Empty(t, rec.changes)
	assert.False(t, p.Value().IsSet())
}

func TestPickerInputRequiresAllowInput(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{}))

	assert.False(t, p.OnInputChange("12:30:00"))
	assert.Empty(t, rec.changes)
}

func TestPickerInputUsesConfiguredFormat(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{AllowInput: true, Format: "hh:mm A"}))

	assert.False(t, p.OnInputChange("21:15:00"))
	assert.True(t, p.OnInputChange("09:15 PM"))
	require.Len(t, rec.changes, 1)
	assert.Equal(t, "09:15 PM", rec.changes[0].String())
}

func TestPickerPanelConfirmFormatsAndCloses(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{Format: "HH:mm"}))
	p.OnVisibilityChange(true, VisibilityContext{Trigger: TriggerInput})
	require.Equal(t, Open, p.Visibility())

	p.OnPanelConfirm(Clock(9, 5, 30, 0))

	require.Len(t, rec.changes, 1)
	assert.Equal(t, "09:05", rec.changes[0].String())
	assert.Equal(t, Closed, p.Visibility())
	assert.Len(t, rec.opens, 1)
	assert.Empty(t, rec.closes, "confirm closes without OnClose")
}

func TestPickerPanelConfirmWhenClosed(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{}))

	p.OnPanelConfirm(Clock(17, 0, 0, 0))

	assert.Equal(t, []TimeValue{TimeOf("17:00:00")}, rec.changes)
	assert.Equal(t, Closed, p.Visibility())
	assert.Empty(t, rec.opens)
	assert.Empty(t, rec.closes)
}

func TestPickerPanelChangeCommitsLive(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{}))
	p.OnVisibilityChange(true, VisibilityContext{})

	p.OnPanelChange(Clock(1, 0, 0, 0))
	p.OnPanelChange(Clock(2, 0, 0, 0))

	assert.Equal(t, []TimeValue{TimeOf("01:00:00"), TimeOf("02:00:00")}, rec.changes)
	assert.Equal(t, Open, p.Visibility())
}

func TestPickerClear(t *testing.T) {
	for _, open := range []bool{false, true} {
		rec := &recorder{}
		p := New(rec.props(Props{Clearable: true, AllowInput: true}))
		require.True(t, p.OnInputChange("08:00:00"))
		if open {
			p.OnVisibilityChange(true, VisibilityContext{})
		}
		before := p.Visibility()
		rec.changes = nil

		assert.True(t, p.OnClear())

		assert.Equal(t, []TimeValue{NoTime()}, rec.changes)
		assert.Equal(t, before, p.Visibility(), "clear leaves visibility alone")
		assert.False(t, p.Value().IsSet())
	}
}

func TestPickerClearNeedsClearable(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{}))

	assert.False(t, p.OnClear())
	assert.Empty(t, rec.changes)
}

func TestPickerVisibilityCallbacks(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{}))
	openCtx := VisibilityContext{Trigger: TriggerInput}
	closeCtx := VisibilityContext{Trigger: TriggerOutside}

	p.OnVisibilityChange(true, openCtx)
	p.OnVisibilityChange(false, closeCtx)

	assert.Equal(t, []VisibilityContext{openCtx}, rec.opens)
	assert.Equal(t, []VisibilityContext{closeCtx}, rec.closes)
	assert.Equal(t, Closed, p.Visibility())
	assert.Empty(t, rec.changes)
}

func TestPickerControlledValue(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{AllowInput: true, Value: Controlled[TimeValue]{Value: TimeOf("10:00:00")}}))

	require.True(t, p.OnInputChange("11:00:00"))

	assert.Equal(t, []TimeValue{TimeOf("11:00:00")}, rec.changes)
	assert.Equal(t, "10:00:00", p.Value().String(), "host owns the value until it re-renders")

	p.SetProps(rec.props(Props{AllowInput: true, Value: Controlled[TimeValue]{Value: TimeOf("11:00:00")}}))
	assert.Equal(t, "11:00:00", p.Value().String())
}

func TestPickerDisabled(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{Disabled: true, Clearable: true, AllowInput: true}))

	assert.False(t, p.OnInputChange("12:00:00"))
	assert.False(t, p.OnClear())
	p.OnPanelChange(Clock(1, 0, 0, 0))
	p.OnPanelConfirm(Clock(1, 0, 0, 0))
	p.OnVisibilityChange(true, VisibilityContext{})

	assert.Empty(t, rec.changes)
	assert.Empty(t, rec.opens)
	assert.Equal(t, Closed, p.Visibility())
}

func TestPickerFocusForwarding(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{}))

	p.OnFocus(FocusContext{Input: "a"})
	p.OnBlur(FocusContext{Input: "b"})

	assert.Equal(t, []FocusContext{{Input: "a"}}, rec.focuses)
	assert.Equal(t, []FocusContext{{Input: "b"}}, rec.blurs)

	// no callbacks configured
	bare := New(Props{})
	assert.NotPanics(t, func() {
		bare.OnFocus(FocusContext{})
		bare.OnBlur(FocusContext{})
		bare.OnVisibilityChange(true, VisibilityContext{})
		bare.OnPanelConfirm(Clock(0, 0, 0, 0))
	})
}

func TestPickerSnapshot(t *testing.T) {
	p := New(Props{Clearable: true, AllowInput: true, Steps: Steps{1, 5, 10}})

	s := p.Snapshot()
	assert.False(t, s.HasValue)
	assert.Equal(t, DefaultPlaceholder, s.Placeholder)
	assert.Equal(t, "", s.Display)
	assert.True(t, s.Clearable)
	assert.True(t, s.AllowInput)
	assert.False(t, s.Open)
	assert.Equal(t, DefaultFormat, s.Panel.Format)
	assert.Equal(t, Steps{1, 5, 10}, s.Panel.Steps)
	assert.True(t, s.Panel.HideDisabledTime)

	p.OnPanelConfirm(Clock(6, 30, 0, 0))
	s = p.Snapshot()
	assert.True(t, s.HasValue)
	assert.Equal(t, "06:30:00", s.Display)
	assert.Empty(t, s.Placeholder)
}

func TestPickerUncontrolledDefault(t *testing.T) {
	rec := &recorder{}
	p := New(rec.props(Props{Value: Uncontrolled[TimeValue]{Default: TimeOf("06:00:00")}, Clearable: true}))

	assert.Equal(t, "06:00:00", p.Value().String())
	assert.Empty(t, rec.changes, "seeding is not a commit")

	p.OnPanelConfirm(Clock(7, 0, 0, 0))
	assert.Equal(t, "07:00:00", p.Value().String())
	p.OnClear()
	assert.False(t, p.Value().IsSet(), "a clear does not fall back to the default")
}
