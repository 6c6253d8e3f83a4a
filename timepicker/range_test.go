package timepicker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangePickerConfirm(t *testing.T) {
	var got []RangeValue
	closes := 0
	p := NewRange(RangeProps{
		OnChange: func(v RangeValue) { got = append(got, v) },
		OnClose:  func(VisibilityContext) { closes++ },
	})
	p.OnVisibilityChange(true, VisibilityContext{})

	p.OnPanelConfirm(RangeOf("09:00:00", "17:00:00"))

	require.Len(t, got, 1)
	assert.Equal(t, []string{"09:00:00", "17:00:00"}, got[0].Pair())
	assert.Equal(t, Closed, p.Visibility())
	assert.Zero(t, closes)
}

func TestRangePickerConfirmKeepsPairAsGiven(t *testing.T) {
	var got []RangeValue
	p := NewRange(RangeProps{OnChange: func(v RangeValue) { got = append(got, v) }})

	// no re-validation: whatever the panel hands over is committed
	p.OnPanelConfirm(RangeOf("18:00", "08:00"))

	require.Len(t, got, 1)
	assert.Equal(t, "18:00", got[0].Start())
	assert.Equal(t, "08:00", got[0].End())
}

func TestRangePickerClear(t *testing.T) {
	var got []RangeValue
	p := NewRange(RangeProps{Clearable: true, OnChange: func(v RangeValue) { got = append(got, v) }})
	p.OnPanelChange(RangeOf("09:00:00", "10:00:00"))
	p.OnVisibilityChange(true, VisibilityContext{})
	got = nil

	assert.True(t, p.OnClear())

	assert.Equal(t, []RangeValue{NoRange()}, got)
	assert.Nil(t, got[0].Pair())
	assert.Equal(t, Open, p.Visibility())
	assert.False(t, p.Value().IsSet())
}

func TestRangePickerSnapshot(t *testing.T) {
	p := NewRange(RangeProps{Placeholder: "Pick a window"})

	s := p.Snapshot()
	assert.False(t, s.HasValue)
	assert.Empty(t, s.Display)
	assert.Equal(t, "Pick a window", s.Placeholder)

	p.OnPanelConfirm(RangeOf("09:00:00", "17:00:00"))
	s = p.Snapshot()
	assert.True(t, s.HasValue)
	assert.Equal(t, "09:00:00 - 17:00:00", s.Display)
	assert.Empty(t, s.Placeholder)
}

func TestRangePickerControlled(t *testing.T) {
	host := RangeOf("01:00:00", "02:00:00")
	p := NewRange(RangeProps{Value: Controlled[RangeValue]{Value: host}})

	p.OnPanelConfirm(RangeOf("03:00:00", "04:00:00"))

	assert.Equal(t, host, p.Value())
}

func TestRangePickerDisabled(t *testing.T) {
	calls := 0
	p := NewRange(RangeProps{Disabled: true, Clearable: true, OnChange: func(RangeValue) { calls++ }})

	p.OnVisibilityChange(true, VisibilityContext{})
	p.OnPanelConfirm(RangeOf("01:00:00", "02:00:00"))
	assert.False(t, p.OnClear())

	assert.Zero(t, calls)
	assert.Equal(t, Closed, p.Visibility())
}

func TestRangePickerUncontrolledDefault(t *testing.T) {
	p := NewRange(RangeProps{Value: Uncontrolled[RangeValue]{Default: RangeOf("09:00:00", "17:00:00")}})

	assert.Equal(t, "09:00:00 - 17:00:00", p.Snapshot().Display)
	assert.True(t, p.Snapshot().HasValue)
}
