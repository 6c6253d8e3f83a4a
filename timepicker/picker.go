// Package timepicker holds the state behind a time picker and a time range
// picker: the committed value, its format, validation of typed input, and
// whether the selection panel is open. It renders nothing. A UI layer feeds
// user events into the On* methods and draws from Snapshot.
//
// Pickers are not safe for concurrent use; every handler is expected to run
// on the single goroutine that owns the UI.
package timepicker

import (
	"time"

	"github.com/andareed/siftly-timepick/logging"
)

// Picker is a single time picker.
type Picker struct {
	props Props
	value TimeValue
	vis   Visibility
}

// New returns a closed picker. An uncontrolled picker starts at its Default.
func New(props Props) *Picker {
	p := &Picker{props: props}
	if u, ok := props.Value.(Uncontrolled[TimeValue]); ok {
		p.value = u.Default
	}
	return p
}

// SetProps replaces the host-supplied props. Visibility and the uncontrolled
// value are kept.
func (p *Picker) SetProps(props Props) { p.props = props }

// Props returns the effective props with defaults applied.
func (p *Picker) Props() Props { return p.props.Resolve() }

// Value is the effective value: the host's when controlled, otherwise the
// last committed one.
func (p *Picker) Value() TimeValue {
	return Resolve(p.Props().Value, p.value)
}

// Visibility reports whether the panel is open.
func (p *Picker) Visibility() VisibilityState { return p.vis.State() }

func (p *Picker) commit(r Props, v TimeValue) {
	if !IsControlled(r.Value) {
		p.value = v
	}
	r.OnChange(v)
}

// OnInputChange handles text typed into the input. Valid text is committed in
// canonical form; anything else is dropped without notifying the host. It
// reports whether a commit happened.
func (p *Picker) OnInputChange(raw string) bool {
	r := p.Props()
	if r.Disabled || !r.AllowInput {
		return false
	}
	if !ValidateInputValue(raw, r.Format) {
		logging.Debugf("timepicker: dropped input %q (format %s)", raw, r.Format)
		return false
	}
	p.commit(r, TimeOf(FormatInputValue(raw, r.Format)))
	return true
}

// OnPanelChange commits a provisional value while the user moves through the
// panel.
func (p *Picker) OnPanelChange(t time.Time) {
	r := p.Props()
	if r.Disabled {
		return
	}
	p.commit(r, TimeOf(FormatTime(t, r.Format)))
}

// OnPanelConfirm commits the panel's final value and closes the panel. The
// panel only produces legal values, so nothing is validated, and neither
// OnOpen nor OnClose fires.
func (p *Picker) OnPanelConfirm(t time.Time) {
	r := p.Props()
	if r.Disabled {
		return
	}
	p.commit(r, TimeOf(FormatTime(t, r.Format)))
	p.vis.ForceClose()
}

// OnClear commits NoTime. The returned suppressBubbling is true when the
// gesture was consumed; the caller must then not let the same gesture reach
// the visibility toggle.
func (p *Picker) OnClear() (suppressBubbling bool) {
	r := p.Props()
	if r.Disabled || !r.Clearable {
		return false
	}
	p.commit(r, NoTime())
	return true
}

// OnVisibilityChange applies an open/close request from the input. Opening is
// refused while disabled; closing is always honoured.
func (p *Picker) OnVisibilityChange(visible bool, ctx VisibilityContext) {
	r := p.Props()
	if visible && r.Disabled {
		return
	}
	p.vis.Change(visible, ctx, r.OnOpen, r.OnClose)
}

func (p *Picker) OnBlur(ctx FocusContext)  { p.Props().OnBlur(ctx) }
func (p *Picker) OnFocus(ctx FocusContext) { p.Props().OnFocus(ctx) }

// Snapshot is a read-only view of a Picker for rendering.
type Snapshot struct {
	Value    TimeValue
	Display  string
	HasValue bool
	// Placeholder is empty while a value is shown.
	Placeholder string
	Clearable   bool
	Disabled    bool
	AllowInput  bool
	Open        bool
	Panel       PanelConfig
}

func (p *Picker) Snapshot() Snapshot {
	r := p.Props()
	v := Resolve(r.Value, p.value)
	s := Snapshot{
		Value:      v,
		Display:    v.String(),
		HasValue:   v.IsSet(),
		Clearable:  r.Clearable,
		Disabled:   r.Disabled,
		AllowInput: r.AllowInput,
		Open:       p.vis.IsOpen(),
		Panel: PanelConfig{
			Format:           r.Format,
			Steps:            r.Steps,
			DisableTime:      r.DisableTime,
			HideDisabledTime: *r.HideDisabledTime,
		},
	}
	if !s.HasValue {
		s.Placeholder = r.Placeholder
	}
	return s
}
