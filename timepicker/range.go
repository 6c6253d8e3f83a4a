package timepicker

// RangePicker is a start/end time range picker. Its input is read-only: values
// only change through the panel or a clear.
type RangePicker struct {
	props RangeProps
	value RangeValue
	vis   Visibility
}

// NewRange returns a closed range picker. An uncontrolled picker starts at
// its Default.
func NewRange(props RangeProps) *RangePicker {
	p := &RangePicker{props: props}
	if u, ok := props.Value.(Uncontrolled[RangeValue]); ok {
		p.value = u.Default
	}
	return p
}

func (p *RangePicker) SetProps(props RangeProps) { p.props = props }
func (p *RangePicker) Props() RangeProps         { return p.props.Resolve() }

func (p *RangePicker) Value() RangeValue {
	return Resolve(p.Props().Value, p.value)
}

func (p *RangePicker) Visibility() VisibilityState { return p.vis.State() }

func (p *RangePicker) commit(r RangeProps, v RangeValue) {
	if !IsControlled(r.Value) {
		p.value = v
	}
	r.OnChange(v)
}

// OnPanelChange commits the pair the panel currently shows.
func (p *RangePicker) OnPanelChange(v RangeValue) {
	r := p.Props()
	if r.Disabled {
		return
	}
	p.commit(r, v)
}

// OnPanelConfirm commits the panel's pair as given and closes silently.
func (p *RangePicker) OnPanelConfirm(v RangeValue) {
	r := p.Props()
	if r.Disabled {
		return
	}
	p.commit(r, v)
	p.vis.ForceClose()
}

// OnClear commits NoRange; see Picker.OnClear for the return value.
func (p *RangePicker) OnClear() (suppressBubbling bool) {
	r := p.Props()
	if r.Disabled || !r.Clearable {
		return false
	}
	p.commit(r, NoRange())
	return true
}

func (p *RangePicker) OnVisibilityChange(visible bool, ctx VisibilityContext) {
	r := p.Props()
	if visible && r.Disabled {
		return
	}
	p.vis.Change(visible, ctx, r.OnOpen, r.OnClose)
}

func (p *RangePicker) OnBlur(ctx FocusContext)  { p.Props().OnBlur(ctx) }
func (p *RangePicker) OnFocus(ctx FocusContext) { p.Props().OnFocus(ctx) }

// RangeSnapshot is a read-only view of a RangePicker. HasValue is reported
// separately from Display so an input can tell "empty" from "set".
type RangeSnapshot struct {
	Value       RangeValue
	Display     string
	HasValue    bool
	Placeholder string
	Clearable   bool
	Disabled    bool
	Open        bool
	Panel       PanelConfig
}

func (p *RangePicker) Snapshot() RangeSnapshot {
	r := p.Props()
	v := Resolve(r.Value, p.value)
	s := RangeSnapshot{
		Value:     v,
		Display:   v.String(),
		HasValue:  v.IsSet(),
		Clearable: r.Clearable,
		Disabled:  r.Disabled,
		Open:      p.vis.IsOpen(),
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
