package timepicker

// DefaultPlaceholder is shown while nothing is selected.
const DefaultPlaceholder = "Select time"

// Trigger names what caused a popup visibility change.
type Trigger int

const (
	TriggerInput Trigger = iota
	TriggerKeyboard
	TriggerOutside
)

func (t Trigger) String() string {
	switch t {
	case TriggerInput:
		return "input"
	case TriggerKeyboard:
		return "keyboard"
	case TriggerOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// VisibilityContext travels with OnOpen and OnClose.
type VisibilityContext struct {
	Trigger Trigger
}

// FocusContext travels with OnFocus and OnBlur.
type FocusContext struct {
	// Input is the text shown in the input when the event fired.
	Input string
}

// Props configures a single time picker.
type Props struct {
	Value            Source[TimeValue]
	Format           string
	Steps            Steps
	DisableTime      DisableTime
	HideDisabledTime *bool // nil means true
	Clearable        bool
	Disabled         bool
	AllowInput       bool
	Placeholder      string

	OnChange func(TimeValue)
	OnOpen   func(VisibilityContext)
	OnClose  func(VisibilityContext)
	OnBlur   func(FocusContext)
	OnFocus  func(FocusContext)
}

// Resolve fills every unset option with its default. It is idempotent.
func (p Props) Resolve() Props {
	if p.Value == nil {
		p.Value = Uncontrolled[TimeValue]{}
	}
	p.Format = resolveFormat(p.Format)
	p.Steps = resolveSteps(p.Steps)
	p.HideDisabledTime = resolveHide(p.HideDisabledTime)
	if p.Placeholder == "" {
		p.Placeholder = DefaultPlaceholder
	}
	if p.OnChange == nil {
		p.OnChange = func(TimeValue) {}
	}
	p.OnOpen, p.OnClose = resolveVisibilityCallbacks(p.OnOpen, p.OnClose)
	p.OnBlur, p.OnFocus = resolveFocusCallbacks(p.OnBlur, p.OnFocus)
	return p
}

// RangeProps configures a time range picker. Range input is read-only, so
// there is no AllowInput.
type RangeProps struct {
	Value            Source[RangeValue]
	Format           string
	Steps            Steps
	DisableTime      DisableTime
	HideDisabledTime *bool // nil means true
	Clearable        bool
	Disabled         bool
	Placeholder      string

	OnChange func(RangeValue)
	OnOpen   func(VisibilityContext)
	OnClose  func(VisibilityContext)
	OnBlur   func(FocusContext)
	OnFocus  func(FocusContext)
}

// Resolve fills every unset option with its default. It is idempotent.
func (p RangeProps) Resolve() RangeProps {
	if p.Value == nil {
		p.Value = Uncontrolled[RangeValue]{}
	}
	p.Format = resolveFormat(p.Format)
	p.Steps = resolveSteps(p.Steps)
	p.HideDisabledTime = resolveHide(p.HideDisabledTime)
	if p.Placeholder == "" {
		p.Placeholder = DefaultPlaceholder
	}
	if p.OnChange == nil {
		p.OnChange = func(RangeValue) {}
	}
	p.OnOpen, p.OnClose = resolveVisibilityCallbacks(p.OnOpen, p.OnClose)
	p.OnBlur, p.OnFocus = resolveFocusCallbacks(p.OnBlur, p.OnFocus)
	return p
}

// Bool returns a pointer to b, for HideDisabledTime.
func Bool(b bool) *bool { return &b }

func resolveFormat(f string) string {
	if f == "" {
		return DefaultFormat
	}
	return f
}

func resolveSteps(s Steps) Steps {
	if s.IsZero() {
		return DefaultSteps
	}
	return s
}

func resolveHide(h *bool) *bool {
	if h == nil {
		return Bool(true)
	}
	return h
}

func resolveVisibilityCallbacks(onOpen, onClose func(VisibilityContext)) (func(VisibilityContext), func(VisibilityContext)) {
	if onOpen == nil {
		onOpen = func(VisibilityContext) {}
	}
	if onClose == nil {
		onClose = func(VisibilityContext) {}
	}
	return onOpen, onClose
}

func resolveFocusCallbacks(blur, focus func(FocusContext)) (func(FocusContext), func(FocusContext)) {
	if blur == nil {
		blur = func(FocusContext) {}
	}
	if focus == nil {
		focus = func(FocusContext) {}
	}
	return blur, focus
}

// PanelConfig is what a panel needs to offer legal values.
type PanelConfig struct {
	Format           string
	Steps            Steps
	DisableTime      DisableTime
	HideDisabledTime bool
}
