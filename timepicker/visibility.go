package timepicker

// VisibilityState is whether the selection panel is shown.
type VisibilityState int

const (
	Closed VisibilityState = iota
	Open
)

func (s VisibilityState) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Visibility owns the open/closed state of one picker's panel. The zero
// value is Closed.
type Visibility struct {
	state VisibilityState
}

func (v *Visibility) State() VisibilityState { return v.state }
func (v *Visibility) IsOpen() bool           { return v.state == Open }

// Change applies a visibility request from the input and fires onOpen or
// onClose for the requested direction. Every signal fires its callback,
// including a repeat of the current state.
func (v *Visibility) Change(visible bool, ctx VisibilityContext, onOpen, onClose func(VisibilityContext)) {
	if visible {
		v.state = Open
		if onOpen != nil {
			onOpen(ctx)
		}
		return
	}
	v.state = Closed
	if onClose != nil {
		onClose(ctx)
	}
}

// ForceClose closes without firing any callback. Used by panel confirm.
func (v *Visibility) ForceClose() {
	v.state = Closed
}
