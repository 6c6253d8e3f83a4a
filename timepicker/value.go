package timepicker

// TimeValue is a single formatted time, or no selection.
type TimeValue struct {
	text string
	set  bool
}

// NoTime is the empty selection committed by a clear.
func NoTime() TimeValue { return TimeValue{} }

// TimeOf wraps an already formatted time string.
func TimeOf(text string) TimeValue { return TimeValue{text: text, set: true} }

func (v TimeValue) IsSet() bool { return v.set }

// String returns the formatted time, or "" when nothing is selected.
func (v TimeValue) String() string { return v.text }

// RangeValue is an atomic start/end pair of formatted times, or no selection.
type RangeValue struct {
	start string
	end   string
	set   bool
}

// NoRange is the empty range committed by a clear.
func NoRange() RangeValue { return RangeValue{} }

// RangeOf wraps two already formatted times.
func RangeOf(start, end string) RangeValue {
	return RangeValue{start: start, end: end, set: true}
}

func (r RangeValue) IsSet() bool   { return r.set }
func (r RangeValue) Start() string { return r.start }
func (r RangeValue) End() string   { return r.end }

// Pair returns the endpoints, or nil when no range is selected.
func (r RangeValue) Pair() []string {
	if !r.set {
		return nil
	}
	return []string{r.start, r.end}
}

// String joins the endpoints for display; "" when no range is selected.
func (r RangeValue) String() string {
	if !r.set {
		return ""
	}
	return r.start + rangeSeparator + r.end
}

const rangeSeparator = " - "

// Source says where a picker's value comes from: Controlled (owned by the
// host) or Uncontrolled (kept by the picker itself).
type Source[T any] interface {
	resolve(internal T) T
	controlled() bool
}

// Controlled pins the value to one the host owns.
type Controlled[T any] struct{ Value T }

func (c Controlled[T]) resolve(T) T      { return c.Value }
func (c Controlled[T]) controlled() bool { return true }

// Uncontrolled lets the picker keep committed values itself, starting from
// Default.
type Uncontrolled[T any] struct{ Default T }

func (Uncontrolled[T]) resolve(internal T) T { return internal }
func (Uncontrolled[T]) controlled() bool     { return false }

// Resolve returns the effective value for src. A nil source is uncontrolled.
func Resolve[T any](src Source[T], internal T) T {
	if src == nil {
		return internal
	}
	return src.resolve(internal)
}

// IsControlled reports whether src pins the value.
func IsControlled[T any](src Source[T]) bool {
	return src != nil && src.controlled()
}
