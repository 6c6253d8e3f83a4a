package timepicker

import (
	"fmt"
	"time"
)

// Unit identifies one field of a time value. Meridiem is 0 before noon and
// 1 after.
type Unit int

const (
	Hour Unit = iota
	Minute
	Second
	Millisecond
	Meridiem
	unitCount
)

func (u Unit) String() string {
	switch u {
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case Second:
		return "second"
	case Millisecond:
		return "millisecond"
	case Meridiem:
		return "meridiem"
	default:
		return fmt.Sprintf("unit(%d)", int(u))
	}
}

// Limit is the exclusive upper bound of the unit's values.
func (u Unit) Limit() int {
	switch u {
	case Hour:
		return 24
	case Minute, Second:
		return 60
	case Millisecond:
		return 1000
	case Meridiem:
		return 2
	default:
		return 0
	}
}

// Get extracts the unit's value from t.
func (u Unit) Get(t time.Time) int {
	switch u {
	case Hour:
		return t.Hour()
	case Minute:
		return t.Minute()
	case Second:
		return t.Second()
	case Millisecond:
		return t.Nanosecond() / int(time.Millisecond)
	case Meridiem:
		return t.Hour() / 12
	default:
		return 0
	}
}

// Set returns t with the unit replaced by v.
func (u Unit) Set(t time.Time, v int) time.Time {
	h, m, s, ms := t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond)
	switch u {
	case Hour:
		h = v
	case Minute:
		m = v
	case Second:
		s = v
	case Millisecond:
		ms = v
	case Meridiem:
		h = h%12 + 12*v
	}
	return Clock(h, m, s, ms)
}

// Clock builds a time-of-day on the zero date used by Go's time-only layouts.
func Clock(hour, minute, second, millisecond int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, second, millisecond*int(time.Millisecond), time.UTC)
}

// Steps holds the hour, minute and second granularity offered by a panel.
type Steps [3]int

// DefaultSteps allows every hour, minute and second.
var DefaultSteps = Steps{1, 1, 1}

// IsZero reports whether no steps were configured.
func (s Steps) IsZero() bool { return s == Steps{} }

// Step returns the step for u. Non-positive entries count as 1.
func (s Steps) Step(u Unit) int {
	if u < Hour || u > Second || s[u] <= 0 {
		return 1
	}
	return s[u]
}

// Values enumerates the values a panel column may offer for u.
func (s Steps) Values(u Unit) []int {
	limit := u.Limit()
	step := s.Step(u)
	out := make([]int, 0, limit/step+1)
	for v := 0; v < limit; v += step {
		out = append(out, v)
	}
	return out
}

func (s Steps) String() string {
	return fmt.Sprintf("%d,%d,%d", s[0], s[1], s[2])
}
