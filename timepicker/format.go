package timepicker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-timepick/logging"
)

// DefaultFormat is used whenever a picker is configured without a format.
const DefaultFormat = "HH:mm:ss"

// ErrUnsupportedFormat is returned by CompileFormat for formats containing
// tokens or literals that have no Go layout equivalent.
var ErrUnsupportedFormat = errors.New("unsupported time format")

// formatTokens maps picker format tokens onto Go reference-time fragments.
// Longer tokens come first so "HH" wins over "H" and "ss" over "s".
var formatTokens = []struct {
	token  string
	layout string
	unit   Unit
}{
	{"SSS", "000", Millisecond},
	{"HH", "15", Hour},
	{"hh", "03", Hour},
	{"mm", "04", Minute},
	{"ss", "05", Second},
	{"H", "15", Hour},
	{"h", "3", Hour},
	{"m", "4", Minute},
	{"s", "5", Second},
	{"A", "PM", Meridiem},
	{"a", "pm", Meridiem},
}

// literals allowed verbatim. Letters and digits are refused since Go would
// read them as parts of the reference time.
const formatLiterals = " :.,-/"

// Layout is a compiled picker format.
type Layout struct {
	format   string
	layout   string
	segments []segment
	units    [unitCount]bool
	twelve   bool
}

// segment is a run of the Go layout rendered in one call. Go has no
// unpadded 24-hour directive, so "H" gets a segment of its own.
type segment struct {
	layout string
	hour24 bool
}

// CompileFormat translates a picker format such as "HH:mm:ss" or "hh:mm A"
// into a Go layout.
func CompileFormat(format string) (Layout, error) {
	if format == "" {
		format = DefaultFormat
	}
	l := Layout{format: format}
	var b, seg strings.Builder
	flush := func() {
		if seg.Len() > 0 {
			l.segments = append(l.segments, segment{layout: seg.String()})
			seg.Reset()
		}
	}
	rest := format
	for rest != "" {
		matched := false
		for _, tok := range formatTokens {
			if !strings.HasPrefix(rest, tok.token) {
				continue
			}
			if tok.unit == Millisecond {
				out := b.String()
				if out == "" || (out[len(out)-1] != '.' && out[len(out)-1] != ',') {
					return Layout{}, fmt.Errorf("%w: %q must follow '.' or ','", ErrUnsupportedFormat, tok.token)
				}
			}
			b.WriteString(tok.layout)
			if tok.token == "H" {
				flush()
				l.segments = append(l.segments, segment{hour24: true})
			} else {
				seg.WriteString(tok.layout)
			}
			if tok.token == "h" || tok.token == "hh" {
				l.twelve = true
			}
			l.units[tok.unit] = true
			rest = rest[len(tok.token):]
			matched = true
			break
		}
		if matched {
			continue
		}
		if !strings.ContainsRune(formatLiterals, rune(rest[0])) {
			return Layout{}, fmt.Errorf("%w: unexpected %q in %q", ErrUnsupportedFormat, rest[0], format)
		}
		b.WriteByte(rest[0])
		seg.WriteByte(rest[0])
		rest = rest[1:]
	}
	flush()
	l.layout = b.String()
	return l, nil
}

// Format returns the picker format the layout was compiled from.
func (l Layout) Format() string { return l.format }

// TwelveHour reports whether hours render on a 12-hour clock.
func (l Layout) TwelveHour() bool { return l.twelve }

// Has reports whether the format renders the given unit.
func (l Layout) Has(u Unit) bool {
	if u < 0 || u >= unitCount {
		return false
	}
	return l.units[u]
}

// Parse reads raw strictly: it must parse and re-serialize to exactly raw.
func (l Layout) Parse(raw string) (time.Time, error) {
	t, err := time.Parse(l.layout, raw)
	if err != nil {
		return time.Time{}, err
	}
	if got := t.Format(l.layout); got != raw {
		return time.Time{}, fmt.Errorf("%q is not in canonical %q form (want %q)", raw, l.format, got)
	}
	return t, nil
}

// Render serializes t under the layout.
func (l Layout) Render(t time.Time) string {
	var b strings.Builder
	for _, seg := range l.segments {
		if seg.hour24 {
			b.WriteString(strconv.Itoa(t.Hour()))
			continue
		}
		b.WriteString(t.Format(seg.layout))
	}
	return b.String()
}

// widthSamples cover the longest rendering of every token: two-digit hours
// on both clocks, two-digit minutes and seconds, and PM.
var widthSamples = []time.Time{
	Clock(23, 59, 59, 999),
	Clock(12, 59, 59, 999),
	Clock(11, 59, 59, 999),
}

// MaxWidth is the length of the longest value the layout can render.
func (l Layout) MaxWidth() int {
	w := 0
	for _, t := range widthSamples {
		w = max(w, len(l.Render(t)))
	}
	return w
}

// InputWidth returns how many characters a typed value under format may
// need, using DefaultFormat when format cannot be compiled.
func InputWidth(format string) int {
	l, err := CompileFormat(format)
	if err != nil {
		l, _ = CompileFormat(DefaultFormat)
	}
	return l.MaxWidth()
}

// ValidateInputValue reports whether raw is a strictly parseable time under format.
// Partial input ("12:30" for HH:mm:ss), unpadded fields where padding is
// required, and trailing text are all rejected.
func ValidateInputValue(raw, format string) bool {
	l, err := CompileFormat(format)
	if err != nil {
		logging.Debugf("timepicker: validate %q: %v", raw, err)
		return false
	}
	_, err = l.Parse(raw)
	return err == nil
}

// FormatInputValue re-serializes a validated raw string in canonical form.
// Unvalidated input is returned unchanged.
func FormatInputValue(raw, format string) string {
	l, err := CompileFormat(format)
	if err != nil {
		return raw
	}
	t, err := time.Parse(l.layout, raw)
	if err != nil {
		return raw
	}
	return l.Render(t)
}

// FormatTime serializes t under format, falling back to DefaultFormat when
// format cannot be compiled.
func FormatTime(t time.Time, format string) string {
	l, err := CompileFormat(format)
	if err != nil {
		logging.Warnf("timepicker: %v, formatting with %s", err, DefaultFormat)
		l, _ = CompileFormat(DefaultFormat)
	}
	return l.Render(t)
}

// ParseTime strictly parses raw under format.
func ParseTime(raw, format string) (time.Time, error) {
	l, err := CompileFormat(format)
	if err != nil {
		return time.Time{}, err
	}
	return l.Parse(raw)
}
