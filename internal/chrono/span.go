package chrono

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/tartampluch/go-chrono/internal/config"
)

// Span is a non-negative elapsed time with nanosecond precision.
// The zero value is an empty span.
type Span struct {
	d time.Duration
}

// MaxSpan is the longest representable span (about 292 years).
var MaxSpan = Span{d: math.MaxInt64}

// Component is one "value unit" pair of a human-readable span.
type Component struct {
	Unit  string
	Value uint64
}

// unitSizes lists the rendering units, greatest first.
var unitSizes = []struct {
	unit string
	size time.Duration
}{
	{config.UnitYear, config.Year},
	{config.UnitWeek, config.Week},
	{config.UnitDay, config.Day},
	{config.UnitHour, time.Hour},
	{config.UnitMinute, time.Minute},
	{config.UnitSecond, time.Second},
	{config.UnitMillisecond, time.Millisecond},
	{config.UnitMicrosecond, time.Microsecond},
	{config.UnitNanosecond, time.Nanosecond},
}

// unitAliases maps every accepted spelling to its unit size.
var unitAliases = map[string]time.Duration{
	"ns": time.Nanosecond, "nsec": time.Nanosecond, "nanos": time.Nanosecond,
	"nanosecond": time.Nanosecond, "nanoseconds": time.Nanosecond,

	"us": time.Microsecond, "µs": time.Microsecond, "usec": time.Microsecond,
	"micros": time.Microsecond, "microsecond": time.Microsecond, "microseconds": time.Microsecond,

	"ms": time.Millisecond, "msec": time.Millisecond, "millis": time.Millisecond,
	"millisecond": time.Millisecond, "milliseconds": time.Millisecond,

	"s": time.Second, "sec": time.Second, "secs": time.Second,
	"second": time.Second, "seconds": time.Second,

	"m": time.Minute, "min": time.Minute, "mins": time.Minute,
	"minute": time.Minute, "minutes": time.Minute,

	"h": time.Hour, "hr": time.Hour, "hrs": time.Hour,
	"hour": time.Hour, "hours": time.Hour,

	"d": config.Day, "day": config.Day, "days": config.Day,
	"w": config.Week, "week": config.Week, "weeks": config.Week,
	"y": config.Year, "year": config.Year, "years": config.Year,
}

var (
	errEmptyInput    = errors.New(config.ErrEmptyInput)
	errMissingUnit   = errors.New(config.ErrMissingUnit)
	errMissingNumber = errors.New(config.ErrMissingNumber)
	errUnknownUnit   = errors.New(config.ErrUnknownUnit)
)

// FromSeconds returns a span of n seconds, saturating at MaxSpan.
func FromSeconds(n uint64) Span { return fromUnits(n, time.Second) }

// FromMillis returns a span of n milliseconds, saturating at MaxSpan.
func FromMillis(n uint64) Span { return fromUnits(n, time.Millisecond) }

// FromMicros returns a span of n microseconds, saturating at MaxSpan.
func FromMicros(n uint64) Span { return fromUnits(n, time.Microsecond) }

// FromNanos returns a span of n nanoseconds, saturating at MaxSpan.
func FromNanos(n uint64) Span { return fromUnits(n, time.Nanosecond) }

// FromDuration converts d, failing with ErrUnderflow when d is negative.
func FromDuration(d time.Duration) (Span, error) {
	if d < 0 {
		return Span{}, fmt.Errorf("%w: %s", ErrUnderflow, d)
	}
	return Span{d: d}, nil
}

func fromUnits(n uint64, unit time.Duration) Span {
	v, ok := mulUnits(n, unit)
	if !ok {
		return MaxSpan
	}
	return Span{d: v}
}

// mulUnits returns n*unit, or false when it does not fit.
func mulUnits(n uint64, unit time.Duration) (time.Duration, bool) {
	if n > uint64(math.MaxInt64/int64(unit)) {
		return 0, false
	}
	return time.Duration(n) * unit, true
}

// ParseSpan parses a composite human duration such as "2h 30m" or "1h30m15s".
func ParseSpan(input string) (Span, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Span{}, newError(ErrParse, input, "", errEmptyInput)
	}

	var total time.Duration
	for s != "" {
		digits := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
		if digits == -1 {
			return Span{}, newError(ErrParse, input, "", errMissingUnit)
		}
		if digits == 0 {
			return Span{}, newError(ErrParse, input, "", errMissingNumber)
		}
		n, err := strconv.ParseUint(s[:digits], 10, 64)
		if err != nil {
			return Span{}, newError(ErrParse, input, "", err)
		}
		s = strings.TrimLeftFunc(s[digits:], unicode.IsSpace)

		end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
		if end == -1 {
			end = len(s)
		}
		name := strings.ToLower(s[:end])
		s = strings.TrimLeftFunc(s[end:], unicode.IsSpace)

		if name == "" {
			return Span{}, newError(ErrParse, input, "", errMissingUnit)
		}
		unit, ok := unitAliases[name]
		if !ok {
			return Span{}, newError(ErrParse, input, "", fmt.Errorf("%w: %q", errUnknownUnit, name))
		}

		v, ok := mulUnits(n, unit)
		if !ok || total > math.MaxInt64-v {
			return Span{}, newError(ErrOverflow, input, "", nil)
		}
		total += v
	}
	return Span{d: total}, nil
}

// Add returns s+o, failing with ErrOverflow past MaxSpan.
func (s Span) Add(o Span) (Span, error) {
	if s.d > math.MaxInt64-o.d {
		return Span{}, fmt.Errorf("%w: %s + %s", ErrOverflow, s, o)
	}
	return Span{d: s.d + o.d}, nil
}

// Sub returns s-o, failing with ErrUnderflow when o is longer than s.
func (s Span) Sub(o Span) (Span, error) {
	if o.d > s.d {
		return Span{}, fmt.Errorf("%w: %s - %s", ErrUnderflow, s, o)
	}
	return Span{d: s.d - o.d}, nil
}

// Mul returns s*n, failing with ErrOverflow past MaxSpan.
func (s Span) Mul(n uint32) (Span, error) {
	if n != 0 && s.d > math.MaxInt64/time.Duration(n) {
		return Span{}, fmt.Errorf("%w: %s * %d", ErrOverflow, s, n)
	}
	return Span{d: s.d * time.Duration(n)}, nil
}

// Div returns s/n truncated to the nanosecond.
func (s Span) Div(n uint32) (Span, error) {
	if n == 0 {
		return Span{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, s)
	}
	return Span{d: s.d / time.Duration(n)}, nil
}

// TruncateToSeconds drops the sub-second part (floor, not nearest).
func (s Span) TruncateToSeconds() Span {
	return Span{d: s.d.Truncate(time.Second)}
}

// AsSeconds returns whole seconds, truncated.
func (s Span) AsSeconds() uint64 { return uint64(s.d / time.Second) }

// AsMillis returns whole milliseconds, truncated.
func (s Span) AsMillis() uint64 { return uint64(s.d / time.Millisecond) }

// AsMicros returns whole microseconds, truncated.
func (s Span) AsMicros() uint64 { return uint64(s.d / time.Microsecond) }

// AsNanos returns the span in nanoseconds.
func (s Span) AsNanos() uint64 { return uint64(s.d) }

// Duration returns the span as a time.Duration.
func (s Span) Duration() time.Duration { return s.d }

// IsZero reports whether the span is empty.
func (s Span) IsZero() bool { return s.d == 0 }

// Compare returns -1, 0 or +1 depending on whether s is shorter, equal or longer than o.
func (s Span) Compare(o Span) int {
	switch {
	case s.d < o.d:
		return -1
	case s.d > o.d:
		return 1
	}
	return 0
}

// Equal reports whether s and o have the same magnitude.
func (s Span) Equal(o Span) bool { return s.d == o.d }

// Less reports whether s is shorter than o.
func (s Span) Less(o Span) bool { return s.d < o.d }

// Components splits the span into non-zero units, greatest first.
func (s Span) Components() []Component {
	var parts []Component
	rest := s.d
	for _, u := range unitSizes {
		if n := rest / u.size; n > 0 {
			parts = append(parts, Component{Unit: u.unit, Value: uint64(n)})
			rest -= n * u.size
		}
	}
	return parts
}

// HumanReadable renders the span compactly, e.g. "1h 30m" or "2s 500ms".
// The empty span renders as "0s".
func (s Span) HumanReadable() string {
	parts := s.Components()
	if len(parts) == 0 {
		return config.SpanZero
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strconv.FormatUint(p.Value, 10) + p.Unit
	}
	return strings.Join(out, config.SpanSeparator)
}

func (s Span) String() string {
	return s.HumanReadable()
}
