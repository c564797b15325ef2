package chrono

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/tartampluch/go-chrono/internal/config"
)

var (
	// epoch is the lower bound of every epoch-relative operation.
	epoch = time.Unix(0, 0).UTC()

	// maxInstant is the last instant with a four-digit year.
	maxInstant = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
)

// MaxEpochSeconds is the largest value accepted by FromEpochSeconds.
var MaxEpochSeconds = uint64(maxInstant.Unix())

// FallbackPatterns is the ordered list tried by ParseAny. The first pattern
// that parses wins; RFC 3339 is tried after all of them.
var FallbackPatterns = []string{
	config.PatternOffset,
	config.PatternOffsetNanos,
	config.PatternISOOffset,
	config.PatternISOOffsetNanos,
}

// Civil is the UTC calendar breakdown of an Instant.
type Civil struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Instant is a wall-clock point in time, held in UTC.
//
// The zero value is 0001-01-01T00:00:00Z, which predates the epoch:
// Timestamp and Format reject it.
type Instant struct {
	t     time.Time
	civil Civil
}

// Now captures the current time from clock. A nil clock reads the system clock.
func Now(clock Clock) Instant {
	if clock == nil {
		clock = RealClock{}
	}
	return FromTime(clock.Now())
}

// FromTime converts t to an Instant, dropping its zone and monotonic reading.
// The calendar breakdown is computed here, once.
func FromTime(t time.Time) Instant {
	t = t.Round(0).UTC()
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return Instant{
		t: t,
		civil: Civil{
			Year:       year,
			Month:      month,
			Day:        day,
			Hour:       hour,
			Minute:     minute,
			Second:     second,
			Nanosecond: t.Nanosecond(),
		},
	}
}

// FromEpochSeconds returns the instant s seconds after the epoch.
func FromEpochSeconds(s uint64) (Instant, error) {
	if s > MaxEpochSeconds {
		return Instant{}, newError(ErrInvalidTime, strconv.FormatUint(s, 10), "", nil)
	}
	return FromTime(time.Unix(int64(s), 0)), nil
}

// Time returns the underlying UTC time.
func (i Instant) Time() time.Time {
	return i.t
}

// Civil returns the UTC calendar breakdown computed at construction.
func (i Instant) Civil() Civil {
	return i.civil
}

// Timestamp returns whole seconds since the epoch.
func (i Instant) Timestamp() (uint64, error) {
	if err := i.check(); err != nil {
		return 0, err
	}
	return uint64(i.t.Unix()), nil
}

// Format renders the instant in UTC.
func (i Instant) Format(pattern string) (string, error) {
	return i.render(pattern, UTC)
}

// FormatWithTimezone renders the instant shifted into the fixed offset tz.
func (i Instant) FormatWithTimezone(pattern, tz string) (string, error) {
	off, err := ParseOffset(tz)
	if err != nil {
		return "", err
	}
	return i.render(pattern, off)
}

// ToTimezone renders the instant in tz with PatternDisplay.
func (i Instant) ToTimezone(tz string) (string, error) {
	return i.FormatWithTimezone(config.PatternDisplay, tz)
}

func (i Instant) render(pattern string, off Offset) (string, error) {
	if err := i.check(); err != nil {
		return "", err
	}
	f, err := compile(pattern)
	if err != nil {
		return "", newError(ErrInvalidTimeFormat, "", pattern, err)
	}
	return f.FormatString(i.t.In(off.Location())), nil
}

// AddDuration returns the instant moved forward by s.
func (i Instant) AddDuration(s Span) Instant {
	return FromTime(i.t.Add(s.d))
}

// SubDuration returns the instant moved backward by s. The result may
// predate the epoch; epoch-relative operations on it fail with ErrInvalidTime.
func (i Instant) SubDuration(s Span) Instant {
	return FromTime(i.t.Add(-s.d))
}

// Before reports whether i is before o.
func (i Instant) Before(o Instant) bool { return i.t.Before(o.t) }

// After reports whether i is after o.
func (i Instant) After(o Instant) bool { return i.t.After(o.t) }

// Equal reports whether i and o are the same instant.
func (i Instant) Equal(o Instant) bool { return i.t.Equal(o.t) }

// String returns the RFC 3339 rendering, which also covers pre-epoch instants.
func (i Instant) String() string {
	return i.t.Format(config.LayoutRFC3339)
}

// check enforces the epoch-relative range.
func (i Instant) check() error {
	if i.t.Before(epoch) || i.t.After(maxInstant) {
		return newError(ErrInvalidTime, i.String(), "", nil)
	}
	return nil
}

// Parse reads input with a strftime pattern. Without %z the input is UTC.
func Parse(input, pattern string) (Instant, error) {
	layout, err := layoutFor(pattern)
	if err != nil {
		return Instant{}, newError(ErrInvalidTimeFormat, input, pattern, err)
	}
	t, err := time.Parse(layout, input)
	if err != nil {
		return Instant{}, newError(ErrInvalidTimeFormat, input, pattern, err)
	}
	return FromTime(t), nil
}

// ParseAny tries FallbackPatterns in order, then RFC 3339.
func ParseAny(input string) (Instant, error) {
	for _, p := range FallbackPatterns {
		if inst, err := Parse(input, p); err == nil {
			return inst, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return FromTime(t), nil
	}

	slog.Debug(config.MsgParseExhaust,
		config.LogKeyComponent, config.CompChrono,
		config.LogKeyInput, input)
	return Instant{}, newError(ErrParse, input, "", nil)
}
