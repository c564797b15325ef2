package chrono

import (
	"errors"
	"time"

	"github.com/tartampluch/go-chrono/internal/config"
)

var errOffsetRange = errors.New(config.ErrOffsetRange)

// Offset is a fixed UTC offset parsed from "±HH:MM". Named zones are not supported.
type Offset struct {
	name    string
	seconds int
	loc     *time.Location
}

// UTC is the zero offset.
var UTC = Offset{name: "+00:00", loc: time.UTC}

// ParseOffset parses a fixed offset such as "+05:30" or "-08:00".
// Anything else fails with ErrInvalidTimezoneFormat; there is no fallback offset.
func ParseOffset(tz string) (Offset, error) {
	t, err := time.Parse(config.LayoutOffset, tz)
	if err != nil {
		return Offset{}, newError(ErrInvalidTimezoneFormat, tz, "", err)
	}

	// time.Parse tolerates "24" hours and "60" minutes.
	_, secs := t.Zone()
	d := time.Duration(secs) * time.Second
	if d <= -config.MaxOffset || d >= config.MaxOffset || tz[len(tz)-2] > '5' {
		return Offset{}, newError(ErrInvalidTimezoneFormat, tz, "", errOffsetRange)
	}

	return Offset{name: tz, seconds: secs, loc: time.FixedZone(tz, secs)}, nil
}

// Seconds returns the offset east of UTC in seconds.
func (o Offset) Seconds() int {
	return o.seconds
}

// Location returns a fixed zone named after the offset.
func (o Offset) Location() *time.Location {
	if o.loc == nil {
		return time.UTC
	}
	return o.loc
}

func (o Offset) String() string {
	if o.name == "" {
		return UTC.name
	}
	return o.name
}
