package chrono

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-chrono/internal/config"
	"gopkg.in/yaml.v3"
)

var (
	errScanType = errors.New(config.ErrScanType)
	errScanNull = errors.New(config.ErrScanNull)
	errYAMLKind = errors.New(config.ErrYAMLKind)
)

// -----------------------------------------------------------------------------
// Instant
// -----------------------------------------------------------------------------

// MarshalText encodes the instant as RFC 3339 with nanoseconds.
func (i Instant) MarshalText() ([]byte, error) {
	if i.t.After(maxInstant) {
		return nil, newError(ErrInvalidTime, i.String(), "", nil)
	}
	return []byte(i.String()), nil
}

// UnmarshalText decodes an RFC 3339 instant.
func (i *Instant) UnmarshalText(b []byte) error {
	t, err := time.Parse(config.LayoutRFC3339, string(b))
	if err != nil {
		return newError(ErrInvalidTimeFormat, string(b), "", err)
	}
	*i = FromTime(t)
	return nil
}

// Value implements driver.Valuer. Instants are stored as RFC 3339 text.
func (i Instant) Value() (driver.Value, error) {
	b, err := i.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for time.Time, string and []byte columns.
func (i *Instant) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*i = FromTime(v)
		return nil
	case string:
		return i.UnmarshalText([]byte(v))
	case []byte:
		return i.UnmarshalText(v)
	case nil:
		return newError(ErrInvalidTime, "", "", errScanNull)
	default:
		return newError(ErrInvalidTime, fmt.Sprintf("%T", src), "", errScanType)
	}
}

// -----------------------------------------------------------------------------
// Span
// -----------------------------------------------------------------------------

// MarshalText encodes the span in its human-readable form.
func (s Span) MarshalText() ([]byte, error) {
	return []byte(s.HumanReadable()), nil
}

// UnmarshalText decodes a human-readable span.
func (s *Span) UnmarshalText(b []byte) error {
	v, err := ParseSpan(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML renders the span as a human-readable scalar.
func (s Span) MarshalYAML() (any, error) {
	return s.HumanReadable(), nil
}

// UnmarshalYAML accepts "1h 30m" style strings and bare integers (seconds).
func (s *Span) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return newError(ErrParse, node.Value, "", errYAMLKind)
	}
	if node.Tag == "!!int" {
		var secs uint64
		if err := node.Decode(&secs); err != nil {
			return newError(ErrParse, node.Value, "", err)
		}
		*s = FromSeconds(secs)
		return nil
	}
	return s.UnmarshalText([]byte(node.Value))
}

// Value implements driver.Valuer. Spans are stored as integer nanoseconds.
func (s Span) Value() (driver.Value, error) {
	return int64(s.d), nil
}

// Scan implements sql.Scanner for integer nanosecond columns.
func (s *Span) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		span, err := FromDuration(time.Duration(v))
		if err != nil {
			return err
		}
		*s = span
		return nil
	case nil:
		return newError(ErrParse, "", "", errScanNull)
	default:
		return newError(ErrParse, fmt.Sprintf("%T", src), "", errScanType)
	}
}

// ISO8601 renders the span as an RFC 5545 duration value such as "PT1H30M".
func (s Span) ISO8601() string {
	prop := ical.NewProp(config.PropDuration)
	prop.SetDuration(s.d)
	return prop.Value
}

// ParseISO8601 reads an RFC 5545 duration value. Negative durations fail
// with ErrUnderflow.
func ParseISO8601(input string) (Span, error) {
	prop := ical.NewProp(config.PropDuration)
	prop.Value = input
	d, err := prop.Duration()
	if err != nil {
		return Span{}, newError(ErrParse, input, "", err)
	}
	return FromDuration(d)
}
