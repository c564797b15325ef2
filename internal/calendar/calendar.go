package calendar

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/tartampluch/go-chrono/internal/chrono"
	"github.com/tartampluch/go-chrono/internal/config"
)

// uidNamespace scopes every generated UID to this application.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(config.ICalDomain))

// Window is a span of time anchored at an instant, as read back from a VEVENT.
type Window struct {
	UID     string
	Summary string
	Start   chrono.Instant
	Length  chrono.Span
}

// End returns the instant the window closes.
func (w Window) End() chrono.Instant {
	return w.Start.AddDuration(w.Length)
}

// UID derives a stable identifier from the window's content, so that
// re-exporting the same window does not create a duplicate in calendar clients.
func UID(summary string, start chrono.Instant, length chrono.Span) string {
	input := fmt.Sprintf(config.FormatUIDInput, summary, start, length.AsNanos())
	return uuid.NewSHA1(uidNamespace, []byte(input)).String()
}

// Event builds a VEVENT starting at start and lasting length.
func Event(summary string, start chrono.Instant, length chrono.Span) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, UID(summary, start, length))
	event.Props.SetText(config.PropSummary, summary)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDateTime(start.Time())
	event.Props.Set(dtStartProp)

	durationProp := ical.NewProp(config.PropDuration)
	durationProp.SetDuration(length.Duration())
	event.Props.Set(durationProp)

	return event
}

// Encode writes a VCALENDAR holding events, each stamped with stamp.
// Without events, a minimal valid calendar is returned.
func Encode(stamp chrono.Instant, events ...*ical.Event) ([]byte, error) {
	if len(events) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(stamp.Time())

	for _, e := range events {
		e.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, e.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCalendarBuilt,
		config.LogKeyComponent, config.CompCalendar,
		config.LogKeyEvents, len(events),
	)
	return buf.Bytes(), nil
}

// Decode reads every VEVENT of a single VCALENDAR back into windows.
// An event without DURATION is a zero-length window.
func Decode(r io.Reader) ([]Window, error) {
	cal, err := ical.NewDecoder(r).Decode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalDecode, err)
	}

	var windows []Window
	for _, event := range cal.Events() {
		w, err := decodeEvent(event)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

func decodeEvent(event ical.Event) (Window, error) {
	var w Window

	start := event.Props.Get(config.PropDTStart)
	if start == nil {
		return w, fmt.Errorf("%s: %s", config.ErrICalMissing, config.PropDTStart)
	}
	t, err := start.DateTime(time.UTC)
	if err != nil {
		return w, fmt.Errorf("%s: %w", config.ErrICalDecode, err)
	}
	w.Start = chrono.FromTime(t)

	if p := event.Props.Get(config.PropDuration); p != nil {
		d, err := p.Duration()
		if err != nil {
			return w, fmt.Errorf("%s: %w", config.ErrICalDecode, err)
		}
		if w.Length, err = chrono.FromDuration(d); err != nil {
			return w, fmt.Errorf("%s: %w", config.ErrICalDecode, err)
		}
	}

	if p := event.Props.Get(config.PropUID); p != nil {
		w.UID = p.Value
	}
	if p := event.Props.Get(config.PropSummary); p != nil {
		if w.Summary, err = p.Text(); err != nil {
			return w, fmt.Errorf("%s: %w", config.ErrICalDecode, err)
		}
	}
	return w, nil
}
