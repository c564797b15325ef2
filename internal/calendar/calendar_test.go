package calendar_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-chrono/internal/calendar"
	"github.com/tartampluch/go-chrono/internal/chrono"
	"github.com/tartampluch/go-chrono/internal/config"
)

var (
	start = chrono.FromTime(time.Date(2023, 10, 27, 8, 0, 0, 0, time.UTC))
	stamp = chrono.FromTime(time.Date(2023, 10, 27, 7, 59, 0, 0, time.UTC))
)

func TestEncode_DecodeRoundTrip(t *testing.T) {
	events := []*ical.Event{
		calendar.Event("Next two hours", start, chrono.FromSeconds(7200)),
		calendar.Event("Stand-up", start.AddDuration(chrono.FromSeconds(86400)), chrono.FromSeconds(900)),
	}

	data, err := calendar.Encode(stamp, events...)
	require.NoError(t, err)

	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "PRODID:"+config.ICalProdid)
	assert.Contains(t, ics, "DTSTART:20231027T080000Z")
	assert.Contains(t, ics, "DTSTAMP:20231027T075900Z")
	assert.Contains(t, ics, "DURATION:")
	assert.Equal(t, 2, strings.Count(ics, "BEGIN:VEVENT"))

	windows, err := calendar.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, windows, 2)

	assert.Equal(t, "Next two hours", windows[0].Summary)
	assert.True(t, windows[0].Start.Equal(start))
	assert.Equal(t, uint64(7200), windows[0].Length.AsSeconds())
	assert.True(t, windows[0].End().Equal(start.AddDuration(chrono.FromSeconds(7200))))

	assert.Equal(t, "Stand-up", windows[1].Summary)
	assert.Equal(t, uint64(900), windows[1].Length.AsSeconds())
}

func TestEncode_NoEventsReturnsStub(t *testing.T) {
	data, err := calendar.Encode(stamp)
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))

	windows, err := calendar.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Empty(t, windows)
}

func TestUID_IsDeterministic(t *testing.T) {
	a := calendar.UID("Next two hours", start, chrono.FromSeconds(7200))
	b := calendar.UID("Next two hours", start, chrono.FromSeconds(7200))
	c := calendar.UID("Next two hours", start, chrono.FromSeconds(3600))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 36)

	data, err := calendar.Encode(stamp, calendar.Event("Next two hours", start, chrono.FromSeconds(7200)))
	require.NoError(t, err)
	windows, err := calendar.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, a, windows[0].UID)
}

func TestDecode_Errors(t *testing.T) {
	const noStart = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:x\r\n" +
		"BEGIN:VEVENT\r\nUID:1\r\nDTSTAMP:20231027T075900Z\r\nSUMMARY:x\r\nEND:VEVENT\r\n" +
		"END:VCALENDAR\r\n"
	const negative = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:x\r\n" +
		"BEGIN:VEVENT\r\nUID:1\r\nDTSTAMP:20231027T075900Z\r\nDTSTART:20231027T080000Z\r\nDURATION:-PT1H\r\nEND:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"garbage", "not a calendar", nil},
		{"missing start", noStart, nil},
		{"negative duration", negative, chrono.ErrUnderflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calendar.Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestDecode_MissingDurationIsZeroLength(t *testing.T) {
	const ics = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:x\r\n" +
		"BEGIN:VEVENT\r\nUID:1\r\nDTSTAMP:20231027T075900Z\r\nDTSTART:20231027T080000Z\r\nEND:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	windows, err := calendar.Decode(strings.NewReader(ics))
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.True(t, windows[0].Length.IsZero())
	assert.True(t, windows[0].End().Equal(start))
}
