package chrono_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-chrono/internal/chrono"
)

func TestParseOffset(t *testing.T) {
	tests := []struct {
		input   string
		seconds int
	}{
		{"+05:30", 19800},
		{"-08:00", -28800},
		{"+00:00", 0},
		{"-00:30", -1800},
		{"+23:59", 86340},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			off, err := chrono.ParseOffset(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.seconds, off.Seconds())
			assert.Equal(t, tt.input, off.String())

			_, secs := mustEpoch(t, 0).Time().In(off.Location()).Zone()
			assert.Equal(t, tt.seconds, secs)
		})
	}
}

func TestParseOffset_Invalid(t *testing.T) {
	for _, input := range []string{"not-a-tz", "", "Z", "UTC", "+5:30", "05:30", "+0530", "+24:00", "-24:00", "+05:60", "+05:30 ", "Asia/Kolkata"} {
		t.Run(input, func(t *testing.T) {
			_, err := chrono.ParseOffset(input)
			assert.ErrorIs(t, err, chrono.ErrInvalidTimezoneFormat)
		})
	}
}

func TestOffset_ZeroValue(t *testing.T) {
	var off chrono.Offset
	assert.Equal(t, "+00:00", off.String())
	assert.Equal(t, 0, off.Seconds())
	assert.NotNil(t, off.Location())
}
