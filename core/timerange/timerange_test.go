package timerange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeISORange(t *testing.T) {
	// Berlin is UTC+2 in August (CEST).
	from, to, err := MakeISORange("2025-08-28", "00:00:00", "2025-08-28", "23:59:59", "Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-27T22:00:00Z", from)
	assert.Equal(t, "2025-08-28T21:59:59Z", to)
}

func TestMakeISORangeShortClock(t *testing.T) {
	from, _, err := MakeISORange("2025-01-15", "08:30", "2025-01-15", "09:00", "Europe/Berlin")
	require.NoError(t, err)
	// CET in January, UTC+1.
	assert.Equal(t, "2025-01-15T07:30:00Z", from)
}

func TestMakeISORangeDefaultsTimezone(t *testing.T) {
	from, _, err := MakeISORange("2025-01-15", "12:00:00", "2025-01-15", "13:00:00", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-15T11:00:00Z", from)
}

func TestMakeISORangeErrors(t *testing.T) {
	_, _, err := MakeISORange("2025-08-28", "00:00:00", "2025-08-28", "23:59:59", "Mars/Olympus")
	assert.Error(t, err)

	_, _, err = MakeISORange("not-a-date", "00:00:00", "2025-08-28", "23:59:59", "Europe/Berlin")
	assert.Error(t, err)

	_, _, err = MakeISORange("2025-08-28", "noon", "2025-08-28", "23:59:59", "Europe/Berlin")
	assert.Error(t, err)
}

func TestParseISO(t *testing.T) {
	got, err := ParseISO("2025-08-27T22:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 27, 22, 0, 0, 0, time.UTC), got)

	got, err = ParseISO("2025-08-28T00:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 8, 27, 22, 0, 0, 0, time.UTC), got)

	_, err = ParseISO("yesterday")
	assert.Error(t, err)
}

func TestNowISOUTC(t *testing.T) {
	s := NowISOUTC()
	_, err := ParseISO(s)
	assert.NoError(t, err)
}
