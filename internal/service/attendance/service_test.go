package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStamp_Defaults(t *testing.T) {
	now := time.Date(2024, 6, 3, 9, 7, 42, 0, time.UTC)

	date, clock, err := resolveStamp("", "", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, "09:07", clock)
}

func TestResolveStamp_Overrides(t *testing.T) {
	now := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	date, clock, err := resolveStamp("2024-06-01", "18:30", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, "18:30", clock)
}

func TestResolveStamp_InvalidDate(t *testing.T) {
	_, _, err := resolveStamp("01-06-2024", "", time.Now())
	assert.Error(t, err)
}

func TestClockTime(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	at, err := clockTime(date, "12:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 3, 12, 30, 0, 0, time.UTC), at)

	_, err = clockTime(date, "25:00")
	assert.Error(t, err)
}

func TestFoldBreak(t *testing.T) {
	start := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 45, foldBreak(15, start, start.Add(30*time.Minute)))
	// A break end before its start contributes nothing.
	assert.Equal(t, 15, foldBreak(15, start, start.Add(-10*time.Minute)))
	// The daily total never exceeds one day.
	assert.Equal(t, 1440, foldBreak(1430, start, start.Add(2*time.Hour)))
}

// A forwarded check-out closes an open break at the forwarded stamp, not at
// the moment the server happens to process the request.
func TestFoldBreak_ForwardedCheckOutStamp(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	breakStart := date.Add(12 * time.Hour)

	checkOutAt, err := clockTime(date, "12:30")
	require.NoError(t, err)

	assert.Equal(t, 30, foldBreak(0, breakStart, checkOutAt))
}
