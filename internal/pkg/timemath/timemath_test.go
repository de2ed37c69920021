package timemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Parallel()

	minutes, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, minutes)

	minutes, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)

	minutes, err = ParseClock("23:59")
	require.NoError(t, err)
	assert.Equal(t, 1439, minutes)
}

func TestParseClock_Invalid(t *testing.T) {
	t.Parallel()

	for _, clock := range []string{"24:00", "9:00", "09:60", "0900", "", "twelve"} {
		_, err := ParseClock(clock)
		assert.ErrorIs(t, err, ErrInvalidClock, "clock %q", clock)
	}
}

func TestWorkedMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		checkIn      string
		checkOut     string
		breakMinutes int
		want         int
	}{
		{"standard day with lunch", "09:00", "18:00", 60, 480},
		{"overnight shift", "22:00", "06:00", 0, 480},
		{"overnight shift with break", "22:00", "07:00", 60, 480},
		{"break exceeds shift", "09:00", "09:30", 60, 0},
		{"zero-length shift", "09:00", "09:00", 0, 0},
		{"missing check-in", "", "18:00", 0, 0},
		{"missing check-out", "09:00", "", 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := WorkedMinutes(tt.checkIn, tt.checkOut, tt.breakMinutes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkedMinutes_NeverNegative(t *testing.T) {
	t.Parallel()

	for _, breakMinutes := range []int{0, 30, 480, 1440} {
		got, err := WorkedMinutes("13:00", "14:00", breakMinutes)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0)
	}
}

func TestWorkedMinutes_Invalid(t *testing.T) {
	t.Parallel()

	_, err := WorkedMinutes("9:00", "18:00", 0)
	assert.ErrorIs(t, err, ErrInvalidClock)

	_, err = WorkedMinutes("09:00", "18:00", -1)
	assert.Error(t, err)
}
