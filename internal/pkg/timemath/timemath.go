package timemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

const minutesPerDay = 1440

var ErrInvalidClock = errors.New("invalid clock time, expected zero-padded HH:MM")

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock converts a zero-padded 24-hour "HH:MM" string into minutes
// since midnight.
func ParseClock(clock string) (int, error) {
	m := clockRegex.FindStringSubmatch(clock)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes, nil
}

// WorkedMinutes returns the minutes worked between check-in and check-out,
// minus break minutes. A check-out earlier than the check-in is treated as
// an overnight shift crossing midnight. The result is never negative.
//
// Either clock missing means the record is incomplete and counts as zero
// worked minutes; callers should not bill incomplete records.
func WorkedMinutes(checkIn, checkOut string, breakMinutes int) (int, error) {
	if checkIn == "" || checkOut == "" {
		return 0, nil
	}
	if breakMinutes < 0 {
		return 0, fmt.Errorf("break minutes must not be negative, got %d", breakMinutes)
	}

	start, err := ParseClock(checkIn)
	if err != nil {
		return 0, err
	}
	end, err := ParseClock(checkOut)
	if err != nil {
		return 0, err
	}

	worked := end - start
	if worked < 0 {
		worked += minutesPerDay
	}
	worked -= breakMinutes
	if worked < 0 {
		worked = 0
	}
	return worked, nil
}
