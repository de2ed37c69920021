package compliance

import (
	"fmt"
	"testing"
	"time"

	"github.com/commutech/commute-backend-go/internal/config"
	"github.com/commutech/commute-backend-go/internal/domain/attendance"
	"github.com/commutech/commute-backend-go/internal/domain/compliance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker() *Checker {
	return NewChecker(config.DefaultComplianceConfig())
}

func record(day int, checkIn, checkOut string, breakMinutes int) attendance.Record {
	rec := attendance.Record{
		EmployeeID:        "emp-1",
		Date:              time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC),
		TotalBreakMinutes: breakMinutes,
	}
	if checkIn != "" {
		rec.CheckIn = &checkIn
	}
	if checkOut != "" {
		rec.CheckOut = &checkOut
	}
	return rec
}

func TestCheckWeek_RegularWeekIsGood(t *testing.T) {
	t.Parallel()
	checker := newTestChecker()

	// Five 8-hour days: exactly at the 40h limit, not over it.
	var records []attendance.Record
	for day := 3; day <= 7; day++ {
		records = append(records, record(day, "09:00", "18:00", 60))
	}

	result, err := checker.CheckWeek("emp-1", records)
	require.NoError(t, err)

	assert.Equal(t, compliance.StatusGood, result.Status)
	assert.InDelta(t, 40, result.WeeklyHours, 1e-9)
	assert.InDelta(t, 0, result.WeeklyOvertime, 1e-9)
	assert.Equal(t, 5, result.ContinuousWorkDays)
	assert.Empty(t, result.Violations)
	assert.Empty(t, result.Warnings)
}

func TestCheckWeek_FiftyHourWeekIsWarning(t *testing.T) {
	t.Parallel()
	checker := newTestChecker()

	// Six complete days totaling 50 hours: over 40, under 52.
	var records []attendance.Record
	for day := 3; day <= 7; day++ {
		records = append(records, record(day, "09:00", "18:00", 60)) // 8h each
	}
	records = append(records, record(8, "09:00", "20:00", 60)) // 10h

	result, err := checker.CheckWeek("emp-1", records)
	require.NoError(t, err)

	assert.Equal(t, compliance.StatusWarning, result.Status)
	assert.InDelta(t, 50, result.WeeklyHours, 1e-9)
	assert.InDelta(t, 2, result.WeeklyOvertime, 1e-9)
	assert.Len(t, result.Warnings, 1)
	assert.Empty(t, result.Violations)
}

func TestCheckWeek_FiftyFiveHourWeekIsViolation(t *testing.T) {
	t.Parallel()
	checker := newTestChecker()

	// Five 9-hour days plus one 10-hour day: 55 hours, over the 52h cap.
	var records []attendance.Record
	for day := 3; day <= 7; day++ {
		records = append(records, record(day, "09:00", "19:00", 60)) // 9h each
	}
	records = append(records, record(8, "09:00", "20:00", 60)) // 10h

	result, err := checker.CheckWeek("emp-1", records)
	require.NoError(t, err)

	assert.Equal(t, compliance.StatusViolation, result.Status)
	assert.InDelta(t, 55, result.WeeklyHours, 1e-9)
	assert.InDelta(t, 7, result.WeeklyOvertime, 1e-9)
	assert.NotEmpty(t, result.Violations)
}

func TestCheckWeek_SevenWorkDaysIsViolation(t *testing.T) {
	t.Parallel()
	checker := newTestChecker()

	// Seven short days stay under every hour limit but exceed the
	// continuous-work-day limit of 6.
	var records []attendance.Record
	for day := 3; day <= 9; day++ {
		records = append(records, record(day, "09:00", "14:00", 0)) // 5h each
	}

	result, err := checker.CheckWeek("emp-1", records)
	require.NoError(t, err)

	assert.Equal(t, compliance.StatusViolation, result.Status)
	assert.Equal(t, 7, result.ContinuousWorkDays)
	assert.Len(t, result.Violations, 1)
}

// ContinuousWorkDays counts complete records in the window and does not
// detect calendar gaps. Two records five days apart still count as two.
func TestCheckWeek_ContinuousDaysIsRecordCountSimplification(t *testing.T) {
	t.Parallel()
	checker := newTestChecker()

	records := []attendance.Record{
		record(3, "09:00", "18:00", 60),
		record(8, "09:00", "18:00", 60),
	}

	result, err := checker.CheckWeek("emp-1", records)
	require.NoError(t, err)

	assert.Equal(t, 2, result.ContinuousWorkDays)
}

func TestCheckWeek_NightWorkCounted(t *testing.T) {
	t.Parallel()
	checker := newTestChecker()

	records := []attendance.Record{
		record(3, "14:00", "23:00", 60),
		record(4, "14:00", "22:00", 60),
		record(5, "09:00", "18:00", 60),
	}

	result, err := checker.CheckWeek("emp-1", records)
	require.NoError(t, err)

	// 23:00 and 22:00 are at or past the 22:00 night start; 18:00 is not.
	assert.Equal(t, 2, result.NightWorkDays)
	assert.Len(t, result.Info, 1)
}

func TestCheckWeek_IncompleteRecordsIgnored(t *testing.T) {
	t.Parallel()
	checker := newTestChecker()

	records := []attendance.Record{
		record(3, "09:00", "18:00", 60),
		record(4, "09:00", "", 0),
		record(5, "", "", 0),
	}

	result, err := checker.CheckWeek("emp-1", records)
	require.NoError(t, err)

	assert.InDelta(t, 8, result.WeeklyHours, 1e-9)
	assert.Equal(t, 1, result.ContinuousWorkDays)
}

func TestCheckWeek_EmptyWindow(t *testing.T) {
	t.Parallel()
	checker := newTestChecker()

	result, err := checker.CheckWeek("emp-1", nil)
	require.NoError(t, err)

	assert.Equal(t, compliance.StatusGood, result.Status)
	assert.Zero(t, result.WeeklyHours)
	assert.Zero(t, result.ContinuousWorkDays)
}

// Increasing weekly hours past the regular limit never yields good, and
// past the absolute cap never yields anything but violation.
func TestCheckWeek_StatusMonotonicity(t *testing.T) {
	t.Parallel()
	checker := newTestChecker()

	// Each case spreads the weekly total over five equal days.
	cases := []struct {
		weeklyHours int
		want        compliance.Status
	}{
		{35, compliance.StatusGood},
		{40, compliance.StatusGood},
		{45, compliance.StatusWarning},
		{50, compliance.StatusWarning},
		{55, compliance.StatusViolation},
		{60, compliance.StatusViolation},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(fmt.Sprintf("%dh", tc.weeklyHours), func(t *testing.T) {
			t.Parallel()
			daily := tc.weeklyHours / 5
			var records []attendance.Record
			for day := 3; day <= 7; day++ {
				checkOut := fmt.Sprintf("%02d:00", 8+daily)
				records = append(records, record(day, "08:00", checkOut, 0))
			}

			result, err := checker.CheckWeek("emp-1", records)
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.Status)
		})
	}
}
