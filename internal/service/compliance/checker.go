package compliance

import (
	"fmt"

	"github.com/commutech/commute-backend-go/internal/config"
	"github.com/commutech/commute-backend-go/internal/domain/attendance"
	"github.com/commutech/commute-backend-go/internal/domain/compliance"
	"github.com/commutech/commute-backend-go/internal/pkg/timemath"
)

// Checker evaluates one employee's week against the configured hour
// limits. It is pure: records go in, a classified result comes out.
type Checker struct {
	limits config.ComplianceConfig
}

func NewChecker(limits config.ComplianceConfig) *Checker {
	return &Checker{limits: limits}
}

// CheckWeek evaluates records pre-filtered to one employee and a 7-day
// window. Incomplete records (missing either clock) contribute nothing.
func (c *Checker) CheckWeek(employeeID string, records []attendance.Record) (compliance.Result, error) {
	result := compliance.Result{
		EmployeeID: employeeID,
		Violations: []string{},
		Warnings:   []string{},
		Info:       []string{},
	}

	regularDailyHours := float64(c.limits.RegularDailyMinutes) / 60

	var totalMinutes int
	for _, record := range records {
		if !record.IsComplete() {
			continue
		}

		worked, err := timemath.WorkedMinutes(*record.CheckIn, *record.CheckOut, record.TotalBreakMinutes)
		if err != nil {
			return compliance.Result{}, fmt.Errorf("record %s: %w", record.Date.Format("2006-01-02"), err)
		}
		totalMinutes += worked

		dailyHours := float64(worked) / 60
		if dailyHours > regularDailyHours {
			result.WeeklyOvertime += dailyHours - regularDailyHours
		}

		// Complete-record count, not true consecutive-day detection.
		// Matches the documented simplification.
		result.ContinuousWorkDays++

		// Zero-padded HH:MM strings order lexicographically; this holds
		// for same-day check-outs only.
		if *record.CheckOut >= c.limits.NightWorkStartTime {
			result.NightWorkDays++
		}
	}

	result.WeeklyHours = float64(totalMinutes) / 60

	absoluteCap := c.limits.RegularWeeklyHours + c.limits.MaxWeeklyOvertime
	switch {
	case result.WeeklyHours > absoluteCap:
		result.Violations = append(result.Violations,
			fmt.Sprintf("weekly hours %.1f exceed the absolute cap of %.0f", result.WeeklyHours, absoluteCap))
	case result.WeeklyHours > c.limits.RegularWeeklyHours:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("weekly hours %.1f exceed the regular limit of %.0f", result.WeeklyHours, c.limits.RegularWeeklyHours))
	}

	if result.ContinuousWorkDays > c.limits.MaxContinuousWorkDays {
		result.Violations = append(result.Violations,
			fmt.Sprintf("%d work days in the window exceed the limit of %d", result.ContinuousWorkDays, c.limits.MaxContinuousWorkDays))
	}

	if result.NightWorkDays > 0 {
		result.Info = append(result.Info,
			fmt.Sprintf("%d night work day(s) ending at or after %s", result.NightWorkDays, c.limits.NightWorkStartTime))
	}

	switch {
	case len(result.Violations) > 0:
		result.Status = compliance.StatusViolation
	case len(result.Warnings) > 0:
		result.Status = compliance.StatusWarning
	default:
		result.Status = compliance.StatusGood
	}

	return result, nil
}
