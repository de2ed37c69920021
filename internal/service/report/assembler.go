package report

import (
	"sort"
	"time"

	"github.com/commutech/commute-backend-go/internal/domain/attendance"
	"github.com/commutech/commute-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

// EmployeeRecords is one employee's slice of a period-wide record listing.
type EmployeeRecords struct {
	EmployeeID   string
	EmployeeName string
	Records      []attendance.Record
}

// GroupByEmployee splits a period-wide record listing into per-employee
// groups, preserving the order employees first appear in.
func GroupByEmployee(records []attendance.Record) []EmployeeRecords {
	index := make(map[string]int, len(records))
	groups := make([]EmployeeRecords, 0, len(records))

	for _, record := range records {
		i, ok := index[record.EmployeeID]
		if !ok {
			i = len(groups)
			index[record.EmployeeID] = i
			group := EmployeeRecords{EmployeeID: record.EmployeeID}
			if record.EmployeeName != nil {
				group.EmployeeName = *record.EmployeeName
			}
			groups = append(groups, group)
		}
		groups[i].Records = append(groups[i].Records, record)
	}

	return groups
}

// BuildDayRows flattens one employee's attendance records into report rows
// and sums the worked minutes. Incomplete records appear as rows with zero
// worked minutes so the report still shows the stray check-in.
func BuildDayRows(records []attendance.Record) ([]report.DayRow, int) {
	rows := make([]report.DayRow, 0, len(records))
	total := 0

	for _, record := range records {
		row := report.DayRow{
			Date:         record.Date.Format("2006-01-02"),
			BreakMinutes: record.TotalBreakMinutes,
		}
		if record.CheckIn != nil {
			row.CheckIn = *record.CheckIn
		}
		if record.CheckOut != nil {
			row.CheckOut = *record.CheckOut
		}
		if record.WorkedMinutes != nil {
			row.WorkedMinutes = *record.WorkedMinutes
			total += *record.WorkedMinutes
		}
		rows = append(rows, row)
	}

	return rows, total
}

// Assemble merges per-employee results into one monthly report. Input
// ordering is preserved unless sortBy asks otherwise; sorting is stable so
// equal keys keep their input order.
func Assemble(
	month, year int,
	employees []report.EmployeeResult,
	sortBy string,
	generatedAt time.Time,
) report.MonthlyReport {
	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	switch sortBy {
	case "name":
		sort.SliceStable(employees, func(i, j int) bool {
			return employees[i].EmployeeName < employees[j].EmployeeName
		})
	case "employee_id":
		sort.SliceStable(employees, func(i, j int) bool {
			return employees[i].EmployeeID < employees[j].EmployeeID
		})
	}

	totalWorked := 0
	totalNet := decimal.Zero
	for _, emp := range employees {
		totalWorked += emp.WorkedTotal
		if emp.Payroll != nil {
			totalNet = totalNet.Add(emp.Payroll.NetPay)
		}
	}

	return report.MonthlyReport{
		PeriodMonth:        month,
		PeriodYear:         year,
		PeriodStart:        periodStart.Format("2006-01-02"),
		PeriodEnd:          periodEnd.Format("2006-01-02"),
		GeneratedAt:        generatedAt.Format(time.RFC3339),
		Employees:          employees,
		TotalWorkedMinutes: totalWorked,
		TotalNetPay:        totalNet,
	}
}
