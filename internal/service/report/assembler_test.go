package report

import (
	"testing"
	"time"

	"github.com/commutech/commute-backend-go/internal/domain/attendance"
	"github.com/commutech/commute-backend-go/internal/domain/payroll"
	"github.com/commutech/commute-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(date, checkIn, checkOut string, breakMin, worked int) attendance.Record {
	d, _ := time.Parse("2006-01-02", date)
	r := attendance.Record{
		Date:              d,
		TotalBreakMinutes: breakMin,
	}
	if checkIn != "" {
		r.CheckIn = &checkIn
	}
	if checkOut != "" {
		r.CheckOut = &checkOut
		r.WorkedMinutes = &worked
	}
	return r
}

func employeeResult(id, name string, worked int, netPay string) report.EmployeeResult {
	result := report.EmployeeResult{
		EmployeeID:   id,
		EmployeeName: name,
		WorkedTotal:  worked,
	}
	if netPay != "" {
		result.Payroll = &payroll.Result{NetPay: decimal.RequireFromString(netPay)}
	}
	return result
}

func employeeRecord(employeeID, employeeName, date string) attendance.Record {
	r := record(date, "09:00", "18:00", 60, 480)
	r.EmployeeID = employeeID
	r.EmployeeName = &employeeName
	return r
}

func TestGroupByEmployee(t *testing.T) {
	// Period-wide listing ordered by employee name then date, the shape the
	// repository returns.
	records := []attendance.Record{
		employeeRecord("E1", "Alice", "2024-06-03"),
		employeeRecord("E1", "Alice", "2024-06-04"),
		employeeRecord("E2", "Bob", "2024-06-03"),
		employeeRecord("E3", "Carol", "2024-06-05"),
	}

	groups := GroupByEmployee(records)

	require.Len(t, groups, 3)
	assert.Equal(t, "E1", groups[0].EmployeeID)
	assert.Equal(t, "Alice", groups[0].EmployeeName)
	require.Len(t, groups[0].Records, 2)
	assert.Equal(t, "E2", groups[1].EmployeeID)
	assert.Equal(t, "E3", groups[2].EmployeeID)
	require.Len(t, groups[2].Records, 1)
}

func TestGroupByEmployee_InterleavedRecordsKeepFirstSeenOrder(t *testing.T) {
	records := []attendance.Record{
		employeeRecord("E2", "Bob", "2024-06-03"),
		employeeRecord("E1", "Alice", "2024-06-03"),
		employeeRecord("E2", "Bob", "2024-06-04"),
	}

	groups := GroupByEmployee(records)

	require.Len(t, groups, 2)
	assert.Equal(t, "E2", groups[0].EmployeeID)
	require.Len(t, groups[0].Records, 2)
	assert.Equal(t, "E1", groups[1].EmployeeID)
}

func TestGroupByEmployee_Empty(t *testing.T) {
	assert.Empty(t, GroupByEmployee(nil))
}

func TestBuildDayRows(t *testing.T) {
	records := []attendance.Record{
		record("2024-06-03", "09:00", "18:00", 60, 480),
		record("2024-06-04", "09:00", "19:00", 60, 540),
		record("2024-06-05", "09:00", "", 0, 0), // open day
	}

	rows, total := BuildDayRows(records)

	require.Len(t, rows, 3)
	assert.Equal(t, 1020, total)

	assert.Equal(t, "2024-06-03", rows[0].Date)
	assert.Equal(t, "09:00", rows[0].CheckIn)
	assert.Equal(t, "18:00", rows[0].CheckOut)
	assert.Equal(t, 60, rows[0].BreakMinutes)
	assert.Equal(t, 480, rows[0].WorkedMinutes)

	// The open day keeps its row but contributes nothing.
	assert.Equal(t, "", rows[2].CheckOut)
	assert.Equal(t, 0, rows[2].WorkedMinutes)
}

func TestBuildDayRows_Empty(t *testing.T) {
	rows, total := BuildDayRows(nil)

	assert.Empty(t, rows)
	assert.Equal(t, 0, total)
}

func TestAssemble_PreservesInputOrder(t *testing.T) {
	employees := []report.EmployeeResult{
		employeeResult("E3", "Carol", 480, "100"),
		employeeResult("E1", "Alice", 960, "200"),
		employeeResult("E2", "Bob", 720, ""),
	}

	monthly := Assemble(6, 2024, employees, "", time.Now())

	require.Len(t, monthly.Employees, 3)
	assert.Equal(t, "E3", monthly.Employees[0].EmployeeID)
	assert.Equal(t, "E1", monthly.Employees[1].EmployeeID)
	assert.Equal(t, "E2", monthly.Employees[2].EmployeeID)
}

func TestAssemble_SortByName(t *testing.T) {
	employees := []report.EmployeeResult{
		employeeResult("E3", "Carol", 480, ""),
		employeeResult("E1", "Alice", 960, ""),
		employeeResult("E2", "Bob", 720, ""),
	}

	monthly := Assemble(6, 2024, employees, "name", time.Now())

	assert.Equal(t, "Alice", monthly.Employees[0].EmployeeName)
	assert.Equal(t, "Bob", monthly.Employees[1].EmployeeName)
	assert.Equal(t, "Carol", monthly.Employees[2].EmployeeName)
}

func TestAssemble_Totals(t *testing.T) {
	employees := []report.EmployeeResult{
		employeeResult("E1", "Alice", 960, "1500000"),
		employeeResult("E2", "Bob", 720, "1200000"),
		employeeResult("E3", "Carol", 480, ""), // no payroll yet
	}

	monthly := Assemble(6, 2024, employees, "", time.Now())

	assert.Equal(t, 2160, monthly.TotalWorkedMinutes)
	assert.True(t, monthly.TotalNetPay.Equal(decimal.RequireFromString("2700000")),
		"expected 2700000, got %s", monthly.TotalNetPay)
}

func TestAssemble_PeriodBounds(t *testing.T) {
	monthly := Assemble(2, 2024, nil, "", time.Now())

	assert.Equal(t, "2024-02-01", monthly.PeriodStart)
	assert.Equal(t, "2024-02-29", monthly.PeriodEnd) // leap year
}
