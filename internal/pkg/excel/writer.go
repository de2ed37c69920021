// Package excel renders assembled reports as xlsx workbooks.
package excel

import (
	"fmt"

	"github.com/commutech/commute-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	attendanceSheet = "Attendance"
	payrollSheet    = "Payroll"
)

var attendanceHeaders = []string{
	"Date", "Employee", "Check-in", "Check-out", "Break (min)", "Worked (min)",
}

var payrollHeaders = []string{
	"Employee", "Base Pay", "Overtime Pay", "Night Pay", "Holiday Pay",
	"Allowances", "Gross Pay", "Deductions", "Net Pay",
}

// WriteMonthlyReport renders one monthly report into a two-sheet workbook:
// a per-day attendance sheet and a per-employee payroll sheet. Employee
// sections keep the report's ordering.
func WriteMonthlyReport(monthly report.MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %v", err)
	}
	if _, err := f.NewSheet(payrollSheet); err != nil {
		return nil, fmt.Errorf("failed to create payroll sheet: %v", err)
	}

	if err := writeAttendanceSheet(f, monthly); err != nil {
		return nil, err
	}
	if err := writePayrollSheet(f, monthly); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %v", err)
	}

	return buf.Bytes(), nil
}

func writeAttendanceSheet(f *excelize.File, monthly report.MonthlyReport) error {
	if err := writeRow(f, attendanceSheet, 1, toCells(attendanceHeaders)); err != nil {
		return err
	}

	rowIndex := 2
	for _, emp := range monthly.Employees {
		for _, day := range emp.Days {
			cells := []interface{}{
				day.Date, emp.EmployeeName, day.CheckIn, day.CheckOut,
				day.BreakMinutes, day.WorkedMinutes,
			}
			if err := writeRow(f, attendanceSheet, rowIndex, cells); err != nil {
				return err
			}
			rowIndex++
		}
	}

	// Totals row after a blank separator.
	rowIndex++
	totals := []interface{}{
		"TOTAL", "", "", "", "", monthly.TotalWorkedMinutes,
	}
	return writeRow(f, attendanceSheet, rowIndex, totals)
}

func writePayrollSheet(f *excelize.File, monthly report.MonthlyReport) error {
	if err := writeRow(f, payrollSheet, 1, toCells(payrollHeaders)); err != nil {
		return err
	}

	rowIndex := 2
	for _, emp := range monthly.Employees {
		if emp.Payroll == nil {
			continue
		}
		p := emp.Payroll
		cells := []interface{}{
			emp.EmployeeName,
			p.BasePay.String(),
			p.OvertimePay.String(),
			p.NightPay.String(),
			p.HolidayPay.String(),
			p.Allowances.Total.String(),
			p.GrossPay.String(),
			p.Deductions.Total.String(),
			p.NetPay.String(),
		}
		if err := writeRow(f, payrollSheet, rowIndex, cells); err != nil {
			return err
		}
		rowIndex++
	}

	rowIndex++
	totals := []interface{}{
		"TOTAL", "", "", "", "", "", "", "", monthly.TotalNetPay.String(),
	}
	return writeRow(f, payrollSheet, rowIndex, totals)
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for col, value := range cells {
		cellName, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to resolve cell name: %v", err)
		}
		if err := f.SetCellValue(sheet, cellName, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %v", cellName, err)
		}
	}
	return nil
}

func toCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}
