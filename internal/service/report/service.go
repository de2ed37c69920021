package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/commutech/commute-backend-go/internal/domain/attendance"
	"github.com/commutech/commute-backend-go/internal/domain/payroll"
	"github.com/commutech/commute-backend-go/internal/domain/report"
	"github.com/commutech/commute-backend-go/internal/pkg/excel"
	compliancesvc "github.com/commutech/commute-backend-go/internal/service/compliance"
)

type ReportServiceImpl struct {
	checker              *compliancesvc.Checker
	attendanceRepository attendance.RecordRepository
	payrollRepository    payroll.RecordRepository
}

func NewReportService(
	checker *compliancesvc.Checker,
	attendanceRepository attendance.RecordRepository,
	payrollRepository payroll.RecordRepository,
) report.Service {
	return &ReportServiceImpl{
		checker:              checker,
		attendanceRepository: attendanceRepository,
		payrollRepository:    payrollRepository,
	}
}

// GenerateMonthly implements report.Service. The whole period is fetched in
// one query and split per employee; employees without records that month do
// not appear in the report.
func (s *ReportServiceImpl) GenerateMonthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	periodStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	records, err := s.attendanceRepository.ListByRange(ctx, periodStart, periodEnd)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list attendance for period: %w", err)
	}

	groups := GroupByEmployee(records)
	results := make([]report.EmployeeResult, 0, len(groups))
	for _, group := range groups {
		rows, workedTotal := BuildDayRows(group.Records)

		result := report.EmployeeResult{
			EmployeeID:   group.EmployeeID,
			EmployeeName: group.EmployeeName,
			Days:         rows,
			WorkedTotal:  workedTotal,
		}

		payRecord, err := s.payrollRepository.GetRecordByEmployeePeriod(ctx, group.EmployeeID, req.Month, req.Year)
		if err == nil {
			result.Payroll = &payRecord.Result
		} else if !errors.Is(err, payroll.ErrRecordNotFound) {
			return report.MonthlyReport{}, fmt.Errorf("failed to get payroll record for employee %s: %w", group.EmployeeID, err)
		}

		// Compliance snapshot over the closing week of the period.
		weekStart := periodEnd.AddDate(0, 0, -6)
		weekRecords := filterByRange(group.Records, weekStart, periodEnd)
		check, err := s.checker.CheckWeek(group.EmployeeID, weekRecords)
		if err != nil {
			return report.MonthlyReport{}, fmt.Errorf("failed to check compliance for employee %s: %w", group.EmployeeID, err)
		}
		check.EmployeeName = group.EmployeeName
		check.WeekStart = weekStart.Format("2006-01-02")
		result.Compliance = &check

		results = append(results, result)
	}

	return Assemble(req.Month, req.Year, results, req.SortBy, time.Now().UTC()), nil
}

// ExportMonthly implements report.Service.
func (s *ReportServiceImpl) ExportMonthly(ctx context.Context, req report.MonthlyReportRequest) ([]byte, string, error) {
	monthly, err := s.GenerateMonthly(ctx, req)
	if err != nil {
		return nil, "", err
	}

	data, err := excel.WriteMonthlyReport(monthly)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render report workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance_report_%04d-%02d.xlsx", req.Year, req.Month)
	return data, filename, nil
}

func filterByRange(records []attendance.Record, start, end time.Time) []attendance.Record {
	filtered := make([]attendance.Record, 0, len(records))
	for _, record := range records {
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}
