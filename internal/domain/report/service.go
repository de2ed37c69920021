package report

import "context"

// Service defines business logic for period reporting.
type Service interface {
	// GenerateMonthly assembles the attendance/payroll/compliance report
	// for one calendar month
	GenerateMonthly(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// ExportMonthly renders the monthly report as an xlsx workbook
	ExportMonthly(ctx context.Context, req MonthlyReportRequest) (data []byte, filename string, err error)
}
