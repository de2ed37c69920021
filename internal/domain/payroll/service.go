package payroll

import "context"

// Service defines business logic for payroll generation.
type Service interface {
	// Generate runs payroll for one period: categorizes each employee's
	// attendance into work-hour buckets, computes the pay breakdown and
	// persists one record per employee. Employees whose period record
	// already exists are skipped.
	Generate(ctx context.Context, req GeneratePayrollRequest) ([]RecordResponse, error)

	GetRecord(ctx context.Context, id string) (RecordResponse, error)
	ListRecords(ctx context.Context, filter Filter) (ListRecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error
	GetSummary(ctx context.Context, month, year int) (SummaryResponse, error)
}
