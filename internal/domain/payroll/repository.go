package payroll

import "context"

// RecordRepository defines data access methods for generated payroll
// records. The table carries a unique key on (employee_id, period_year,
// period_month).
type RecordRepository interface {
	CreateRecord(ctx context.Context, record Record) (Record, error)
	GetRecordByID(ctx context.Context, id string) (Record, error)
	GetRecordByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (Record, error)
	ListRecords(ctx context.Context, filter Filter) ([]Record, int64, error)
	DeleteRecord(ctx context.Context, id string) error
	GetSummary(ctx context.Context, month, year int) (SummaryResponse, error)
}
