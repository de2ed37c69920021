package attendance

import (
	"context"
	"time"
)

// RecordRepository defines data access methods for attendance records.
// The table carries a unique key on (employee_id, date); create races on the
// same day surface as a unique violation, mapped to ErrAlreadyCheckedIn.
type RecordRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one date.
	// Used to prevent double check-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, record Record) error

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter Filter) ([]Record, int64, error)

	// ListByEmployeeAndRange retrieves one employee's records with dates in
	// [start, end], ordered by date ascending. Feeds the calculators.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Record, error)

	// ListByRange retrieves all records with dates in [start, end], ordered
	// by employee name then date. Feeds period reports.
	ListByRange(ctx context.Context, start, end time.Time) ([]Record, error)
}
