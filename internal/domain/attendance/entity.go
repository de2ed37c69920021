package attendance

import (
	"time"
)

// Record is one employee's attendance for one calendar date. At most one
// record exists per (employee, date); the repository enforces that with an
// upsert key.
type Record struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	CheckIn           *string // zero-padded "HH:MM"
	CheckOut          *string // zero-padded "HH:MM"
	TotalBreakMinutes int
	BreakStart        *time.Time // set while a break is open
	WorkedMinutes     *int       // persisted at check-out
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName *string
}

// IsComplete reports whether the record has both clocks and can be billed.
func (r Record) IsComplete() bool {
	return r.CheckIn != nil && r.CheckOut != nil
}

// OnBreak reports whether the employee is currently on an open break.
func (r Record) OnBreak() bool {
	return r.BreakStart != nil && r.CheckOut == nil
}
