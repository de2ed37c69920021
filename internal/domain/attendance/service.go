package attendance

import (
	"context"
)

// Service defines business logic for attendance operations.
type Service interface {
	// CheckIn creates today's record for the authenticated employee
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut closes today's record, folding any open break into the
	// break total and persisting worked minutes
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// ToggleBreak opens a break, or closes the open one and accumulates
	// the elapsed minutes
	ToggleBreak(ctx context.Context) (RecordResponse, error)

	// GetToday retrieves today's record for an employee
	GetToday(ctx context.Context, employeeID string) (RecordResponse, error)

	// List retrieves attendance records with filters (admin)
	List(ctx context.Context, filter Filter) (ListResponse, error)
}
