package compliance

import "context"

// Service defines business logic for weekly compliance checks.
type Service interface {
	// CheckWeek evaluates one employee's 7-day window
	CheckWeek(ctx context.Context, req WeeklyCheckRequest) (Result, error)

	// CheckAllEmployees evaluates every active employee over the same window
	CheckAllEmployees(ctx context.Context, weekStart string) (WeeklyOverviewResponse, error)
}
