package compliance

import (
	"github.com/commutech/commute-backend-go/internal/pkg/validator"
)

// WeeklyCheckRequest asks for one employee's compliance over the 7-day
// window starting at WeekStart.
type WeeklyCheckRequest struct {
	EmployeeID string `json:"employee_id"`
	WeekStart  string `json:"week_start"` // YYYY-MM-DD
}

func (r *WeeklyCheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.WeekStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start is required",
		})
	} else if _, valid := validator.IsValidDate(r.WeekStart); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "week_start",
			Message: "week_start must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WeeklyOverviewResponse struct {
	WeekStart  string   `json:"week_start"`
	Results    []Result `json:"results"`
	Violations int      `json:"violations"`
	Warnings   int      `json:"warnings"`
}
