package attendance

import (
	"strings"

	"github.com/commutech/commute-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckInRequest marks the start of a work day. Identity comes from the
// access token; the optional fields let a kiosk forward the exact capture
// moment instead of relying on server receive time.
type CheckInRequest struct {
	Date string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Time string `json:"time,omitempty"` // HH:MM, defaults to now
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, valid := validator.IsValidDate(r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Time != "" && !validator.IsValidClock(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in zero-padded HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	Date string `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Time string `json:"time,omitempty"` // HH:MM, defaults to now
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, valid := validator.IsValidDate(r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Time != "" && !validator.IsValidClock(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be in zero-padded HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      string  `json:"employee_name,omitempty"`
	Date              string  `json:"date"`
	CheckIn           *string `json:"check_in,omitempty"`
	CheckOut          *string `json:"check_out,omitempty"`
	TotalBreakMinutes int     `json:"total_break_minutes"`
	OnBreak           bool    `json:"on_break"`
	WorkedMinutes     *int    `json:"worked_minutes,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type Filter struct {
	// Search & Filter
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, employee_name, check_in, check_out
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	// Date validation
	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	// Sort validation
	if f.SortBy != "" {
		validSortFields := []string{"date", "employee_name", "check_in", "check_out"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, employee_name, check_in, check_out",
			})
		}
	} else {
		f.SortBy = "date" // Default sort
	}

	if f.SortOrder != "" {
		validSortOrders := []string{"asc", "desc"}
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), validSortOrders) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}
