package employee

import (
	"github.com/commutech/commute-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name       string           `json:"name"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.HourlyRate != nil && !r.HourlyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	IsActive   *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.HourlyRate != nil && !r.HourlyRate.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	IsActive   bool             `json:"is_active"`
	CreatedAt  string           `json:"created_at"`
	UpdatedAt  string           `json:"updated_at"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Employees  []EmployeeResponse `json:"employees"`
}
