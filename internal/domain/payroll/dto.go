package payroll

import (
	"github.com/commutech/commute-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// EmployeePayrollInput carries per-employee allowances and custom
// deductions for one payroll run.
type EmployeePayrollInput struct {
	EmployeeID string           `json:"employee_id"`
	Allowances Allowances       `json:"allowances"`
	Deductions CustomDeductions `json:"deductions"`
}

// GeneratePayrollRequest triggers payroll generation for one period. An
// empty Employees list means every active employee, with zero allowances
// and deductions.
type GeneratePayrollRequest struct {
	PeriodMonth int                    `json:"period_month"`
	PeriodYear  int                    `json:"period_year"`
	Employees   []EmployeePayrollInput `json:"employees,omitempty"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}

	if r.PeriodYear < 2000 || r.PeriodYear > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "period_year",
			Message: "period_year must be between 2000 and 2100",
		})
	}

	for _, emp := range r.Employees {
		if validator.IsEmpty(emp.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "employees",
				Message: "employee_id is required for every entry",
			})
			break
		}
	}

	for _, emp := range r.Employees {
		if emp.Allowances.HasNegative() || emp.Deductions.HasNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "employees",
				Message: "allowance and deduction components must not be negative",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID           string             `json:"id"`
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name,omitempty"`
	PeriodMonth  int                `json:"period_month"`
	PeriodYear   int                `json:"period_year"`
	Hours        WorkHoursBreakdown `json:"hours"`
	Result       Result             `json:"result"`
	CreatedAt    string             `json:"created_at"`
}

type Filter struct {
	EmployeeID  *string `json:"employee_id,omitempty"`
	PeriodMonth *int    `json:"period_month,omitempty"`
	PeriodYear  *int    `json:"period_year,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

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

	if f.PeriodMonth != nil && (*f.PeriodMonth < 1 || *f.PeriodMonth > 12) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_month",
			Message: "period_month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListRecordResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}

type SummaryResponse struct {
	PeriodMonth    int             `json:"period_month"`
	PeriodYear     int             `json:"period_year"`
	TotalEmployees int             `json:"total_employees"`
	TotalGrossPay  decimal.Decimal `json:"total_gross_pay"`
	TotalNetPay    decimal.Decimal `json:"total_net_pay"`
}
