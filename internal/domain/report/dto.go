package report

import (
	"github.com/commutech/commute-backend-go/internal/domain/compliance"
	"github.com/commutech/commute-backend-go/internal/domain/payroll"
	"github.com/commutech/commute-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// DayRow is one attendance line in a period report.
type DayRow struct {
	Date          string `json:"date"`
	CheckIn       string `json:"check_in,omitempty"`
	CheckOut      string `json:"check_out,omitempty"`
	BreakMinutes  int    `json:"break_minutes"`
	WorkedMinutes int    `json:"worked_minutes"`
}

// EmployeeResult bundles one employee's attendance rows with the optional
// payroll and compliance outcomes for the period.
type EmployeeResult struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name"`
	Days         []DayRow           `json:"days"`
	WorkedTotal  int                `json:"worked_total_minutes"`
	Payroll      *payroll.Result    `json:"payroll,omitempty"`
	Compliance   *compliance.Result `json:"compliance,omitempty"`
}

// MonthlyReport is the assembled period report handed to the JSON API and
// the spreadsheet exporter.
type MonthlyReport struct {
	PeriodMonth        int              `json:"period_month"`
	PeriodYear         int              `json:"period_year"`
	PeriodStart        string           `json:"period_start"`
	PeriodEnd          string           `json:"period_end"`
	GeneratedAt        string           `json:"generated_at"`
	Employees          []EmployeeResult `json:"employees"`
	TotalWorkedMinutes int              `json:"total_worked_minutes"`
	TotalNetPay        decimal.Decimal  `json:"total_net_pay"`
}

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	// SortBy orders employee sections; empty preserves input ordering.
	SortBy string `json:"sort_by,omitempty"` // name, employee_id
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if r.SortBy != "" && !validator.IsInSlice(r.SortBy, []string{"name", "employee_id"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of: name, employee_id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
