package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkHoursBreakdown is the mutually exclusive categorization of a day's
// (or period's) worked time. The four buckets always sum to the total
// worked minutes.
type WorkHoursBreakdown struct {
	RegularMinutes  int `json:"regular_minutes"`
	OvertimeMinutes int `json:"overtime_minutes"`
	NightMinutes    int `json:"night_minutes"`
	HolidayMinutes  int `json:"holiday_minutes"`
}

func (w WorkHoursBreakdown) TotalMinutes() int {
	return w.RegularMinutes + w.OvertimeMinutes + w.NightMinutes + w.HolidayMinutes
}

func (w WorkHoursBreakdown) HasNegative() bool {
	return w.RegularMinutes < 0 || w.OvertimeMinutes < 0 || w.NightMinutes < 0 || w.HolidayMinutes < 0
}

// Add folds another breakdown into this one.
func (w WorkHoursBreakdown) Add(o WorkHoursBreakdown) WorkHoursBreakdown {
	return WorkHoursBreakdown{
		RegularMinutes:  w.RegularMinutes + o.RegularMinutes,
		OvertimeMinutes: w.OvertimeMinutes + o.OvertimeMinutes,
		NightMinutes:    w.NightMinutes + o.NightMinutes,
		HolidayMinutes:  w.HolidayMinutes + o.HolidayMinutes,
	}
}

// Allowances are the recognized allowance components. Absent components
// default to zero.
type Allowances struct {
	Bonus          decimal.Decimal `json:"bonus"`
	Incentive      decimal.Decimal `json:"incentive"`
	Transportation decimal.Decimal `json:"transportation"`
	Meal           decimal.Decimal `json:"meal"`
	Communication  decimal.Decimal `json:"communication"`
	Qualification  decimal.Decimal `json:"qualification"`
}

func (a Allowances) Total() decimal.Decimal {
	return a.Bonus.Add(a.Incentive).Add(a.Transportation).Add(a.Meal).Add(a.Communication).Add(a.Qualification)
}

func (a Allowances) HasNegative() bool {
	for _, d := range []decimal.Decimal{a.Bonus, a.Incentive, a.Transportation, a.Meal, a.Communication, a.Qualification} {
		if d.IsNegative() {
			return true
		}
	}
	return false
}

// CustomDeductions are the caller-supplied deduction components, applied on
// top of the statutory ones.
type CustomDeductions struct {
	Attendance decimal.Decimal `json:"attendance"`
	Other      decimal.Decimal `json:"other"`
}

func (d CustomDeductions) Total() decimal.Decimal {
	return d.Attendance.Add(d.Other)
}

func (d CustomDeductions) HasNegative() bool {
	return d.Attendance.IsNegative() || d.Other.IsNegative()
}

// AllowanceBreakdown is the allowance section of a pay slip.
type AllowanceBreakdown struct {
	Bonus          decimal.Decimal `json:"bonus"`
	Incentive      decimal.Decimal `json:"incentive"`
	Transportation decimal.Decimal `json:"transportation"`
	Meal           decimal.Decimal `json:"meal"`
	Communication  decimal.Decimal `json:"communication"`
	Qualification  decimal.Decimal `json:"qualification"`
	Total          decimal.Decimal `json:"total"`
}

// DeductionBreakdown is the deduction section of a pay slip. Other carries
// the caller-supplied custom deductions; the rest are statutory figures
// derived from gross pay.
type DeductionBreakdown struct {
	IncomeTax           decimal.Decimal `json:"income_tax"`
	NationalPension     decimal.Decimal `json:"national_pension"`
	HealthInsurance     decimal.Decimal `json:"health_insurance"`
	EmploymentInsurance decimal.Decimal `json:"employment_insurance"`
	Other               decimal.Decimal `json:"other"`
	Total               decimal.Decimal `json:"total"`
}

// Result is a full pay breakdown for one employee over one period.
// Invariants: GrossPay = BasePay + OvertimePay + NightPay + HolidayPay +
// Allowances.Total; NetPay = GrossPay - Deductions.Total. NetPay may be
// negative when deductions exceed gross; it is deliberately not clamped.
type Result struct {
	BasePay     decimal.Decimal    `json:"base_pay"`
	OvertimePay decimal.Decimal    `json:"overtime_pay"`
	NightPay    decimal.Decimal    `json:"night_pay"`
	HolidayPay  decimal.Decimal    `json:"holiday_pay"`
	Allowances  AllowanceBreakdown `json:"allowances"`
	GrossPay    decimal.Decimal    `json:"gross_pay"`
	Deductions  DeductionBreakdown `json:"deductions"`
	NetPay      decimal.Decimal    `json:"net_pay"`
}

// Record is a generated payroll result persisted for one employee and one
// period. At most one record exists per (employee, period).
type Record struct {
	ID          string
	EmployeeID  string
	PeriodMonth int
	PeriodYear  int
	Hours       WorkHoursBreakdown
	Result      Result
	CreatedAt   time.Time

	// Joined fields
	EmployeeName *string
}
