package payroll

import (
	"github.com/commutech/commute-backend-go/internal/config"
	"github.com/commutech/commute-backend-go/internal/domain/payroll"
	"github.com/commutech/commute-backend-go/internal/pkg/timemath"
	"github.com/shopspring/decimal"
)

var sixty = decimal.NewFromInt(60)

// Calculator turns categorized work hours into a full pay breakdown. It is
// pure: no clock, no storage, and identical inputs always produce identical
// results. Every rate and threshold comes from the config structs.
type Calculator struct {
	rates  config.PayrollConfig
	limits config.ComplianceConfig
}

func NewCalculator(rates config.PayrollConfig, limits config.ComplianceConfig) *Calculator {
	return &Calculator{rates: rates, limits: limits}
}

// CategorizeDay splits one day's worked minutes into the four pay buckets.
// On a holiday the whole day is holiday time. Otherwise minutes past the
// configured night start go to the night bucket, and what remains fills
// regular time up to the daily cap with the rest as overtime. The buckets
// always sum to the worked minutes.
func (c *Calculator) CategorizeDay(checkIn, checkOut string, breakMinutes int, holiday bool) (payroll.WorkHoursBreakdown, error) {
	worked, err := timemath.WorkedMinutes(checkIn, checkOut, breakMinutes)
	if err != nil {
		return payroll.WorkHoursBreakdown{}, err
	}
	if worked == 0 {
		return payroll.WorkHoursBreakdown{}, nil
	}

	if holiday {
		return payroll.WorkHoursBreakdown{HolidayMinutes: worked}, nil
	}

	start, err := timemath.ParseClock(checkIn)
	if err != nil {
		return payroll.WorkHoursBreakdown{}, err
	}
	end, err := timemath.ParseClock(checkOut)
	if err != nil {
		return payroll.WorkHoursBreakdown{}, err
	}
	nightStart, err := timemath.ParseClock(c.limits.NightWorkStartTime)
	if err != nil {
		return payroll.WorkHoursBreakdown{}, err
	}

	if end < start {
		end += 1440 // overnight shift
	}

	night := end - nightStart
	if start > nightStart {
		night = end - start
	}
	if night < 0 {
		night = 0
	}
	if night > worked {
		night = worked
	}

	remaining := worked - night
	regular := remaining
	if regular > c.limits.RegularDailyMinutes {
		regular = c.limits.RegularDailyMinutes
	}

	return payroll.WorkHoursBreakdown{
		RegularMinutes:  regular,
		OvertimeMinutes: remaining - regular,
		NightMinutes:    night,
	}, nil
}

// Calculate produces the pay breakdown for one employee over one period.
// A nil hourlyRate falls back to the configured default. Invalid input is
// rejected outright; no partial result is ever returned.
func (c *Calculator) Calculate(
	hourlyRate *decimal.Decimal,
	hours payroll.WorkHoursBreakdown,
	allowances payroll.Allowances,
	deductions payroll.CustomDeductions,
) (payroll.Result, error) {
	rate := c.rates.DefaultHourlyRate
	if hourlyRate != nil {
		rate = *hourlyRate
	}
	if !rate.IsPositive() {
		return payroll.Result{}, payroll.ErrInvalidHourlyRate
	}
	if hours.HasNegative() {
		return payroll.Result{}, payroll.ErrNegativeWorkHours
	}
	if allowances.HasNegative() {
		return payroll.Result{}, payroll.ErrNegativeAllowance
	}
	if deductions.HasNegative() {
		return payroll.Result{}, payroll.ErrNegativeDeduction
	}
	if len(c.rates.TaxBrackets) == 0 {
		return payroll.Result{}, payroll.ErrMissingTaxBrackets
	}

	basePay := hoursOf(hours.RegularMinutes).Mul(rate)
	overtimePay := hoursOf(hours.OvertimeMinutes).Mul(rate).Mul(c.rates.OvertimeRate)
	nightPay := hoursOf(hours.NightMinutes).Mul(rate).Mul(c.rates.NightRate)
	holidayPay := hoursOf(hours.HolidayMinutes).Mul(rate).Mul(c.rates.HolidayRate)

	allowanceBreakdown := payroll.AllowanceBreakdown{
		Bonus:          allowances.Bonus,
		Incentive:      allowances.Incentive,
		Transportation: allowances.Transportation,
		Meal:           allowances.Meal,
		Communication:  allowances.Communication,
		Qualification:  allowances.Qualification,
		Total:          allowances.Total(),
	}

	grossPay := basePay.Add(overtimePay).Add(nightPay).Add(holidayPay).Add(allowanceBreakdown.Total)

	incomeTax := c.incomeTax(grossPay)

	pensionBase := grossPay
	if c.rates.NationalPensionCap.IsPositive() && pensionBase.GreaterThan(c.rates.NationalPensionCap) {
		pensionBase = c.rates.NationalPensionCap
	}
	nationalPension := pensionBase.Mul(c.rates.NationalPensionRate)
	healthInsurance := grossPay.Mul(c.rates.HealthInsuranceRate)
	employmentInsurance := grossPay.Mul(c.rates.EmploymentInsuranceRate)
	other := deductions.Total()

	deductionBreakdown := payroll.DeductionBreakdown{
		IncomeTax:           incomeTax,
		NationalPension:     nationalPension,
		HealthInsurance:     healthInsurance,
		EmploymentInsurance: employmentInsurance,
		Other:               other,
		Total:               incomeTax.Add(nationalPension).Add(healthInsurance).Add(employmentInsurance).Add(other),
	}

	return payroll.Result{
		BasePay:     basePay,
		OvertimePay: overtimePay,
		NightPay:    nightPay,
		HolidayPay:  holidayPay,
		Allowances:  allowanceBreakdown,
		GrossPay:    grossPay,
		Deductions:  deductionBreakdown,
		NetPay:      grossPay.Sub(deductionBreakdown.Total),
	}, nil
}

// incomeTax applies the progressive bracket table: each marginal rate taxes
// the slice of gross pay between its boundary and the previous one. A zero
// UpTo marks the open-ended top bracket.
func (c *Calculator) incomeTax(grossPay decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	previous := decimal.Zero

	for _, bracket := range c.rates.TaxBrackets {
		upper := bracket.UpTo
		if upper.IsZero() || grossPay.LessThan(upper) {
			upper = grossPay
		}
		slice := upper.Sub(previous)
		if slice.IsPositive() {
			tax = tax.Add(slice.Mul(bracket.Rate))
		}
		if !bracket.UpTo.IsZero() && grossPay.LessThanOrEqual(bracket.UpTo) {
			break
		}
		previous = bracket.UpTo
	}

	return tax
}

func hoursOf(minutes int) decimal.Decimal {
	return decimal.NewFromInt(int64(minutes)).Div(sixty)
}
