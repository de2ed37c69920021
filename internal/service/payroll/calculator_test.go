package payroll

import (
	"testing"

	"github.com/commutech/commute-backend-go/internal/config"
	"github.com/commutech/commute-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator() *Calculator {
	return NewCalculator(config.DefaultPayrollConfig(), config.DefaultComplianceConfig())
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func assertDecimalEqual(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		"expected %s, got %s %v", expected, actual, msgAndArgs)
}

// ===== CATEGORIZATION =====

func TestCategorizeDay_RegularDay(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	hours, err := calc.CategorizeDay("09:00", "18:00", 60, false)
	require.NoError(t, err)

	assert.Equal(t, payroll.WorkHoursBreakdown{RegularMinutes: 480}, hours)
}

func TestCategorizeDay_OvertimeSplit(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	// 9.5 worked hours: 8 regular, 1.5 overtime
	hours, err := calc.CategorizeDay("09:30", "20:00", 60, false)
	require.NoError(t, err)

	assert.Equal(t, payroll.WorkHoursBreakdown{RegularMinutes: 480, OvertimeMinutes: 90}, hours)
	assert.Equal(t, 570, hours.TotalMinutes())
}

func TestCategorizeDay_ElevenHoursOnSite(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	// 09:00-20:00 is eleven hours on site; minus the one-hour break that is
	// ten worked hours, never 9.5. The buckets must reflect the subtraction
	// arithmetic, not the headline shift length.
	hours, err := calc.CategorizeDay("09:00", "20:00", 60, false)
	require.NoError(t, err)

	assert.Equal(t, payroll.WorkHoursBreakdown{RegularMinutes: 480, OvertimeMinutes: 120}, hours)
	assert.Equal(t, 600, hours.TotalMinutes())
}

func TestCategorizeDay_OvernightShiftIsNightWork(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	hours, err := calc.CategorizeDay("22:00", "06:00", 0, false)
	require.NoError(t, err)

	assert.Equal(t, payroll.WorkHoursBreakdown{NightMinutes: 480}, hours)
}

func TestCategorizeDay_EveningSpillIntoNight(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	// 09:00-23:00 without breaks: 60 night minutes past 22:00, the
	// remaining 13h split into 8h regular and 5h overtime.
	hours, err := calc.CategorizeDay("09:00", "23:00", 0, false)
	require.NoError(t, err)

	assert.Equal(t, payroll.WorkHoursBreakdown{RegularMinutes: 480, OvertimeMinutes: 300, NightMinutes: 60}, hours)
}

func TestCategorizeDay_Holiday(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	hours, err := calc.CategorizeDay("09:00", "18:00", 60, true)
	require.NoError(t, err)

	assert.Equal(t, payroll.WorkHoursBreakdown{HolidayMinutes: 480}, hours)
}

func TestCategorizeDay_IncompleteRecordCountsZero(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	hours, err := calc.CategorizeDay("09:00", "", 0, false)
	require.NoError(t, err)

	assert.Equal(t, payroll.WorkHoursBreakdown{}, hours)
}

// ===== PAY CALCULATION =====

func TestCalculate_StandardMonth(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	// 22 working days of 09:00-18:00 with an hour of break each:
	// 176 regular hours, no overtime.
	var hours payroll.WorkHoursBreakdown
	for day := 0; day < 22; day++ {
		dayHours, err := calc.CategorizeDay("09:00", "18:00", 60, false)
		require.NoError(t, err)
		hours = hours.Add(dayHours)
	}
	assert.Equal(t, 176*60, hours.TotalMinutes())

	result, err := calc.Calculate(decPtr(decimal.NewFromInt(10000)), hours, payroll.Allowances{}, payroll.CustomDeductions{})
	require.NoError(t, err)

	assertDecimalEqual(t, "1760000", result.BasePay)
	assertDecimalEqual(t, "0", result.OvertimePay)
	assertDecimalEqual(t, "1760000", result.GrossPay)

	// Marginal tax over the default brackets: the 700000 above the first
	// boundary at 2.7%.
	assertDecimalEqual(t, "18900", result.Deductions.IncomeTax)
	assertDecimalEqual(t, "79200", result.Deductions.NationalPension)
	assertDecimalEqual(t, "62392", result.Deductions.HealthInsurance)
	assertDecimalEqual(t, "15840", result.Deductions.EmploymentInsurance)
	assertDecimalEqual(t, "176332", result.Deductions.Total)
	assertDecimalEqual(t, "1583668", result.NetPay)
}

func TestCalculate_GrossAdditivity(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	hours := payroll.WorkHoursBreakdown{
		RegularMinutes:  480 * 20,
		OvertimeMinutes: 90 * 4,
		NightMinutes:    120,
		HolidayMinutes:  480,
	}
	allowances := payroll.Allowances{
		Bonus:          decimal.NewFromInt(100000),
		Incentive:      decimal.NewFromInt(50000),
		Transportation: decimal.NewFromInt(30000),
		Meal:           decimal.NewFromInt(110000),
		Communication:  decimal.NewFromInt(20000),
		Qualification:  decimal.NewFromInt(40000),
	}

	result, err := calc.Calculate(decPtr(decimal.NewFromInt(12345)), hours, allowances, payroll.CustomDeductions{})
	require.NoError(t, err)

	sum := result.BasePay.
		Add(result.OvertimePay).
		Add(result.NightPay).
		Add(result.HolidayPay).
		Add(result.Allowances.Total)
	assert.True(t, result.GrossPay.Equal(sum), "gross %s != component sum %s", result.GrossPay, sum)
	assertDecimalEqual(t, "350000", result.Allowances.Total)
}

func TestCalculate_NetMayGoNegative(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	deductions := payroll.CustomDeductions{Other: decimal.NewFromInt(50000)}

	result, err := calc.Calculate(decPtr(decimal.NewFromInt(10000)), payroll.WorkHoursBreakdown{}, payroll.Allowances{}, deductions)
	require.NoError(t, err)

	assertDecimalEqual(t, "0", result.GrossPay)
	assertDecimalEqual(t, "-50000", result.NetPay)
	assert.True(t, result.NetPay.Equal(result.GrossPay.Sub(result.Deductions.Total)))
}

func TestCalculate_PensionBaseIsCapped(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	// 800 regular hours at 10000 gives gross 8,000,000, above the
	// 5,900,000 pensionable cap.
	hours := payroll.WorkHoursBreakdown{RegularMinutes: 800 * 60}

	result, err := calc.Calculate(decPtr(decimal.NewFromInt(10000)), hours, payroll.Allowances{}, payroll.CustomDeductions{})
	require.NoError(t, err)

	assertDecimalEqual(t, "8000000", result.GrossPay)
	assertDecimalEqual(t, "265500", result.Deductions.NationalPension) // 5900000 * 0.045
}

func TestCalculate_DefaultHourlyRateFallback(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	hours := payroll.WorkHoursBreakdown{RegularMinutes: 60}

	result, err := calc.Calculate(nil, hours, payroll.Allowances{}, payroll.CustomDeductions{})
	require.NoError(t, err)

	assertDecimalEqual(t, "9860", result.BasePay)
}

func TestCalculate_RejectsInvalidInput(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	_, err := calc.Calculate(decPtr(decimal.Zero), payroll.WorkHoursBreakdown{}, payroll.Allowances{}, payroll.CustomDeductions{})
	assert.ErrorIs(t, err, payroll.ErrInvalidHourlyRate)

	_, err = calc.Calculate(decPtr(decimal.NewFromInt(-100)), payroll.WorkHoursBreakdown{}, payroll.Allowances{}, payroll.CustomDeductions{})
	assert.ErrorIs(t, err, payroll.ErrInvalidHourlyRate)

	_, err = calc.Calculate(decPtr(decimal.NewFromInt(10000)), payroll.WorkHoursBreakdown{RegularMinutes: -1}, payroll.Allowances{}, payroll.CustomDeductions{})
	assert.ErrorIs(t, err, payroll.ErrNegativeWorkHours)

	_, err = calc.Calculate(decPtr(decimal.NewFromInt(10000)), payroll.WorkHoursBreakdown{},
		payroll.Allowances{Meal: decimal.NewFromInt(-1)}, payroll.CustomDeductions{})
	assert.ErrorIs(t, err, payroll.ErrNegativeAllowance)

	_, err = calc.Calculate(decPtr(decimal.NewFromInt(10000)), payroll.WorkHoursBreakdown{},
		payroll.Allowances{}, payroll.CustomDeductions{Attendance: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, payroll.ErrNegativeDeduction)
}

func TestCalculate_RejectsEmptyBracketTable(t *testing.T) {
	t.Parallel()

	rates := config.DefaultPayrollConfig()
	rates.TaxBrackets = nil
	calc := NewCalculator(rates, config.DefaultComplianceConfig())

	_, err := calc.Calculate(decPtr(decimal.NewFromInt(10000)), payroll.WorkHoursBreakdown{}, payroll.Allowances{}, payroll.CustomDeductions{})
	assert.ErrorIs(t, err, payroll.ErrMissingTaxBrackets)
}

func TestCalculate_Deterministic(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator()

	hours := payroll.WorkHoursBreakdown{RegularMinutes: 480 * 21, OvertimeMinutes: 90}
	allowances := payroll.Allowances{Meal: decimal.NewFromInt(100000)}
	deductions := payroll.CustomDeductions{Attendance: decimal.NewFromInt(20000)}

	first, err := calc.Calculate(decPtr(decimal.NewFromInt(11000)), hours, allowances, deductions)
	require.NoError(t, err)
	second, err := calc.Calculate(decPtr(decimal.NewFromInt(11000)), hours, allowances, deductions)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
