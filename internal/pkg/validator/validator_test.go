package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2024-01-15")
	assert.True(t, ok)

	_, ok = IsValidDate("15-01-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestIsValidClock(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidClock("09:00"))
	assert.True(t, IsValidClock("23:59"))
	assert.False(t, IsValidClock("24:00"))
	assert.False(t, IsValidClock("9:00"))
	assert.False(t, IsValidClock(""))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "employee_id", Message: "employee_id is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}

	assert.Equal(t, "employee_id: employee_id is required; date: date must be in YYYY-MM-DD format", errs.Error())
	assert.Equal(t, map[string]string{
		"employee_id": "employee_id is required",
		"date":        "date must be in YYYY-MM-DD format",
	}, errs.ToMap())
}
