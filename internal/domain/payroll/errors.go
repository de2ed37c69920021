package payroll

import "errors"

var (
	ErrInvalidHourlyRate   = errors.New("hourly rate must be positive")
	ErrNegativeWorkHours   = errors.New("work hour fields must not be negative")
	ErrNegativeAllowance   = errors.New("allowance components must not be negative")
	ErrNegativeDeduction   = errors.New("deduction components must not be negative")
	ErrMissingTaxBrackets  = errors.New("tax bracket table is empty")
	ErrRecordNotFound      = errors.New("payroll record not found")
	ErrRecordAlreadyExists = errors.New("payroll record already exists for this period")
	ErrInvalidPeriod       = errors.New("invalid payroll period")
)
