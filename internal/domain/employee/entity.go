package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	Name       string
	HourlyRate *decimal.Decimal // nil falls back to the configured default rate
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
