package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultSalaryDate is the payday used when none is configured.
const DefaultSalaryDate = 25

// SalarySettings is the single row describing the user's income.
type SalarySettings struct {
	ID            uuid.UUID
	MonthlySalary decimal.Decimal
	SalaryDate    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HealthSettings is the single row describing the user's body metrics.
type HealthSettings struct {
	ID           uuid.UUID
	Weight       *float64 // kg
	Height       *float64 // cm
	BirthDate    *time.Time
	TargetWeight *float64 // kg
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
