package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtType represents the kind of liability.
type DebtType string

const (
	DebtTypeCreditCard   DebtType = "credit_card"
	DebtTypeInstallment  DebtType = "installment"
	DebtTypeCarLoan      DebtType = "car_loan"
	DebtTypeHomeLoan     DebtType = "home_loan"
	DebtTypePersonalLoan DebtType = "personal_loan"
	DebtTypeOther        DebtType = "other"
)

// IsValid reports whether t is a known debt type.
func (t DebtType) IsValid() bool {
	switch t {
	case DebtTypeCreditCard, DebtTypeInstallment, DebtTypeCarLoan,
		DebtTypeHomeLoan, DebtTypePersonalLoan, DebtTypeOther:
		return true
	}
	return false
}

// DefaultDebtDueDay is the day of month payments fall due when unspecified.
const DefaultDebtDueDay = 25

// Debt represents an outstanding liability.
type Debt struct {
	ID              uuid.UUID
	Name            string
	Type            DebtType
	TotalAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	MonthlyPayment  decimal.Decimal
	InterestRate    decimal.Decimal
	DueDay          int
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewDebt creates a new Debt entity.
func NewDebt(name string, debtType DebtType, total, remaining, monthlyPayment, interestRate decimal.Decimal, dueDay int, notes string) *Debt {
	now := time.Now().UTC()

	return &Debt{
		ID:              uuid.New(),
		Name:            name,
		Type:            debtType,
		TotalAmount:     total,
		RemainingAmount: remaining,
		MonthlyPayment:  monthlyPayment,
		InterestRate:    interestRate,
		DueDay:          dueDay,
		Notes:           notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// DebtPayment records a repayment made against a debt.
type DebtPayment struct {
	ID          uuid.UUID
	DebtID      uuid.UUID
	Amount      decimal.Decimal
	PaymentDate time.Time
	Notes       string
	CreatedAt   time.Time
}

// NewDebtPayment creates a new DebtPayment entity.
func NewDebtPayment(debtID uuid.UUID, amount decimal.Decimal, paymentDate time.Time, notes string) *DebtPayment {
	return &DebtPayment{
		ID:          uuid.New(),
		DebtID:      debtID,
		Amount:      amount,
		PaymentDate: paymentDate,
		Notes:       notes,
		CreatedAt:   time.Now().UTC(),
	}
}

// DebtSummary aggregates all debts.
type DebtSummary struct {
	TotalDebt           decimal.Decimal
	TotalMonthlyPayment decimal.Decimal
}
