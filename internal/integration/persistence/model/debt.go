package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Type            string          `gorm:"type:varchar(30);not null;default:'credit_card'"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RemainingAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyPayment  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	InterestRate    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	DueDay          int             `gorm:"not null;default:25"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:              m.ID,
		Name:            m.Name,
		Type:            entity.DebtType(m.Type),
		TotalAmount:     m.TotalAmount,
		RemainingAmount: m.RemainingAmount,
		MonthlyPayment:  m.MonthlyPayment,
		InterestRate:    m.InterestRate,
		DueDay:          m.DueDay,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:              debt.ID,
		Name:            debt.Name,
		Type:            string(debt.Type),
		TotalAmount:     debt.TotalAmount,
		RemainingAmount: debt.RemainingAmount,
		MonthlyPayment:  debt.MonthlyPayment,
		InterestRate:    debt.InterestRate,
		DueDay:          debt.DueDay,
		Notes:           debt.Notes,
		CreatedAt:       debt.CreatedAt,
		UpdatedAt:       debt.UpdatedAt,
	}
}

// DebtPaymentModel represents the debt_payments table in the database.
type DebtPaymentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DebtID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentDate time.Time       `gorm:"type:date;not null"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`

	Debt DebtModel `gorm:"foreignKey:DebtID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the DebtPaymentModel.
func (DebtPaymentModel) TableName() string {
	return "debt_payments"
}

// ToEntity converts a DebtPaymentModel to a domain DebtPayment entity.
func (m *DebtPaymentModel) ToEntity() *entity.DebtPayment {
	return &entity.DebtPayment{
		ID:          m.ID,
		DebtID:      m.DebtID,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

// DebtPaymentFromEntity creates a DebtPaymentModel from a domain DebtPayment entity.
func DebtPaymentFromEntity(payment *entity.DebtPayment) *DebtPaymentModel {
	return &DebtPaymentModel{
		ID:          payment.ID,
		DebtID:      payment.DebtID,
		Amount:      payment.Amount,
		PaymentDate: payment.PaymentDate,
		Notes:       payment.Notes,
		CreatedAt:   payment.CreatedAt,
	}
}
