package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Type          string          `gorm:"type:varchar(30);not null;default:'stock';index"`
	Amount        decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Currency      string          `gorm:"type:varchar(10);not null;default:'THB'"`
	ValueTHB      decimal.Decimal `gorm:"column:value_thb;type:decimal(15,2);not null;default:0"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`
	CurrentPrice  decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:            m.ID,
		Name:          m.Name,
		Type:          entity.InvestmentType(m.Type),
		Amount:        m.Amount,
		Currency:      m.Currency,
		ValueTHB:      m.ValueTHB,
		PurchasePrice: m.PurchasePrice,
		CurrentPrice:  m.CurrentPrice,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(inv *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:            inv.ID,
		Name:          inv.Name,
		Type:          string(inv.Type),
		Amount:        inv.Amount,
		Currency:      inv.Currency,
		ValueTHB:      inv.ValueTHB,
		PurchasePrice: inv.PurchasePrice,
		CurrentPrice:  inv.CurrentPrice,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
