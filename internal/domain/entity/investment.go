package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType represents the asset class of a holding.
type InvestmentType string

const (
	InvestmentTypeStock      InvestmentType = "stock"
	InvestmentTypeCrypto     InvestmentType = "crypto"
	InvestmentTypeGold       InvestmentType = "gold"
	InvestmentTypeRealEstate InvestmentType = "realestate"
	InvestmentTypeFund       InvestmentType = "fund"
	InvestmentTypeBond       InvestmentType = "bond"
	InvestmentTypeSavings    InvestmentType = "savings"
	InvestmentTypeOther      InvestmentType = "other"
)

// IsValid reports whether t is a known investment type.
func (t InvestmentType) IsValid() bool {
	switch t {
	case InvestmentTypeStock, InvestmentTypeCrypto, InvestmentTypeGold, InvestmentTypeRealEstate,
		InvestmentTypeFund, InvestmentTypeBond, InvestmentTypeSavings, InvestmentTypeOther:
		return true
	}
	return false
}

// Investment represents a held asset, valued in THB.
type Investment struct {
	ID            uuid.UUID
	Name          string
	Type          InvestmentType
	Amount        decimal.Decimal
	Currency      string
	ValueTHB      decimal.Decimal
	PurchasePrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInvestment creates a new Investment entity.
func NewInvestment(name string, investmentType InvestmentType, amount decimal.Decimal, currency string) *Investment {
	now := time.Now().UTC()

	return &Investment{
		ID:        uuid.New(),
		Name:      name,
		Type:      investmentType,
		Amount:    amount,
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// InvestmentSummary aggregates holdings by value.
type InvestmentSummary struct {
	TotalValueTHB decimal.Decimal
	ByType        map[InvestmentType]decimal.Decimal
}
