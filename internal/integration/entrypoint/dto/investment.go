package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// InvestmentRequest is the body of investment creation and update.
type InvestmentRequest struct {
	Name          string           `json:"name"`
	Type          *string          `json:"type,omitempty"`
	Amount        *decimal.Decimal `json:"amount"`
	Currency      string           `json:"currency"`
	ValueTHB      *decimal.Decimal `json:"value_thb,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	CurrentPrice  *decimal.Decimal `json:"current_price,omitempty"`
	Notes         string           `json:"notes"`
}

// InvestmentResponse represents a single investment in API responses.
type InvestmentResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	ValueTHB      decimal.Decimal `json:"value_thb"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CurrentPrice  decimal.Decimal `json:"current_price"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}

// InvestmentSummaryResponse totals the portfolio in THB.
type InvestmentSummaryResponse struct {
	TotalValueTHB decimal.Decimal            `json:"total_value_thb"`
	ByType        map[string]decimal.Decimal `json:"by_type"`
}

// InvestmentEnvelope wraps a single investment.
type InvestmentEnvelope struct {
	Investment InvestmentResponse `json:"investment"`
}

// InvestmentListResponse represents the response for listing investments.
type InvestmentListResponse struct {
	Investments []InvestmentResponse      `json:"investments"`
	Summary     InvestmentSummaryResponse `json:"summary"`
}

// RatesResponse represents the exchange rate table.
type RatesResponse struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	UpdatedAt time.Time                  `json:"updated_at"`
	Source    string                     `json:"source"`
}

// ToInvestmentResponse converts a domain Investment to its DTO.
func ToInvestmentResponse(inv *entity.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:            inv.ID.String(),
		Name:          inv.Name,
		Type:          string(inv.Type),
		Amount:        inv.Amount,
		Currency:      inv.Currency,
		ValueTHB:      inv.ValueTHB,
		PurchasePrice: inv.PurchasePrice,
		CurrentPrice:  inv.CurrentPrice,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
	}
}

// ToInvestmentListResponse converts investments and their summary.
func ToInvestmentListResponse(investments []*entity.Investment, summary *entity.InvestmentSummary) InvestmentListResponse {
	responses := make([]InvestmentResponse, len(investments))
	for i, inv := range investments {
		responses[i] = ToInvestmentResponse(inv)
	}

	response := InvestmentListResponse{
		Investments: responses,
		Summary:     InvestmentSummaryResponse{ByType: map[string]decimal.Decimal{}},
	}
	if summary != nil {
		response.Summary.TotalValueTHB = summary.TotalValueTHB
		for investmentType, value := range summary.ByType {
			response.Summary.ByType[string(investmentType)] = value
		}
	}
	return response
}

// ToRatesResponse converts a rate table.
func ToRatesResponse(table valueobject.RateTable) RatesResponse {
	return RatesResponse{
		Base:      valueobject.BaseCurrency,
		Rates:     table.Rates,
		UpdatedAt: table.UpdatedAt,
		Source:    string(table.Source),
	}
}
