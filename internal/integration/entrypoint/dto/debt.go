package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// DebtRequest is the body of debt creation and update.
type DebtRequest struct {
	Name            string           `json:"name"`
	Type            *string          `json:"type,omitempty"`
	TotalAmount     *decimal.Decimal `json:"total_amount"`
	RemainingAmount *decimal.Decimal `json:"remaining_amount,omitempty"`
	MonthlyPayment  *decimal.Decimal `json:"monthly_payment,omitempty"`
	InterestRate    *decimal.Decimal `json:"interest_rate,omitempty"`
	DueDate         *int             `json:"due_date,omitempty"`
	Notes           string           `json:"notes"`
}

// DebtResponse represents a single debt in API responses.
type DebtResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	DueDate         int             `json:"due_date"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
}

// DebtSummaryResponse totals the outstanding debts.
type DebtSummaryResponse struct {
	TotalDebt           decimal.Decimal `json:"total_debt"`
	TotalMonthlyPayment decimal.Decimal `json:"total_monthly_payment"`
}

// DebtEnvelope wraps a single debt.
type DebtEnvelope struct {
	Debt DebtResponse `json:"debt"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts   []DebtResponse      `json:"debts"`
	Summary DebtSummaryResponse `json:"summary"`
}

// RecordPaymentRequest represents the request body for a debt payment.
type RecordPaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	PaymentDate *string          `json:"payment_date"`
	Notes       string           `json:"notes"`
}

// PaymentResponse represents a single debt payment.
type PaymentResponse struct {
	ID          string          `json:"id"`
	DebtID      string          `json:"debt_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate string          `json:"payment_date"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PaymentEnvelope wraps a recorded payment and the debt it reduced.
type PaymentEnvelope struct {
	Payment PaymentResponse `json:"payment"`
	Debt    DebtResponse    `json:"debt"`
}

// PaymentListResponse represents the response for listing payments.
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToDebtResponse converts a domain Debt to its DTO.
func ToDebtResponse(d *entity.Debt) DebtResponse {
	return DebtResponse{
		ID:              d.ID.String(),
		Name:            d.Name,
		Type:            string(d.Type),
		TotalAmount:     d.TotalAmount,
		RemainingAmount: d.RemainingAmount,
		MonthlyPayment:  d.MonthlyPayment,
		InterestRate:    d.InterestRate,
		DueDate:         d.DueDay,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDebtListResponse converts debts and their summary.
func ToDebtListResponse(debts []*entity.Debt, summary *entity.DebtSummary) DebtListResponse {
	responses := make([]DebtResponse, len(debts))
	for i, d := range debts {
		responses[i] = ToDebtResponse(d)
	}
	response := DebtListResponse{Debts: responses}
	if summary != nil {
		response.Summary = DebtSummaryResponse{
			TotalDebt:           summary.TotalDebt,
			TotalMonthlyPayment: summary.TotalMonthlyPayment,
		}
	}
	return response
}

// ToPaymentResponse converts a domain DebtPayment to its DTO.
func ToPaymentResponse(p *entity.DebtPayment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID.String(),
		DebtID:      p.DebtID.String(),
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate.Format(DateLayout),
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
}

// ToPaymentListResponse converts a list of payments.
func ToPaymentListResponse(payments []*entity.DebtPayment) PaymentListResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(p)
	}
	return PaymentListResponse{Payments: responses}
}
