// Package investment contains investment and exchange rate use cases.
package investment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []*entity.Investment
	Summary     *entity.InvestmentSummary
}

// ListInvestmentsUseCase handles listing investments with their totals.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the listing.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context) (*ListInvestmentsOutput, error) {
	investments, err := uc.investmentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	summary, err := uc.investmentRepo.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize investments: %w", err)
	}

	return &ListInvestmentsOutput{
		Investments: investments,
		Summary:     summary,
	}, nil
}

// InvestmentInput carries the editable fields of an investment.
type InvestmentInput struct {
	Name          string
	Type          *entity.InvestmentType // Optional, defaults to stock
	Amount        decimal.Decimal
	Currency      string           // Optional, defaults to THB
	ValueTHB      *decimal.Decimal // Optional, computed from the rate table when nil
	PurchasePrice decimal.Decimal
	CurrentPrice  decimal.Decimal
	Notes         string
}

// apply validates input and writes it onto inv, pricing it with rates.
func apply(inv *entity.Investment, input InvestmentInput, rates adapter.ExchangeRateProvider) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeMissingInvestmentFields,
			"name is required",
			nil,
		)
	}

	if !input.Amount.IsPositive() {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidInvestmentAmount,
		)
	}
	if input.PurchasePrice.IsNegative() || input.CurrentPrice.IsNegative() ||
		(input.ValueTHB != nil && input.ValueTHB.IsNegative()) {
		return domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentAmount,
			"prices and values must not be negative",
			domainerror.ErrInvalidInvestmentAmount,
		)
	}

	investmentType := entity.InvestmentTypeStock
	if input.Type != nil && *input.Type != "" {
		if !input.Type.IsValid() {
			return domainerror.NewInvestmentError(
				domainerror.ErrCodeInvalidInvestmentType,
				"unknown investment type",
				domainerror.ErrInvalidInvestmentType,
			)
		}
		investmentType = *input.Type
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = valueobject.BaseCurrency
	}

	var value decimal.Decimal
	if input.ValueTHB != nil {
		value = *input.ValueTHB
	} else {
		rate, ok := rates.Current().Rate(currency)
		if !ok {
			return domainerror.NewInvestmentError(
				domainerror.ErrCodeUnknownCurrency,
				fmt.Sprintf("no exchange rate for currency %s", currency),
				domainerror.ErrUnknownCurrency,
			)
		}
		value = valueobject.ValueInTHB(input.Amount, input.PurchasePrice, input.CurrentPrice, rate)
	}

	inv.Name = name
	inv.Type = investmentType
	inv.Amount = input.Amount
	inv.Currency = currency
	inv.ValueTHB = value
	inv.PurchasePrice = input.PurchasePrice
	inv.CurrentPrice = input.CurrentPrice
	inv.Notes = input.Notes
	return nil
}

// CreateInvestmentOutput represents the output of investment creation.
type CreateInvestmentOutput struct {
	Investment *entity.Investment
}

// CreateInvestmentUseCase handles investment creation.
type CreateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	rates          adapter.ExchangeRateProvider
}

// NewCreateInvestmentUseCase creates a new CreateInvestmentUseCase instance.
func NewCreateInvestmentUseCase(investmentRepo adapter.InvestmentRepository, rates adapter.ExchangeRateProvider) *CreateInvestmentUseCase {
	return &CreateInvestmentUseCase{
		investmentRepo: investmentRepo,
		rates:          rates,
	}
}

// Execute performs the creation.
func (uc *CreateInvestmentUseCase) Execute(ctx context.Context, input InvestmentInput) (*CreateInvestmentOutput, error) {
	inv := entity.NewInvestment("", entity.InvestmentTypeStock, decimal.Zero, valueobject.BaseCurrency)
	if err := apply(inv, input, uc.rates); err != nil {
		return nil, err
	}

	if err := uc.investmentRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	return &CreateInvestmentOutput{
		Investment: inv,
	}, nil
}

// UpdateInvestmentInput represents the input for investment update.
type UpdateInvestmentInput struct {
	InvestmentID uuid.UUID
	InvestmentInput
}

// UpdateInvestmentOutput represents the output of investment update.
type UpdateInvestmentOutput struct {
	Investment *entity.Investment
}

// UpdateInvestmentUseCase replaces the editable fields of an investment.
type UpdateInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
	rates          adapter.ExchangeRateProvider
}

// NewUpdateInvestmentUseCase creates a new UpdateInvestmentUseCase instance.
func NewUpdateInvestmentUseCase(investmentRepo adapter.InvestmentRepository, rates adapter.ExchangeRateProvider) *UpdateInvestmentUseCase {
	return &UpdateInvestmentUseCase{
		investmentRepo: investmentRepo,
		rates:          rates,
	}
}

// Execute performs the update.
func (uc *UpdateInvestmentUseCase) Execute(ctx context.Context, input UpdateInvestmentInput) (*UpdateInvestmentOutput, error) {
	inv, err := findInvestment(ctx, uc.investmentRepo, input.InvestmentID)
	if err != nil {
		return nil, err
	}

	if err := apply(inv, input.InvestmentInput, uc.rates); err != nil {
		return nil, err
	}
	inv.UpdatedAt = time.Now().UTC()

	if err := uc.investmentRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to update investment: %w", err)
	}

	return &UpdateInvestmentOutput{
		Investment: inv,
	}, nil
}

// DeleteInvestmentInput represents the input for investment deletion.
type DeleteInvestmentInput struct {
	InvestmentID uuid.UUID
}

// DeleteInvestmentUseCase handles investment deletion.
type DeleteInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) error {
	if _, err := findInvestment(ctx, uc.investmentRepo, input.InvestmentID); err != nil {
		return err
	}

	if err := uc.investmentRepo.Delete(ctx, input.InvestmentID); err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	return nil
}

func findInvestment(ctx context.Context, repo adapter.InvestmentRepository, id uuid.UUID) (*entity.Investment, error) {
	inv, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvestmentNotFound) {
			return nil, domainerror.NewInvestmentError(
				domainerror.ErrCodeInvestmentNotFound,
				"investment not found",
				domainerror.ErrInvestmentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}
	return inv, nil
}
