package investment

import (
	"context"
	"log/slog"

	"github.com/lifetracker/backend/internal/application/adapter"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// GetRatesOutput represents the current exchange rate table.
type GetRatesOutput struct {
	Table valueobject.RateTable
}

// GetRatesUseCase returns the exchange rate table in use.
type GetRatesUseCase struct {
	rates adapter.ExchangeRateProvider
}

// NewGetRatesUseCase creates a new GetRatesUseCase instance.
func NewGetRatesUseCase(rates adapter.ExchangeRateProvider) *GetRatesUseCase {
	return &GetRatesUseCase{
		rates: rates,
	}
}

// Execute returns a snapshot of the table.
func (uc *GetRatesUseCase) Execute(_ context.Context) *GetRatesOutput {
	return &GetRatesOutput{
		Table: uc.rates.Current(),
	}
}

// RefreshRatesUseCase pulls the exchange rate feed on demand.
type RefreshRatesUseCase struct {
	rates adapter.ExchangeRateProvider
}

// NewRefreshRatesUseCase creates a new RefreshRatesUseCase instance.
func NewRefreshRatesUseCase(rates adapter.ExchangeRateProvider) *RefreshRatesUseCase {
	return &RefreshRatesUseCase{
		rates: rates,
	}
}

// Execute refreshes the table. On failure the previous table stays in use.
func (uc *RefreshRatesUseCase) Execute(ctx context.Context) (*GetRatesOutput, error) {
	table, err := uc.rates.Refresh(ctx)
	if err != nil {
		slog.Warn("Exchange rate refresh failed", "error", err)
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeRateFeedUnavailable,
			"exchange rate feed unavailable",
			domainerror.ErrRateFeedUnavailable,
		)
	}

	return &GetRatesOutput{
		Table: table,
	}, nil
}
