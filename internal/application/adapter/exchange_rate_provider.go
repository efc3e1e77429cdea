package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// ExchangeRateProvider exposes the THB conversion table.
type ExchangeRateProvider interface {
	// Current returns a snapshot of the rate table.
	Current() valueobject.RateTable

	// Refresh fetches the feed and merges it into the table. On failure the
	// previous table is kept.
	Refresh(ctx context.Context) (valueobject.RateTable, error)
}

// ExchangeRateFeed fetches fiat rates expressed in THB.
type ExchangeRateFeed interface {
	// FetchRates returns the THB price of one unit of each currency in the feed.
	FetchRates(ctx context.Context) (map[string]decimal.Decimal, error)
}
