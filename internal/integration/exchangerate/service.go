package exchangerate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// Service holds the rate table in use and refreshes it from a feed.
type Service struct {
	mu    sync.RWMutex
	table valueobject.RateTable
	feed  adapter.ExchangeRateFeed
	clock adapter.Clock
}

// NewService creates a rate service seeded with the built-in table and
// overrides on top. feed may be nil, in which case Refresh fails.
func NewService(feed adapter.ExchangeRateFeed, overrides map[string]decimal.Decimal, clock adapter.Clock) *Service {
	rates := valueobject.DefaultRates()
	for code, rate := range overrides {
		if rate.IsPositive() {
			rates[strings.ToUpper(code)] = rate
		}
	}

	return &Service{
		table: valueobject.RateTable{
			Rates:     rates,
			UpdatedAt: clock.Now().UTC(),
			Source:    valueobject.RateSourceStatic,
		},
		feed:  feed,
		clock: clock,
	}
}

// Current returns a copy of the table in use.
func (s *Service) Current() valueobject.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone()
}

// Refresh pulls the feed and merges its fiat rates into the table.
// Crypto prices are not part of the feed and keep their value. On failure
// the table is left untouched.
func (s *Service) Refresh(ctx context.Context) (valueobject.RateTable, error) {
	if s.feed == nil {
		return valueobject.RateTable{}, fmt.Errorf("no exchange rate feed configured")
	}

	fetched, err := s.feed.FetchRates(ctx)
	if err != nil {
		return valueobject.RateTable{}, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.table.Clone()
	for code, rate := range fetched {
		if valueobject.IsCryptoCurrency(code) {
			continue
		}
		next.Rates[code] = rate
	}
	next.UpdatedAt = s.clock.Now().UTC()
	next.Source = valueobject.RateSourceFeed
	s.table = next

	slog.Info("Exchange rates refreshed", "currencies", len(fetched))
	return next.Clone(), nil
}
