package valueobject

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the currency every investment value is reported in.
const BaseCurrency = "THB"

// RateSource tells where the current rate table came from.
type RateSource string

const (
	RateSourceStatic RateSource = "static"
	RateSourceFeed   RateSource = "feed"
)

// RateTable maps a currency code to its price in THB.
type RateTable struct {
	Rates     map[string]decimal.Decimal
	UpdatedAt time.Time
	Source    RateSource
}

// DefaultRates returns the built-in THB conversion table.
func DefaultRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"THB": decimal.NewFromInt(1),
		"USD": decimal.RequireFromString("35.5"),
		"EUR": decimal.RequireFromString("38.5"),
		"GBP": decimal.RequireFromString("45.0"),
		"JPY": decimal.RequireFromString("0.24"),
		"CNY": decimal.RequireFromString("4.9"),
		"KRW": decimal.RequireFromString("0.027"),
		"BTC": decimal.NewFromInt(1500000),
		"ETH": decimal.NewFromInt(100000),
	}
}

// IsCryptoCurrency reports whether code is priced outside the fiat feed.
func IsCryptoCurrency(code string) bool {
	switch strings.ToUpper(code) {
	case "BTC", "ETH":
		return true
	}
	return false
}

// Rate returns the THB price of one unit of currency.
func (t RateTable) Rate(currency string) (decimal.Decimal, bool) {
	rate, ok := t.Rates[strings.ToUpper(currency)]
	return rate, ok
}

// Clone returns a deep copy of the table.
func (t RateTable) Clone() RateTable {
	rates := make(map[string]decimal.Decimal, len(t.Rates))
	for code, rate := range t.Rates {
		rates[code] = rate
	}
	return RateTable{Rates: rates, UpdatedAt: t.UpdatedAt, Source: t.Source}
}

// ValueInTHB converts a holding to THB. The current price is used when set,
// otherwise the purchase price; a zero price means amount is already a value
// in the given currency.
func ValueInTHB(amount, purchasePrice, currentPrice, rate decimal.Decimal) decimal.Decimal {
	price := currentPrice
	if price.IsZero() {
		price = purchasePrice
	}
	if price.IsZero() {
		price = decimal.NewFromInt(1)
	}
	return amount.Mul(price).Mul(rate).Round(2)
}
