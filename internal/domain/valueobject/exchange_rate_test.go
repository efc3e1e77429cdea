package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRateTable_Rate(t *testing.T) {
	table := RateTable{Rates: DefaultRates(), Source: RateSourceStatic}

	rate, ok := table.Rate("usd")
	if !ok {
		t.Fatal("expected USD to be known")
	}
	if !rate.Equal(decimal.RequireFromString("35.5")) {
		t.Errorf("expected 35.5, got %s", rate)
	}

	if _, ok := table.Rate("XYZ"); ok {
		t.Error("expected unknown currency to be missing")
	}

	base, _ := table.Rate(BaseCurrency)
	if !base.Equal(decimal.NewFromInt(1)) {
		t.Errorf("expected base rate 1, got %s", base)
	}
}

func TestRateTable_CloneIsIndependent(t *testing.T) {
	table := RateTable{Rates: DefaultRates(), Source: RateSourceStatic}
	clone := table.Clone()
	clone.Rates["USD"] = decimal.NewFromInt(99)

	if rate, _ := table.Rate("USD"); !rate.Equal(decimal.RequireFromString("35.5")) {
		t.Errorf("expected original table to keep 35.5, got %s", rate)
	}
}

func TestValueInTHB(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name          string
		amount        string
		purchasePrice string
		currentPrice  string
		rate          string
		expected      string
	}{
		{"current price preferred", "10", "100", "120", "35.5", "42600"},
		{"falls back to purchase price", "10", "100", "0", "35.5", "35500"},
		{"no price means cash amount", "1000", "0", "0", "38.5", "38500"},
		{"fractional crypto", "0.05", "0", "0", "1500000", "75000"},
		{"rounded to satang", "3", "0.333", "0", "1", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValueInTHB(d(tt.amount), d(tt.purchasePrice), d(tt.currentPrice), d(tt.rate))
			if !got.Equal(d(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestIsCryptoCurrency(t *testing.T) {
	if !IsCryptoCurrency("btc") || !IsCryptoCurrency("ETH") {
		t.Error("expected BTC and ETH to be crypto")
	}
	if IsCryptoCurrency("USD") {
		t.Error("expected USD not to be crypto")
	}
}
