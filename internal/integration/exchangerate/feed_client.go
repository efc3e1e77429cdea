// Package exchangerate fetches currency rates and keeps the table investments are valued with.
package exchangerate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

const (
	defaultRequestTimeout = 10 * time.Second
	// feedBaseCurrency is the currency every cube rate is quoted against.
	feedBaseCurrency = "EUR"
)

// FeedClient reads an ECB style daily reference rate document:
// <Cube><Cube time="..."><Cube currency="USD" rate="1.08"/>...</Cube></Cube>
type FeedClient struct {
	url    string
	client *http.Client
}

// NewFeedClient creates a new feed client. A non-positive timeout falls back to ten seconds.
func NewFeedClient(url string, timeout time.Duration) adapter.ExchangeRateFeed {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &FeedClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchRates returns the THB price of every currency in the feed.
func (c *FeedClient) FetchRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	body, err := c.download(ctx)
	if err != nil {
		return nil, err
	}
	return parseFeed(body)
}

func (c *FeedClient) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// parseFeed converts the EUR quoted cubes into THB prices.
func parseFeed(raw []byte) (map[string]decimal.Decimal, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	perEUR := map[string]decimal.Decimal{feedBaseCurrency: decimal.NewFromInt(1)}
	for _, cube := range doc.FindElements("//Cube[@currency]") {
		code := strings.ToUpper(strings.TrimSpace(cube.SelectAttrValue("currency", "")))
		rate, err := decimal.NewFromString(strings.TrimSpace(cube.SelectAttrValue("rate", "")))
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("invalid rate for %s", code)
		}
		perEUR[code] = rate
	}

	thbPerEUR, ok := perEUR[valueobject.BaseCurrency]
	if !ok {
		return nil, fmt.Errorf("feed has no %s rate", valueobject.BaseCurrency)
	}

	rates := make(map[string]decimal.Decimal, len(perEUR))
	for code, rate := range perEUR {
		rates[code] = thbPerEUR.DivRound(rate, 6)
	}
	rates[valueobject.BaseCurrency] = decimal.NewFromInt(1)
	return rates, nil
}
