package investment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

type fakeInvestmentRepository struct {
	investments map[uuid.UUID]*entity.Investment
}

func newFakeInvestmentRepository() *fakeInvestmentRepository {
	return &fakeInvestmentRepository{investments: make(map[uuid.UUID]*entity.Investment)}
}

func (r *fakeInvestmentRepository) Create(_ context.Context, inv *entity.Investment) error {
	r.investments[inv.ID] = inv
	return nil
}

func (r *fakeInvestmentRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Investment, error) {
	inv, ok := r.investments[id]
	if !ok {
		return nil, domainerror.ErrInvestmentNotFound
	}
	return inv, nil
}

func (r *fakeInvestmentRepository) FindAll(_ context.Context) ([]*entity.Investment, error) {
	result := make([]*entity.Investment, 0, len(r.investments))
	for _, inv := range r.investments {
		result = append(result, inv)
	}
	return result, nil
}

func (r *fakeInvestmentRepository) GetSummary(_ context.Context) (*entity.InvestmentSummary, error) {
	summary := &entity.InvestmentSummary{ByType: make(map[entity.InvestmentType]decimal.Decimal)}
	for _, inv := range r.investments {
		summary.TotalValueTHB = summary.TotalValueTHB.Add(inv.ValueTHB)
		summary.ByType[inv.Type] = summary.ByType[inv.Type].Add(inv.ValueTHB)
	}
	return summary, nil
}

func (r *fakeInvestmentRepository) Update(_ context.Context, inv *entity.Investment) error {
	r.investments[inv.ID] = inv
	return nil
}

func (r *fakeInvestmentRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.investments, id)
	return nil
}

type fakeRateProvider struct {
	table      valueobject.RateTable
	refreshErr error
}

func newFakeRateProvider() *fakeRateProvider {
	return &fakeRateProvider{table: valueobject.RateTable{Rates: valueobject.DefaultRates(), Source: valueobject.RateSourceStatic}}
}

func (p *fakeRateProvider) Current() valueobject.RateTable { return p.table.Clone() }

func (p *fakeRateProvider) Refresh(_ context.Context) (valueobject.RateTable, error) {
	if p.refreshErr != nil {
		return valueobject.RateTable{}, p.refreshErr
	}
	p.table.Source = valueobject.RateSourceFeed
	return p.table.Clone(), nil
}

func investmentErrorCode(t *testing.T, err error) domainerror.InvestmentErrorCode {
	t.Helper()
	var invErr *domainerror.InvestmentError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected InvestmentError, got %v", err)
	}
	return invErr.Code
}

func TestCreateInvestmentUseCase(t *testing.T) {
	d := decimal.RequireFromString
	crypto := entity.InvestmentTypeCrypto
	given := d("12345.67")

	tests := []struct {
		name         string
		input        InvestmentInput
		expectedCode domainerror.InvestmentErrorCode
		value        string
		currency     string
	}{
		{
			name:     "usd stock priced from the rate table",
			input:    InvestmentInput{Name: "AAPL", Amount: d("10"), Currency: "usd", PurchasePrice: d("150"), CurrentPrice: d("200")},
			value:    "71000",
			currency: "USD",
		},
		{
			name:     "thb cash defaults",
			input:    InvestmentInput{Name: "Savings", Amount: d("5000")},
			value:    "5000",
			currency: "THB",
		},
		{
			name:     "crypto units",
			input:    InvestmentInput{Name: "BTC", Type: &crypto, Amount: d("0.1"), Currency: "BTC"},
			value:    "150000",
			currency: "BTC",
		},
		{
			name:     "client supplied value wins",
			input:    InvestmentInput{Name: "Fund", Amount: d("1"), Currency: "XYZ", ValueTHB: &given},
			value:    "12345.67",
			currency: "XYZ",
		},
		{name: "unknown currency", input: InvestmentInput{Name: "x", Amount: d("1"), Currency: "XYZ"}, expectedCode: domainerror.ErrCodeUnknownCurrency},
		{name: "zero amount", input: InvestmentInput{Name: "x"}, expectedCode: domainerror.ErrCodeInvalidInvestmentAmount},
		{name: "missing name", input: InvestmentInput{Amount: d("1")}, expectedCode: domainerror.ErrCodeMissingInvestmentFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateInvestmentUseCase(newFakeInvestmentRepository(), newFakeRateProvider())
			output, err := uc.Execute(context.Background(), tt.input)
			if tt.expectedCode != "" {
				if code := investmentErrorCode(t, err); code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !output.Investment.ValueTHB.Equal(d(tt.value)) {
				t.Errorf("expected value %s, got %s", tt.value, output.Investment.ValueTHB)
			}
			if output.Investment.Currency != tt.currency {
				t.Errorf("expected currency %s, got %s", tt.currency, output.Investment.Currency)
			}
		})
	}
}

func TestUpdateAndListInvestments(t *testing.T) {
	repo := newFakeInvestmentRepository()
	rates := newFakeRateProvider()
	created, err := NewCreateInvestmentUseCase(repo, rates).Execute(context.Background(), InvestmentInput{Name: "Gold", Amount: decimal.NewFromInt(2), PurchasePrice: decimal.NewFromInt(30000)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := NewUpdateInvestmentUseCase(repo, rates).Execute(context.Background(), UpdateInvestmentInput{
		InvestmentID:    created.Investment.ID,
		InvestmentInput: InvestmentInput{Name: "Gold", Amount: decimal.NewFromInt(2), PurchasePrice: decimal.NewFromInt(30000), CurrentPrice: decimal.NewFromInt(35000)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Investment.ValueTHB.Equal(decimal.NewFromInt(70000)) {
		t.Errorf("expected value 70000, got %s", updated.Investment.ValueTHB)
	}

	list, err := NewListInvestmentsUseCase(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !list.Summary.TotalValueTHB.Equal(decimal.NewFromInt(70000)) {
		t.Errorf("expected total 70000, got %s", list.Summary.TotalValueTHB)
	}
	if !list.Summary.ByType[entity.InvestmentTypeStock].Equal(decimal.NewFromInt(70000)) {
		t.Errorf("expected stock bucket 70000, got %s", list.Summary.ByType[entity.InvestmentTypeStock])
	}

	if err := NewDeleteInvestmentUseCase(repo).Execute(context.Background(), DeleteInvestmentInput{InvestmentID: uuid.New()}); err == nil {
		t.Error("expected not found error")
	}
}

func TestRefreshRatesUseCase(t *testing.T) {
	rates := newFakeRateProvider()

	output, err := NewRefreshRatesUseCase(rates).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Table.Source != valueobject.RateSourceFeed {
		t.Errorf("expected feed source, got %s", output.Table.Source)
	}

	rates.refreshErr = errors.New("timeout")
	_, err = NewRefreshRatesUseCase(rates).Execute(context.Background())
	if code := investmentErrorCode(t, err); code != domainerror.ErrCodeRateFeedUnavailable {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeRateFeedUnavailable, code)
	}

	current := NewGetRatesUseCase(rates).Execute(context.Background())
	if _, ok := current.Table.Rate("USD"); !ok {
		t.Error("expected the previous table to stay available")
	}
}
