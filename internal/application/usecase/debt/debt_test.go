package debt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

type fakeDebtRepository struct {
	debts    map[uuid.UUID]*entity.Debt
	payments []*entity.DebtPayment
}

func newFakeDebtRepository() *fakeDebtRepository {
	return &fakeDebtRepository{debts: make(map[uuid.UUID]*entity.Debt)}
}

func (r *fakeDebtRepository) Create(_ context.Context, debt *entity.Debt) error {
	r.debts[debt.ID] = debt
	return nil
}

func (r *fakeDebtRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Debt, error) {
	debt, ok := r.debts[id]
	if !ok {
		return nil, domainerror.ErrDebtNotFound
	}
	return debt, nil
}

func (r *fakeDebtRepository) FindAll(_ context.Context) ([]*entity.Debt, error) {
	debts := make([]*entity.Debt, 0, len(r.debts))
	for _, d := range r.debts {
		debts = append(debts, d)
	}
	return debts, nil
}

func (r *fakeDebtRepository) GetSummary(_ context.Context) (*entity.DebtSummary, error) {
	summary := &entity.DebtSummary{}
	for _, d := range r.debts {
		summary.TotalDebt = summary.TotalDebt.Add(d.RemainingAmount)
		summary.TotalMonthlyPayment = summary.TotalMonthlyPayment.Add(d.MonthlyPayment)
	}
	return summary, nil
}

func (r *fakeDebtRepository) Update(_ context.Context, debt *entity.Debt) error {
	r.debts[debt.ID] = debt
	return nil
}

func (r *fakeDebtRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.debts, id)
	return nil
}

func (r *fakeDebtRepository) FindPayments(_ context.Context, debtID uuid.UUID) ([]*entity.DebtPayment, error) {
	var result []*entity.DebtPayment
	for _, p := range r.payments {
		if p.DebtID == debtID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakeDebtRepository) RecordPayment(_ context.Context, payment *entity.DebtPayment) (*entity.Debt, error) {
	debt, ok := r.debts[payment.DebtID]
	if !ok {
		return nil, domainerror.ErrDebtNotFound
	}
	r.payments = append(r.payments, payment)
	debt.RemainingAmount = decimal.Max(debt.RemainingAmount.Sub(payment.Amount), decimal.Zero)
	return debt, nil
}

func debtErrorCode(t *testing.T, err error) domainerror.DebtErrorCode {
	t.Helper()
	var debtErr *domainerror.DebtError
	if !errors.As(err, &debtErr) {
		t.Fatalf("expected DebtError, got %v", err)
	}
	return debtErr.Code
}

func TestCreateDebtUseCase(t *testing.T) {
	d := decimal.NewFromInt
	carLoan := entity.DebtTypeCarLoan
	unknown := entity.DebtType("mortgage")
	badDay := 32

	tests := []struct {
		name         string
		input        DebtInput
		expectedCode domainerror.DebtErrorCode
	}{
		{name: "defaults", input: DebtInput{Name: "Visa", TotalAmount: d(50000)}},
		{name: "explicit type", input: DebtInput{Name: "Car", Type: &carLoan, TotalAmount: d(500000), MonthlyPayment: d(9000)}},
		{name: "missing name", input: DebtInput{TotalAmount: d(1)}, expectedCode: domainerror.ErrCodeMissingDebtFields},
		{name: "zero total", input: DebtInput{Name: "x"}, expectedCode: domainerror.ErrCodeInvalidDebtAmount},
		{name: "negative payment", input: DebtInput{Name: "x", TotalAmount: d(1), MonthlyPayment: d(-1)}, expectedCode: domainerror.ErrCodeInvalidDebtAmount},
		{name: "unknown type", input: DebtInput{Name: "x", TotalAmount: d(1), Type: &unknown}, expectedCode: domainerror.ErrCodeInvalidDebtType},
		{name: "due day out of range", input: DebtInput{Name: "x", TotalAmount: d(1), DueDay: &badDay}, expectedCode: domainerror.ErrCodeInvalidDueDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := NewCreateDebtUseCase(newFakeDebtRepository()).Execute(context.Background(), tt.input)
			if tt.expectedCode != "" {
				if code := debtErrorCode(t, err); code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !output.Debt.RemainingAmount.Equal(tt.input.TotalAmount) {
				t.Errorf("expected remaining to default to total, got %s", output.Debt.RemainingAmount)
			}
			if output.Debt.DueDay != 25 {
				t.Errorf("expected due day 25, got %d", output.Debt.DueDay)
			}
		})
	}
}

func TestRecordPaymentUseCase(t *testing.T) {
	repo := newFakeDebtRepository()
	debt := entity.NewDebt("Loan", entity.DebtTypePersonalLoan, decimal.NewFromInt(1000), decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.Zero, 25, "")
	repo.debts[debt.ID] = debt
	uc := NewRecordPaymentUseCase(repo)
	paidOn := time.Date(2024, time.June, 25, 14, 0, 0, 0, time.UTC)

	output, err := uc.Execute(context.Background(), RecordPaymentInput{DebtID: debt.ID, Amount: decimal.NewFromInt(300), PaymentDate: paidOn})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Debt.RemainingAmount.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected remaining 700, got %s", output.Debt.RemainingAmount)
	}
	if !output.Payment.PaymentDate.Equal(time.Date(2024, time.June, 25, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected payment date truncated to the day, got %s", output.Payment.PaymentDate)
	}

	payments, err := NewListPaymentsUseCase(repo).Execute(context.Background(), ListPaymentsInput{DebtID: debt.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments.Payments) != 1 {
		t.Errorf("expected 1 payment, got %d", len(payments.Payments))
	}

	tests := []struct {
		name         string
		input        RecordPaymentInput
		expectedCode domainerror.DebtErrorCode
	}{
		{"zero amount", RecordPaymentInput{DebtID: debt.ID, PaymentDate: paidOn}, domainerror.ErrCodeInvalidPaymentAmount},
		{"missing date", RecordPaymentInput{DebtID: debt.ID, Amount: decimal.NewFromInt(1)}, domainerror.ErrCodeMissingPaymentFields},
		{"unknown debt", RecordPaymentInput{DebtID: uuid.New(), Amount: decimal.NewFromInt(1), PaymentDate: paidOn}, domainerror.ErrCodeDebtNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.input)
			if code := debtErrorCode(t, err); code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, code)
			}
		})
	}
}

func TestListDebtsUseCase_Summary(t *testing.T) {
	repo := newFakeDebtRepository()
	for _, amounts := range [][2]int64{{1000, 100}, {2500, 250}} {
		debt := entity.NewDebt("d", entity.DebtTypeOther, decimal.NewFromInt(amounts[0]), decimal.NewFromInt(amounts[0]), decimal.NewFromInt(amounts[1]), decimal.Zero, 1, "")
		repo.debts[debt.ID] = debt
	}

	output, err := NewListDebtsUseCase(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Summary.TotalDebt.Equal(decimal.NewFromInt(3500)) {
		t.Errorf("expected total debt 3500, got %s", output.Summary.TotalDebt)
	}
	if !output.Summary.TotalMonthlyPayment.Equal(decimal.NewFromInt(350)) {
		t.Errorf("expected total monthly payment 350, got %s", output.Summary.TotalMonthlyPayment)
	}
}

func TestUpdateAndDeleteDebtUseCase(t *testing.T) {
	repo := newFakeDebtRepository()
	debt := entity.NewDebt("Old", entity.DebtTypeOther, decimal.NewFromInt(10), decimal.NewFromInt(10), decimal.Zero, decimal.Zero, 1, "")
	repo.debts[debt.ID] = debt

	remaining := decimal.NewFromInt(5)
	output, err := NewUpdateDebtUseCase(repo).Execute(context.Background(), UpdateDebtInput{
		DebtID:    debt.ID,
		DebtInput: DebtInput{Name: "New", TotalAmount: decimal.NewFromInt(10), RemainingAmount: &remaining},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Debt.Name != "New" || !output.Debt.RemainingAmount.Equal(remaining) || output.Debt.Type != entity.DebtTypeCreditCard {
		t.Errorf("unexpected debt after update: %+v", output.Debt)
	}

	_, err = NewUpdateDebtUseCase(repo).Execute(context.Background(), UpdateDebtInput{
		DebtID:    uuid.New(),
		DebtInput: DebtInput{Name: "x", TotalAmount: decimal.NewFromInt(1)},
	})
	if code := debtErrorCode(t, err); code != domainerror.ErrCodeDebtNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeDebtNotFound, code)
	}

	if err := NewDeleteDebtUseCase(repo).Execute(context.Background(), DeleteDebtInput{DebtID: debt.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.debts) != 0 {
		t.Error("expected debt to be removed")
	}
}
