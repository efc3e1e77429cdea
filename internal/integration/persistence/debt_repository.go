package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create creates a new debt in the database.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	result := r.db.WithContext(ctx).Create(model.DebtFromEntity(debt))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a debt by its ID.
func (r *debtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	debtModel, err := findDebt(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return debtModel.ToEntity(), nil
}

// FindAll retrieves every debt, newest first.
func (r *debtRepository) FindAll(ctx context.Context) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}

	debts := make([]*entity.Debt, len(debtModels))
	for i, dm := range debtModels {
		debts[i] = dm.ToEntity()
	}
	return debts, nil
}

// GetSummary sums the outstanding balance and the monthly payments.
func (r *debtRepository) GetSummary(ctx context.Context) (*entity.DebtSummary, error) {
	var row struct {
		TotalDebt           decimal.Decimal
		TotalMonthlyPayment decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.DebtModel{}).
		Select("COALESCE(SUM(remaining_amount), 0) AS total_debt, COALESCE(SUM(monthly_payment), 0) AS total_monthly_payment").
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.DebtSummary{
		TotalDebt:           row.TotalDebt,
		TotalMonthlyPayment: row.TotalMonthlyPayment,
	}, nil
}

// Update updates an existing debt in the database.
func (r *debtRepository) Update(ctx context.Context, debt *entity.Debt) error {
	result := r.db.WithContext(ctx).Save(model.DebtFromEntity(debt))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a debt together with its payments.
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.DebtPaymentModel{}, "debt_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.DebtModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrDebtNotFound
		}
		return nil
	})
}

// FindPayments retrieves the payments of a debt, latest first.
func (r *debtRepository) FindPayments(ctx context.Context, debtID uuid.UUID) ([]*entity.DebtPayment, error) {
	var paymentModels []model.DebtPaymentModel
	result := r.db.WithContext(ctx).
		Where("debt_id = ?", debtID).
		Order("payment_date DESC, created_at DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.DebtPayment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// RecordPayment inserts the payment and lowers the debt balance in one transaction.
// The balance never drops below zero.
func (r *debtRepository) RecordPayment(ctx context.Context, payment *entity.DebtPayment) (*entity.Debt, error) {
	var updated *entity.Debt

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		debtModel, err := findDebt(tx, payment.DebtID)
		if err != nil {
			return err
		}

		if err := tx.Omit("Debt").Create(model.DebtPaymentFromEntity(payment)).Error; err != nil {
			return err
		}

		remaining := debtModel.RemainingAmount.Sub(payment.Amount)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		result := tx.Model(&model.DebtModel{}).
			Where("id = ?", debtModel.ID).
			Updates(map[string]interface{}{
				"remaining_amount": remaining,
				"updated_at":       time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}

		debtModel.RemainingAmount = remaining
		updated = debtModel.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func findDebt(db *gorm.DB, id uuid.UUID) (*model.DebtModel, error) {
	var debtModel model.DebtModel
	result := db.Where("id = ?", id).First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, result.Error
	}
	return &debtModel, nil
}
