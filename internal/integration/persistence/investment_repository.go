package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/persistence/model"
)

// investmentRepository implements the adapter.InvestmentRepository interface.
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository instance.
func NewInvestmentRepository(db *gorm.DB) adapter.InvestmentRepository {
	return &investmentRepository{
		db: db,
	}
}

// Create creates a new investment in the database.
func (r *investmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	result := r.db.WithContext(ctx).Create(model.InvestmentFromEntity(investment))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an investment by its ID.
func (r *investmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	var investmentModel model.InvestmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&investmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvestmentNotFound
		}
		return nil, result.Error
	}
	return investmentModel.ToEntity(), nil
}

// FindAll retrieves every investment, largest value first.
func (r *investmentRepository) FindAll(ctx context.Context) ([]*entity.Investment, error) {
	var investmentModels []model.InvestmentModel
	result := r.db.WithContext(ctx).Order("value_thb DESC, created_at DESC").Find(&investmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	investments := make([]*entity.Investment, len(investmentModels))
	for i, im := range investmentModels {
		investments[i] = im.ToEntity()
	}
	return investments, nil
}

// GetSummary sums value_thb overall and per type.
func (r *investmentRepository) GetSummary(ctx context.Context) (*entity.InvestmentSummary, error) {
	var rows []struct {
		Type  string
		Total decimal.Decimal
	}
	result := r.db.WithContext(ctx).
		Model(&model.InvestmentModel{}).
		Select("type, COALESCE(SUM(value_thb), 0) AS total").
		Group("type").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	summary := &entity.InvestmentSummary{
		TotalValueTHB: decimal.Zero,
		ByType:        make(map[entity.InvestmentType]decimal.Decimal, len(rows)),
	}
	for _, row := range rows {
		summary.ByType[entity.InvestmentType(row.Type)] = row.Total
		summary.TotalValueTHB = summary.TotalValueTHB.Add(row.Total)
	}
	return summary, nil
}

// Update updates an existing investment in the database.
func (r *investmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	result := r.db.WithContext(ctx).Save(model.InvestmentFromEntity(investment))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an investment from the database.
func (r *investmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InvestmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvestmentNotFound
	}
	return nil
}
