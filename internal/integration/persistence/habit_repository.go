package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/persistence/model"
)

// habitRepository implements the adapter.HabitRepository interface.
type habitRepository struct {
	db *gorm.DB
}

// NewHabitRepository creates a new habit repository instance.
func NewHabitRepository(db *gorm.DB) adapter.HabitRepository {
	return &habitRepository{
		db: db,
	}
}

// Create creates a new habit in the database.
func (r *habitRepository) Create(ctx context.Context, habit *entity.Habit) error {
	result := r.db.WithContext(ctx).Create(model.HabitFromEntity(habit))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a habit by its ID.
func (r *habitRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habitModel model.HabitModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&habitModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrHabitNotFound
		}
		return nil, result.Error
	}
	return habitModel.ToEntity(), nil
}

// FindAll retrieves every habit, newest first.
func (r *habitRepository) FindAll(ctx context.Context) ([]*entity.Habit, error) {
	var habitModels []model.HabitModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&habitModels)
	if result.Error != nil {
		return nil, result.Error
	}

	habits := make([]*entity.Habit, len(habitModels))
	for i, hm := range habitModels {
		habits[i] = hm.ToEntity()
	}
	return habits, nil
}

// Delete removes a habit and its completions.
func (r *habitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.HabitCompletionModel{}, "habit_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.HabitModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrHabitNotFound
		}
		return nil
	})
}

// FindCompletionsSince retrieves completions dated on or after since, newest first.
func (r *habitRepository) FindCompletionsSince(ctx context.Context, since time.Time) ([]*entity.HabitCompletion, error) {
	var completionModels []model.HabitCompletionModel
	result := r.db.WithContext(ctx).
		Where("completed_date >= ?", since).
		Order("completed_date DESC").
		Find(&completionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	completions := make([]*entity.HabitCompletion, len(completionModels))
	for i, cm := range completionModels {
		completions[i] = cm.ToEntity()
	}
	return completions, nil
}

// IncrementCompletion upserts the completion of habitID on date, adding one to its count.
func (r *habitRepository) IncrementCompletion(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error) {
	completion := model.HabitCompletionModel{
		ID:            uuid.New(),
		HabitID:       habitID,
		CompletedDate: date,
		Count:         1,
	}

	db := r.db.WithContext(ctx)
	result := db.Omit("Habit").Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "habit_id"}, {Name: "completed_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count": gorm.Expr("habit_completions.count + 1"),
		}),
	}).Create(&completion)
	if result.Error != nil {
		return nil, result.Error
	}

	// Re-read: on conflict the inserted ID and count are not the stored ones
	var stored model.HabitCompletionModel
	result = db.Where("habit_id = ? AND completed_date = ?", habitID, date).First(&stored)
	if result.Error != nil {
		return nil, result.Error
	}
	return stored.ToEntity(), nil
}
