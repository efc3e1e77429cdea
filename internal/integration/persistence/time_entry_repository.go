package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/persistence/model"
)

// timeEntryRepository implements the adapter.TimeEntryRepository interface.
type timeEntryRepository struct {
	db *gorm.DB
}

// NewTimeEntryRepository creates a new time entry repository instance.
func NewTimeEntryRepository(db *gorm.DB) adapter.TimeEntryRepository {
	return &timeEntryRepository{
		db: db,
	}
}

// Create creates a new time entry in the database.
func (r *timeEntryRepository) Create(ctx context.Context, entry *entity.TimeEntry) error {
	result := r.db.WithContext(ctx).Create(model.TimeEntryFromEntity(entry))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a time entry by its ID.
func (r *timeEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TimeEntry, error) {
	var entryModel model.TimeEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTimeEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindRecent retrieves the latest entries by start time.
func (r *timeEntryRepository) FindRecent(ctx context.Context, limit int) ([]*entity.TimeEntry, error) {
	var entryModels []model.TimeEntryModel
	result := r.db.WithContext(ctx).
		Order("start_time DESC").
		Limit(limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.TimeEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, nil
}

// Update updates an existing time entry in the database.
func (r *timeEntryRepository) Update(ctx context.Context, entry *entity.TimeEntry) error {
	result := r.db.WithContext(ctx).Save(model.TimeEntryFromEntity(entry))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a time entry from the database.
func (r *timeEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TimeEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTimeEntryNotFound
	}
	return nil
}
