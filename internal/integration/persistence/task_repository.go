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

// taskOrder lists pending work first, then by priority, then by due date
// with undated tasks last, newest first on ties.
const taskOrder = "CASE WHEN status = 'pending' THEN 0 ELSE 1 END, " +
	"CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, " +
	"CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC, created_at DESC"

// taskRepository implements the adapter.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance.
func NewTaskRepository(db *gorm.DB) adapter.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// Create creates a new task in the database.
func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	result := r.db.WithContext(ctx).Create(model.TaskFromEntity(task))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a task by its ID.
func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	var taskModel model.TaskModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&taskModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTaskNotFound
		}
		return nil, result.Error
	}
	return taskModel.ToEntity(), nil
}

// FindAll retrieves every task in display order.
func (r *taskRepository) FindAll(ctx context.Context) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).Order(taskOrder).Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tasks := make([]*entity.Task, len(taskModels))
	for i, tm := range taskModels {
		tasks[i] = tm.ToEntity()
	}
	return tasks, nil
}

// Update updates an existing task in the database.
func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	result := r.db.WithContext(ctx).Save(model.TaskFromEntity(task))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a task from the database.
func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TaskModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTaskNotFound
	}
	return nil
}
