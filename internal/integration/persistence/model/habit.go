package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// HabitModel represents the habits table in the database.
type HabitModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Frequency   string    `gorm:"type:varchar(20);not null;default:'daily'"`
	TargetCount int       `gorm:"not null;default:1"`
	Color       string    `gorm:"type:varchar(20);not null;default:'#6366f1'"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	return &entity.Habit{
		ID:          m.ID,
		Name:        m.Name,
		Frequency:   entity.HabitFrequency(m.Frequency),
		TargetCount: m.TargetCount,
		Color:       m.Color,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	return &HabitModel{
		ID:          habit.ID,
		Name:        habit.Name,
		Frequency:   string(habit.Frequency),
		TargetCount: habit.TargetCount,
		Color:       habit.Color,
		CreatedAt:   habit.CreatedAt,
		UpdatedAt:   habit.UpdatedAt,
	}
}

// HabitCompletionModel represents the habit_completions table in the database.
// One row per habit and day.
type HabitCompletionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	HabitID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_habit_completion_day"`
	CompletedDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_habit_completion_day"`
	Count         int       `gorm:"not null;default:1"`

	Habit HabitModel `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the HabitCompletionModel.
func (HabitCompletionModel) TableName() string {
	return "habit_completions"
}

// ToEntity converts a HabitCompletionModel to a domain HabitCompletion entity.
func (m *HabitCompletionModel) ToEntity() *entity.HabitCompletion {
	return &entity.HabitCompletion{
		ID:            m.ID,
		HabitID:       m.HabitID,
		CompletedDate: m.CompletedDate,
		Count:         m.Count,
	}
}
