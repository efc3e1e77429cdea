// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text"`
	TargetValue  float64    `gorm:"type:decimal(15,2);not null;default:100"`
	CurrentValue float64    `gorm:"type:decimal(15,2);not null;default:0"`
	Unit         string     `gorm:"type:varchar(50);not null;default:'%'"`
	Deadline     *time.Time `gorm:"type:date;index"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		TargetValue:  m.TargetValue,
		CurrentValue: m.CurrentValue,
		Unit:         m.Unit,
		Deadline:     m.Deadline,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:           goal.ID,
		Title:        goal.Title,
		Description:  goal.Description,
		TargetValue:  goal.TargetValue,
		CurrentValue: goal.CurrentValue,
		Unit:         goal.Unit,
		Deadline:     goal.Deadline,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}
