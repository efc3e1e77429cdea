package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// TimeEntryModel represents the time_entries table in the database.
type TimeEntryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Project     string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	StartTime   time.Time  `gorm:"not null;index"`
	EndTime     *time.Time
	Duration    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the TimeEntryModel.
func (TimeEntryModel) TableName() string {
	return "time_entries"
}

// ToEntity converts a TimeEntryModel to a domain TimeEntry entity.
func (m *TimeEntryModel) ToEntity() *entity.TimeEntry {
	return &entity.TimeEntry{
		ID:          m.ID,
		Project:     m.Project,
		Description: m.Description,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Duration:    m.Duration,
		CreatedAt:   m.CreatedAt,
	}
}

// TimeEntryFromEntity creates a TimeEntryModel from a domain TimeEntry entity.
func TimeEntryFromEntity(entry *entity.TimeEntry) *TimeEntryModel {
	return &TimeEntryModel{
		ID:          entry.ID,
		Project:     entry.Project,
		Description: entry.Description,
		StartTime:   entry.StartTime,
		EndTime:     entry.EndTime,
		Duration:    entry.Duration,
		CreatedAt:   entry.CreatedAt,
	}
}
