package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry represents a tracked block of work on a project.
type TimeEntry struct {
	ID          uuid.UUID
	Project     string
	Description string
	StartTime   time.Time
	EndTime     *time.Time
	Duration    int // seconds
	CreatedAt   time.Time
}

// NewTimeEntry starts a new running TimeEntry at startTime.
func NewTimeEntry(project, description string, startTime time.Time) *TimeEntry {
	return &TimeEntry{
		ID:          uuid.New(),
		Project:     project,
		Description: description,
		StartTime:   startTime,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsRunning reports whether the entry has not been stopped yet.
func (e *TimeEntry) IsRunning() bool {
	return e.EndTime == nil
}

// Stop ends the entry at endTime and records its duration.
func (e *TimeEntry) Stop(endTime time.Time) {
	e.EndTime = &endTime
	duration := int(endTime.Sub(e.StartTime).Seconds())
	if duration < 0 {
		duration = 0
	}
	e.Duration = duration
}
