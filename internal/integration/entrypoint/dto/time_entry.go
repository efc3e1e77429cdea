package dto

import (
	"time"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// StartTimeEntryRequest represents the request body for starting a timer.
type StartTimeEntryRequest struct {
	Project     string `json:"project"`
	Description string `json:"description"`
}

// UpdateTimeEntryRequest represents the request body for timer actions.
type UpdateTimeEntryRequest struct {
	Action string `json:"action"`
}

// TimeEntryResponse represents a single time entry in API responses.
type TimeEntryResponse struct {
	ID          string     `json:"id"`
	Project     string     `json:"project"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Duration    int        `json:"duration"`
}

// TimeEntryEnvelope wraps a single time entry.
type TimeEntryEnvelope struct {
	Entry TimeEntryResponse `json:"entry"`
}

// TimeEntryListResponse represents the response for listing time entries.
type TimeEntryListResponse struct {
	Entries []TimeEntryResponse `json:"entries"`
}

// ToTimeEntryResponse converts a domain TimeEntry to its DTO.
func ToTimeEntryResponse(e *entity.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:          e.ID.String(),
		Project:     e.Project,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Duration:    e.Duration,
	}
}

// ToTimeEntryListResponse converts a list of time entries.
func ToTimeEntryListResponse(entries []*entity.TimeEntry) TimeEntryListResponse {
	responses := make([]TimeEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToTimeEntryResponse(e)
	}
	return TimeEntryListResponse{Entries: responses}
}
