package dto

import (
	"time"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// TaskRequest is the body of task creation and replacement.
type TaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// TaskResponse represents a single task in API responses.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// TaskEnvelope wraps a single task.
type TaskEnvelope struct {
	Task TaskResponse `json:"task"`
}

// TaskListResponse represents the response for listing tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToTaskResponse converts a domain Task entity to a TaskResponse DTO.
func ToTaskResponse(t *entity.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     FormatDate(t.DueDate),
		CreatedAt:   t.CreatedAt,
	}
}

// ToTaskResponses converts a list of tasks.
func ToTaskResponses(tasks []*entity.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = ToTaskResponse(t)
	}
	return responses
}
