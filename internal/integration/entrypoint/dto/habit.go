package dto

import (
	"time"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	Name        string  `json:"name"`
	Frequency   *string `json:"frequency,omitempty"`
	TargetCount *int    `json:"target_count,omitempty"`
	Color       string  `json:"color"`
}

// HabitResponse represents a single habit in API responses.
type HabitResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Frequency   string               `json:"frequency"`
	TargetCount int                  `json:"target_count"`
	Color       string               `json:"color"`
	CreatedAt   time.Time            `json:"created_at"`
	Completions []CompletionResponse `json:"completions,omitempty"`
	Streak      int                  `json:"streak"`
}

// CompletionResponse represents a day's check-ins of a habit.
type CompletionResponse struct {
	ID            string `json:"id"`
	HabitID       string `json:"habit_id"`
	CompletedDate string `json:"completed_date"`
	Count         int    `json:"count"`
}

// HabitEnvelope wraps a single habit.
type HabitEnvelope struct {
	Habit HabitResponse `json:"habit"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits []HabitResponse `json:"habits"`
}

// CompletionEnvelope wraps a check-in result.
type CompletionEnvelope struct {
	Completion CompletionResponse `json:"completion"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(h *entity.Habit) HabitResponse {
	return HabitResponse{
		ID:          h.ID.String(),
		Name:        h.Name,
		Frequency:   string(h.Frequency),
		TargetCount: h.TargetCount,
		Color:       h.Color,
		CreatedAt:   h.CreatedAt,
	}
}

// ToCompletionResponse converts a habit completion.
func ToCompletionResponse(c *entity.HabitCompletion) CompletionResponse {
	return CompletionResponse{
		ID:            c.ID.String(),
		HabitID:       c.HabitID.String(),
		CompletedDate: c.CompletedDate.Format(DateLayout),
		Count:         c.Count,
	}
}

// ToHabitListResponse converts habits with their recent progress.
func ToHabitListResponse(habits []*entity.HabitWithProgress) HabitListResponse {
	responses := make([]HabitResponse, len(habits))
	for i, h := range habits {
		response := ToHabitResponse(h.Habit)
		response.Streak = h.Streak
		response.Completions = make([]CompletionResponse, len(h.Completions))
		for j, c := range h.Completions {
			response.Completions[j] = ToCompletionResponse(c)
		}
		responses[i] = response
	}
	return HabitListResponse{Habits: responses}
}
