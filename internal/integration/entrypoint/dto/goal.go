package dto

import (
	"time"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	TargetValue  *float64 `json:"target_value,omitempty"`
	CurrentValue *float64 `json:"current_value,omitempty"`
	Unit         string   `json:"unit"`
	Deadline     *string  `json:"deadline,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
// Omitted fields keep their value; an empty deadline clears it.
type UpdateGoalRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	TargetValue  *float64 `json:"target_value,omitempty"`
	CurrentValue *float64 `json:"current_value,omitempty"`
	Unit         *string  `json:"unit,omitempty"`
	Deadline     *string  `json:"deadline,omitempty"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TargetValue  float64   `json:"target_value"`
	CurrentValue float64   `json:"current_value"`
	Unit         string    `json:"unit"`
	Deadline     *string   `json:"deadline"`
	Progress     float64   `json:"progress"`
	CreatedAt    time.Time `json:"created_at"`
}

// GoalEnvelope wraps a single goal.
type GoalEnvelope struct {
	Goal GoalResponse `json:"goal"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:           g.ID.String(),
		Title:        g.Title,
		Description:  g.Description,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Unit:         g.Unit,
		Deadline:     FormatDate(g.Deadline),
		Progress:     g.Progress(),
		CreatedAt:    g.CreatedAt,
	}
}

// ToGoalResponses converts a list of goals.
func ToGoalResponses(goals []*entity.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return responses
}
