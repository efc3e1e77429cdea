package entity

import (
	"time"

	"github.com/google/uuid"
)

// Goal defaults.
const (
	DefaultGoalTarget = 100
	DefaultGoalUnit   = "%"
)

// Goal represents a measurable personal objective.
type Goal struct {
	ID           uuid.UUID
	Title        string
	Description  string
	TargetValue  float64
	CurrentValue float64
	Unit         string
	Deadline     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(title, description string, targetValue, currentValue float64, unit string, deadline *time.Time) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:           uuid.New(),
		Title:        title,
		Description:  description,
		TargetValue:  targetValue,
		CurrentValue: currentValue,
		Unit:         unit,
		Deadline:     deadline,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Progress returns the completion percentage, 0 when the target is not positive.
func (g *Goal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	return g.CurrentValue / g.TargetValue * 100
}
