package entity

import (
	"time"

	"github.com/google/uuid"
)

// HabitFrequency represents how often a habit is expected.
type HabitFrequency string

const (
	HabitFrequencyDaily  HabitFrequency = "daily"
	HabitFrequencyWeekly HabitFrequency = "weekly"
)

// DefaultHabitColor is the color assigned when none is given.
const DefaultHabitColor = "#6366f1"

// Habit represents a recurring activity the user tracks.
type Habit struct {
	ID          uuid.UUID
	Name        string
	Frequency   HabitFrequency
	TargetCount int
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HabitCompletion records how many times a habit was done on one day.
type HabitCompletion struct {
	ID            uuid.UUID
	HabitID       uuid.UUID
	CompletedDate time.Time
	Count         int
}

// NewHabit creates a new Habit entity.
func NewHabit(name string, frequency HabitFrequency, targetCount int, color string) *Habit {
	now := time.Now().UTC()

	return &Habit{
		ID:          uuid.New(),
		Name:        name,
		Frequency:   frequency,
		TargetCount: targetCount,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HabitWithProgress is a habit together with its recent completions and streak.
type HabitWithProgress struct {
	Habit       *Habit
	Completions []*HabitCompletion
	Streak      int
}
