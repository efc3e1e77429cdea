// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// recentCompletionDays is how far back completions are returned with each habit.
const recentCompletionDays = 30

// ListHabitsOutput represents the output of listing habits.
type ListHabitsOutput struct {
	Habits []*entity.HabitWithProgress
}

// ListHabitsUseCase handles listing habits with their streaks.
type ListHabitsUseCase struct {
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(habitRepo adapter.HabitRepository, clock adapter.Clock) *ListHabitsUseCase {
	return &ListHabitsUseCase{
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Execute performs the habit listing.
func (uc *ListHabitsUseCase) Execute(ctx context.Context) (*ListHabitsOutput, error) {
	habits, err := uc.habitRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}

	today := valueobject.DateKey(uc.clock.Now())

	// One year of completions is enough for the longest countable streak
	since := today.AddDate(0, 0, -(valueobject.MaxStreakDays - 1))
	completions, err := uc.habitRepo.FindCompletionsSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list habit completions: %w", err)
	}

	byHabit := make(map[uuid.UUID][]*entity.HabitCompletion)
	for _, c := range completions {
		byHabit[c.HabitID] = append(byHabit[c.HabitID], c)
	}

	recentFrom := today.AddDate(0, 0, -recentCompletionDays)
	output := &ListHabitsOutput{
		Habits: make([]*entity.HabitWithProgress, 0, len(habits)),
	}

	for _, h := range habits {
		all := byHabit[h.ID]

		dates := make([]time.Time, 0, len(all))
		recent := make([]*entity.HabitCompletion, 0)
		for _, c := range all {
			dates = append(dates, c.CompletedDate)
			if !c.CompletedDate.Before(recentFrom) {
				recent = append(recent, c)
			}
		}

		output.Habits = append(output.Habits, &entity.HabitWithProgress{
			Habit:       h,
			Completions: recent,
			Streak:      valueobject.CalculateStreak(dates, today),
		})
	}

	return output, nil
}
