package habit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// CheckinHabitInput represents the input for a habit check-in.
type CheckinHabitInput struct {
	HabitID uuid.UUID
}

// CheckinHabitOutput represents the output of a habit check-in.
type CheckinHabitOutput struct {
	Completion *entity.HabitCompletion
}

// CheckinHabitUseCase records today's completion of a habit.
type CheckinHabitUseCase struct {
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewCheckinHabitUseCase creates a new CheckinHabitUseCase instance.
func NewCheckinHabitUseCase(habitRepo adapter.HabitRepository, clock adapter.Clock) *CheckinHabitUseCase {
	return &CheckinHabitUseCase{
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Execute performs the check-in. Repeated check-ins on the same day raise the count.
func (uc *CheckinHabitUseCase) Execute(ctx context.Context, input CheckinHabitInput) (*CheckinHabitOutput, error) {
	if _, err := uc.habitRepo.FindByID(ctx, input.HabitID); err != nil {
		return nil, notFoundOr(err)
	}

	today := valueobject.DateKey(uc.clock.Now())
	completion, err := uc.habitRepo.IncrementCompletion(ctx, input.HabitID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to record habit completion: %w", err)
	}

	return &CheckinHabitOutput{
		Completion: completion,
	}, nil
}

// notFoundOr maps a missing habit to its coded error and wraps anything else.
func notFoundOr(err error) error {
	if errors.Is(err, domainerror.ErrHabitNotFound) {
		return domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}
	return fmt.Errorf("failed to find habit: %w", err)
}
