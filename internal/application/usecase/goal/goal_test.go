package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

type fakeGoalRepository struct {
	goals map[uuid.UUID]*entity.Goal
}

func newFakeGoalRepository() *fakeGoalRepository {
	return &fakeGoalRepository{goals: make(map[uuid.UUID]*entity.Goal)}
}

func (r *fakeGoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return goal, nil
}

func (r *fakeGoalRepository) FindAll(_ context.Context) ([]*entity.Goal, error) {
	goals := make([]*entity.Goal, 0, len(r.goals))
	for _, g := range r.goals {
		goals = append(goals, g)
	}
	return goals, nil
}

func (r *fakeGoalRepository) Update(_ context.Context, goal *entity.Goal) error {
	r.goals[goal.ID] = goal
	return nil
}

func (r *fakeGoalRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.goals, id)
	return nil
}

func goalErrorCode(t *testing.T, err error) domainerror.GoalErrorCode {
	t.Helper()
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError, got %v", err)
	}
	return goalErr.Code
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateGoalUseCase(t *testing.T) {
	tests := []struct {
		name         string
		input        CreateGoalInput
		expectedCode domainerror.GoalErrorCode
	}{
		{name: "applies defaults", input: CreateGoalInput{Title: "Run a marathon"}},
		{name: "missing title", input: CreateGoalInput{}, expectedCode: domainerror.ErrCodeMissingGoalFields},
		{name: "zero target", input: CreateGoalInput{Title: "x", TargetValue: floatPtr(0)}, expectedCode: domainerror.ErrCodeInvalidTargetValue},
		{name: "negative current", input: CreateGoalInput{Title: "x", CurrentValue: floatPtr(-1)}, expectedCode: domainerror.ErrCodeInvalidCurrentValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := NewCreateGoalUseCase(newFakeGoalRepository()).Execute(context.Background(), tt.input)
			if tt.expectedCode != "" {
				if code := goalErrorCode(t, err); code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Goal.TargetValue != 100 || output.Goal.CurrentValue != 0 || output.Goal.Unit != "%" {
				t.Errorf("expected defaults 100/0/%%, got %v/%v/%s",
					output.Goal.TargetValue, output.Goal.CurrentValue, output.Goal.Unit)
			}
		})
	}
}

func TestUpdateGoalUseCase(t *testing.T) {
	repo := newFakeGoalRepository()
	existing := entity.NewGoal("Save", "", 1000, 100, "THB", nil)
	repo.goals[existing.ID] = existing
	uc := NewUpdateGoalUseCase(repo)

	output, err := uc.Execute(context.Background(), UpdateGoalInput{GoalID: existing.ID, CurrentValue: floatPtr(500)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Goal.CurrentValue != 500 || output.Goal.Title != "Save" {
		t.Errorf("expected partial update, got %+v", output.Goal)
	}
	if output.Goal.Progress() != 50 {
		t.Errorf("expected progress 50, got %v", output.Goal.Progress())
	}

	_, err = uc.Execute(context.Background(), UpdateGoalInput{GoalID: existing.ID, TargetValue: floatPtr(-5)})
	if code := goalErrorCode(t, err); code != domainerror.ErrCodeInvalidTargetValue {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTargetValue, code)
	}

	_, err = uc.Execute(context.Background(), UpdateGoalInput{GoalID: uuid.New()})
	if code := goalErrorCode(t, err); code != domainerror.ErrCodeGoalNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, code)
	}
}

func TestGetAndDeleteGoalUseCase(t *testing.T) {
	repo := newFakeGoalRepository()
	existing := entity.NewGoal("Learn Go", "", 100, 10, "%", nil)
	repo.goals[existing.ID] = existing

	got, err := NewGetGoalUseCase(repo).Execute(context.Background(), GetGoalInput{GoalID: existing.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Goal.ID != existing.ID {
		t.Errorf("expected goal %s, got %s", existing.ID, got.Goal.ID)
	}

	deleteUC := NewDeleteGoalUseCase(repo)
	if err := deleteUC.Execute(context.Background(), DeleteGoalInput{GoalID: existing.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = deleteUC.Execute(context.Background(), DeleteGoalInput{GoalID: existing.ID})
	if code := goalErrorCode(t, err); code != domainerror.ErrCodeGoalNotFound {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, code)
	}
}
