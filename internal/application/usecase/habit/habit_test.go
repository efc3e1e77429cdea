package habit

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeHabitRepository struct {
	habits      map[uuid.UUID]*entity.Habit
	completions []*entity.HabitCompletion
}

func newFakeHabitRepository() *fakeHabitRepository {
	return &fakeHabitRepository{habits: make(map[uuid.UUID]*entity.Habit)}
}

func (r *fakeHabitRepository) Create(_ context.Context, habit *entity.Habit) error {
	r.habits[habit.ID] = habit
	return nil
}

func (r *fakeHabitRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Habit, error) {
	habit, ok := r.habits[id]
	if !ok {
		return nil, domainerror.ErrHabitNotFound
	}
	return habit, nil
}

func (r *fakeHabitRepository) FindAll(_ context.Context) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0, len(r.habits))
	for _, h := range r.habits {
		habits = append(habits, h)
	}
	sort.Slice(habits, func(i, j int) bool { return habits[i].CreatedAt.After(habits[j].CreatedAt) })
	return habits, nil
}

func (r *fakeHabitRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.habits, id)
	kept := r.completions[:0]
	for _, c := range r.completions {
		if c.HabitID != id {
			kept = append(kept, c)
		}
	}
	r.completions = kept
	return nil
}

func (r *fakeHabitRepository) FindCompletionsSince(_ context.Context, since time.Time) ([]*entity.HabitCompletion, error) {
	var result []*entity.HabitCompletion
	for _, c := range r.completions {
		if !c.CompletedDate.Before(since) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CompletedDate.After(result[j].CompletedDate) })
	return result, nil
}

func (r *fakeHabitRepository) IncrementCompletion(_ context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitCompletion, error) {
	for _, c := range r.completions {
		if c.HabitID == habitID && c.CompletedDate.Equal(date) {
			c.Count++
			return c, nil
		}
	}
	c := &entity.HabitCompletion{ID: uuid.New(), HabitID: habitID, CompletedDate: date, Count: 1}
	r.completions = append(r.completions, c)
	return c, nil
}

func (r *fakeHabitRepository) complete(habitID uuid.UUID, date time.Time) {
	r.completions = append(r.completions, &entity.HabitCompletion{ID: uuid.New(), HabitID: habitID, CompletedDate: date, Count: 1})
}

func TestCreateHabitUseCase_Defaults(t *testing.T) {
	repo := newFakeHabitRepository()
	output, err := NewCreateHabitUseCase(repo).Execute(context.Background(), CreateHabitInput{Name: "Read"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := output.Habit
	if h.Frequency != entity.HabitFrequencyDaily {
		t.Errorf("expected daily, got %s", h.Frequency)
	}
	if h.TargetCount != 1 {
		t.Errorf("expected target 1, got %d", h.TargetCount)
	}
	if h.Color != entity.DefaultHabitColor {
		t.Errorf("expected color %s, got %s", entity.DefaultHabitColor, h.Color)
	}
}

func TestCreateHabitUseCase_Validation(t *testing.T) {
	zero := 0
	monthly := entity.HabitFrequency("monthly")

	tests := []struct {
		name         string
		input        CreateHabitInput
		expectedCode domainerror.HabitErrorCode
	}{
		{"missing name", CreateHabitInput{}, domainerror.ErrCodeMissingHabitFields},
		{"bad frequency", CreateHabitInput{Name: "x", Frequency: &monthly}, domainerror.ErrCodeInvalidHabitFrequency},
		{"zero target", CreateHabitInput{Name: "x", TargetCount: &zero}, domainerror.ErrCodeInvalidTargetCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCreateHabitUseCase(newFakeHabitRepository()).Execute(context.Background(), tt.input)
			var habitErr *domainerror.HabitError
			if !errors.As(err, &habitErr) {
				t.Fatalf("expected HabitError, got %v", err)
			}
			if habitErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, habitErr.Code)
			}
		})
	}
}

func TestListHabitsUseCase_StreakAndRecentCompletions(t *testing.T) {
	now := time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC)
	today := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	repo := newFakeHabitRepository()

	habit := entity.NewHabit("Run", entity.HabitFrequencyDaily, 1, entity.DefaultHabitColor)
	repo.habits[habit.ID] = habit

	// 40 consecutive days ending yesterday
	for i := 1; i <= 40; i++ {
		repo.complete(habit.ID, today.AddDate(0, 0, -i))
	}

	output, err := NewListHabitsUseCase(repo, fixedClock{now}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Habits) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(output.Habits))
	}

	got := output.Habits[0]
	if got.Streak != 40 {
		t.Errorf("expected streak 40, got %d", got.Streak)
	}
	if len(got.Completions) != 30 {
		t.Errorf("expected 30 recent completions, got %d", len(got.Completions))
	}
	if !got.Completions[0].CompletedDate.Equal(today.AddDate(0, 0, -1)) {
		t.Errorf("expected most recent completion first, got %s", got.Completions[0].CompletedDate)
	}
}

func TestCheckinHabitUseCase(t *testing.T) {
	now := time.Date(2024, time.May, 20, 22, 30, 0, 0, time.UTC)
	repo := newFakeHabitRepository()
	habit := entity.NewHabit("Meditate", entity.HabitFrequencyDaily, 2, entity.DefaultHabitColor)
	repo.habits[habit.ID] = habit
	uc := NewCheckinHabitUseCase(repo, fixedClock{now})

	for want := 1; want <= 2; want++ {
		output, err := uc.Execute(context.Background(), CheckinHabitInput{HabitID: habit.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Completion.Count != want {
			t.Errorf("expected count %d, got %d", want, output.Completion.Count)
		}
		if !output.Completion.CompletedDate.Equal(time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected completion dated today, got %s", output.Completion.CompletedDate)
		}
	}

	_, err := uc.Execute(context.Background(), CheckinHabitInput{HabitID: uuid.New()})
	var habitErr *domainerror.HabitError
	if !errors.As(err, &habitErr) || habitErr.Code != domainerror.ErrCodeHabitNotFound {
		t.Errorf("expected habit not found, got %v", err)
	}
}

func TestDeleteHabitUseCase_RemovesCompletions(t *testing.T) {
	repo := newFakeHabitRepository()
	habit := entity.NewHabit("Stretch", entity.HabitFrequencyDaily, 1, entity.DefaultHabitColor)
	repo.habits[habit.ID] = habit
	repo.complete(habit.ID, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))

	if err := NewDeleteHabitUseCase(repo).Execute(context.Background(), DeleteHabitInput{HabitID: habit.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.habits) != 0 || len(repo.completions) != 0 {
		t.Errorf("expected habit and completions removed, got %d habits %d completions", len(repo.habits), len(repo.completions))
	}
}
