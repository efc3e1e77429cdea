package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if migrate {
		if err := db.AutoMigrate(model.AllModels()...); err != nil {
			t.Fatalf("failed to migrate: %v", err)
		}
	}
	return db
}

func TestAnalyticsRepository_Aggregates(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, true)
	repo := NewAnalyticsRepository(db)

	march := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	expenses := NewExpenseRepository(db)
	for _, e := range []*entity.Expense{
		entity.NewExpense("Lunch", decimal.NewFromInt(200), entity.ExpenseCategoryFood, march, ""),
		entity.NewExpense("Taxi", decimal.RequireFromString("150.50"), entity.ExpenseCategoryTransport, march.AddDate(0, 0, 5), ""),
		entity.NewExpense("Old", decimal.NewFromInt(999), entity.ExpenseCategoryOther, march.AddDate(0, -1, 0), ""),
	} {
		if err := expenses.Create(ctx, e); err != nil {
			t.Fatalf("failed to seed expense: %v", err)
		}
	}

	tasks := NewTaskRepository(db)
	for i, status := range []entity.TaskStatus{entity.TaskStatusCompleted, entity.TaskStatusPending, entity.TaskStatusCompleted} {
		task := entity.NewTask(fmt.Sprintf("task %d", i), "", entity.PriorityMedium, nil)
		task.Status = status
		if err := tasks.Create(ctx, task); err != nil {
			t.Fatalf("failed to seed task: %v", err)
		}
	}

	goals := NewGoalRepository(db)
	for _, g := range []*entity.Goal{
		entity.NewGoal("half", "", 100, 50, "%", nil),
		entity.NewGoal("full", "", 10, 10, "km", nil),
		entity.NewGoal("broken", "", 0, 5, "x", nil),
	} {
		if err := goals.Create(ctx, g); err != nil {
			t.Fatalf("failed to seed goal: %v", err)
		}
		// The column default replaces a zero target on insert
		if g.TargetValue == 0 {
			if err := db.Model(&model.GoalModel{}).Where("id = ?", g.ID).Update("target_value", 0).Error; err != nil {
				t.Fatalf("failed to zero goal target: %v", err)
			}
		}
	}

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	total, err := repo.SumExpensesBetween(ctx, from, from.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.RequireFromString("350.5")) {
		t.Errorf("expected 350.5, got %s", total)
	}

	count, err := repo.CountTasks(ctx)
	if err != nil || count != 3 {
		t.Errorf("expected 3 tasks, got %d (%v)", count, err)
	}
	completed, err := repo.CountCompletedTasks(ctx)
	if err != nil || completed != 2 {
		t.Errorf("expected 2 completed tasks, got %d (%v)", completed, err)
	}

	progress, err := repo.AverageGoalProgress(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if progress != 50 {
		t.Errorf("expected average progress 50, got %v", progress)
	}

	salary, err := repo.GetMonthlySalary(ctx)
	if err != nil || !salary.IsZero() {
		t.Errorf("expected zero salary without settings, got %s (%v)", salary, err)
	}
	health, err := repo.GetHealthSettings(ctx)
	if err != nil || health != nil {
		t.Errorf("expected no health settings, got %+v (%v)", health, err)
	}
}

func TestAnalyticsRepository_MissingTable(t *testing.T) {
	repo := NewAnalyticsRepository(openTestDB(t, false))

	_, err := repo.CountHabits(context.Background())
	if !errors.Is(err, domainerror.ErrSchemaMissing) {
		t.Fatalf("expected ErrSchemaMissing, got %v", err)
	}
	var analyticsErr *domainerror.AnalyticsError
	if !errors.As(err, &analyticsErr) || analyticsErr.Code != domainerror.ErrCodeSchemaMissing {
		t.Errorf("expected code %s, got %v", domainerror.ErrCodeSchemaMissing, err)
	}
}

func TestDebtRepository_RecordPaymentFloorsAtZero(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t, true)
	repo := NewDebtRepository(db)

	debt := entity.NewDebt("Card", entity.DebtTypeCreditCard, decimal.NewFromInt(1000), decimal.NewFromInt(300),
		decimal.NewFromInt(100), decimal.Zero, 25, "")
	if err := repo.Create(ctx, debt); err != nil {
		t.Fatalf("failed to create debt: %v", err)
	}

	paid := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	updated, err := repo.RecordPayment(ctx, entity.NewDebtPayment(debt.ID, decimal.NewFromInt(100), paid, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.RemainingAmount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected 200 remaining, got %s", updated.RemainingAmount)
	}

	updated, err = repo.RecordPayment(ctx, entity.NewDebtPayment(debt.ID, decimal.NewFromInt(500), paid.AddDate(0, 1, 0), ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.RemainingAmount.IsZero() {
		t.Errorf("expected 0 remaining, got %s", updated.RemainingAmount)
	}

	payments, err := repo.FindPayments(ctx, debt.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payments) != 2 || !payments[0].Amount.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected the latest payment first, got %d payments", len(payments))
	}

	_, err = repo.RecordPayment(ctx, entity.NewDebtPayment(uuid.New(), decimal.NewFromInt(1), paid, ""))
	if !errors.Is(err, domainerror.ErrDebtNotFound) {
		t.Errorf("expected ErrDebtNotFound, got %v", err)
	}

	if err := repo.Delete(ctx, debt.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	payments, err = repo.FindPayments(ctx, debt.ID)
	if err != nil || len(payments) != 0 {
		t.Errorf("expected payments to be removed, got %d (%v)", len(payments), err)
	}
}

func TestHabitRepository_IncrementCompletion(t *testing.T) {
	ctx := context.Background()
	repo := NewHabitRepository(openTestDB(t, true))

	habit := entity.NewHabit("Read", entity.HabitFrequencyDaily, 1, entity.DefaultHabitColor)
	if err := repo.Create(ctx, habit); err != nil {
		t.Fatalf("failed to create habit: %v", err)
	}

	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	for want := 1; want <= 3; want++ {
		completion, err := repo.IncrementCompletion(ctx, habit.ID, day)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if completion.Count != want {
			t.Errorf("expected count %d, got %d", want, completion.Count)
		}
	}

	completions, err := repo.FindCompletionsSince(ctx, day.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(completions) != 1 {
		t.Errorf("expected a single row per day, got %d", len(completions))
	}
}

func TestTaskRepository_FindAllOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(openTestDB(t, true))

	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	done := entity.NewTask("done", "", entity.PriorityHigh, nil)
	done.Status = entity.TaskStatusCompleted
	low := entity.NewTask("low", "", entity.PriorityLow, nil)
	highUndated := entity.NewTask("high undated", "", entity.PriorityHigh, nil)
	highDated := entity.NewTask("high dated", "", entity.PriorityHigh, &due)

	for _, task := range []*entity.Task{done, low, highUndated, highDated} {
		if err := repo.Create(ctx, task); err != nil {
			t.Fatalf("failed to create task: %v", err)
		}
	}

	tasks, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"high dated", "high undated", "low", "done"}
	for i, title := range expected {
		if tasks[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, tasks[i].Title)
		}
	}
}
