package analytics

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/lifetracker/backend/internal/application/adapter"
	"github.com/lifetracker/backend/internal/domain/entity"
	domainerror "github.com/lifetracker/backend/internal/domain/error"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// Figures holds the raw aggregates read from the store.
type Figures struct {
	TotalInvestments decimal.Decimal
	TotalDebts       decimal.Decimal
	MonthlyExpenses  decimal.Decimal
	MonthlySalary    decimal.Decimal
	Weight           float64
	Height           float64
	BirthDate        *time.Time
	TotalTasks       int
	CompletedTasks   int
	ActiveHabits     int
	GoalsProgress    float64
}

// Derived holds the figures computed from the raw aggregates.
type Derived struct {
	BMI              float64
	BMICategory      valueobject.Tier
	Age              int
	SpendingRatio    float64
	SpendingStatus   valueobject.Tier
	DebtToAssetRatio float64
	DebtStatus       valueobject.Tier
	NetWorth         decimal.Decimal
	SalaryRemaining  decimal.Decimal
	YearCountdown    valueobject.YearCountdown
}

// GetLifeScoreOutput is the full analytics payload.
type GetLifeScoreOutput struct {
	Figures        Figures
	Derived        Derived
	Score          valueobject.LifeScore
	ScoreLabels    ScoreLabels
	HealthSettings *entity.HealthSettings
	// Degraded is set when a read failed and the defaulted payload was returned.
	Degraded bool
}

// ScoreLabels classifies every score.
type ScoreLabels struct {
	Financial    valueobject.Tier
	Health       valueobject.Tier
	Productivity valueobject.Tier
	Overall      valueobject.Tier
}

// GetLifeScoreUseCase aggregates every domain into the life score.
type GetLifeScoreUseCase struct {
	analyticsRepo AnalyticsRepository
	clock         adapter.Clock
}

// NewGetLifeScoreUseCase creates a new GetLifeScoreUseCase instance.
func NewGetLifeScoreUseCase(analyticsRepo AnalyticsRepository, clock adapter.Clock) *GetLifeScoreUseCase {
	return &GetLifeScoreUseCase{
		analyticsRepo: analyticsRepo,
		clock:         clock,
	}
}

// Execute reads the nine aggregates concurrently and scores them. A failing
// read never surfaces: the defaulted payload is returned instead.
func (uc *GetLifeScoreUseCase) Execute(ctx context.Context) *GetLifeScoreOutput {
	now := uc.clock.Now()

	figures, health, err := uc.readFigures(ctx, now)
	if err != nil {
		slog.Error("Failed to aggregate life score inputs, returning defaults",
			"error", err,
			"schema_missing", errors.Is(err, domainerror.ErrSchemaMissing),
		)
		return defaultOutput(now)
	}

	return buildOutput(figures, health, now)
}

func (uc *GetLifeScoreUseCase) readFigures(ctx context.Context, now time.Time) (Figures, *entity.HealthSettings, error) {
	var (
		figures Figures
		health  *entity.HealthSettings
	)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	// Each goroutine writes a distinct field, so no locking is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		figures.TotalInvestments, err = uc.analyticsRepo.SumInvestmentValue(gctx)
		return err
	})
	g.Go(func() (err error) {
		figures.TotalDebts, err = uc.analyticsRepo.SumRemainingDebt(gctx)
		return err
	})
	g.Go(func() (err error) {
		figures.MonthlyExpenses, err = uc.analyticsRepo.SumExpensesBetween(gctx, monthStart, monthEnd)
		return err
	})
	g.Go(func() (err error) {
		figures.MonthlySalary, err = uc.analyticsRepo.GetMonthlySalary(gctx)
		return err
	})
	g.Go(func() (err error) {
		health, err = uc.analyticsRepo.GetHealthSettings(gctx)
		return err
	})
	g.Go(func() (err error) {
		figures.TotalTasks, err = uc.analyticsRepo.CountTasks(gctx)
		return err
	})
	g.Go(func() (err error) {
		figures.CompletedTasks, err = uc.analyticsRepo.CountCompletedTasks(gctx)
		return err
	})
	g.Go(func() (err error) {
		figures.ActiveHabits, err = uc.analyticsRepo.CountHabits(gctx)
		return err
	})
	g.Go(func() (err error) {
		figures.GoalsProgress, err = uc.analyticsRepo.AverageGoalProgress(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return Figures{}, nil, err
	}

	if health != nil {
		if health.Weight != nil {
			figures.Weight = *health.Weight
		}
		if health.Height != nil {
			figures.Height = *health.Height
		}
		figures.BirthDate = health.BirthDate
	}

	return figures, health, nil
}

func buildOutput(figures Figures, health *entity.HealthSettings, now time.Time) *GetLifeScoreOutput {
	investments := figures.TotalInvestments.InexactFloat64()
	debts := figures.TotalDebts.InexactFloat64()
	expenses := figures.MonthlyExpenses.InexactFloat64()
	salary := figures.MonthlySalary.InexactFloat64()

	age := 0
	if figures.BirthDate != nil {
		age = valueobject.CalculateAge(*figures.BirthDate, now)
	}

	salaryRemaining := figures.MonthlySalary.Sub(figures.MonthlyExpenses)
	bmi := valueobject.CalculateBMI(figures.Weight, figures.Height)
	spendingRatio := valueobject.SpendingRatio(expenses, salary)
	debtRatio := valueobject.DebtToAssetRatio(debts, investments, salaryRemaining.InexactFloat64())

	score := valueobject.CalculateLifeScore(valueobject.ScoreInput{
		TotalInvestments: investments,
		TotalDebts:       debts,
		MonthlyExpenses:  expenses,
		MonthlySalary:    salary,
		Weight:           figures.Weight,
		Height:           figures.Height,
		Age:              age,
		TotalTasks:       figures.TotalTasks,
		CompletedTasks:   figures.CompletedTasks,
		ActiveHabits:     figures.ActiveHabits,
		GoalsProgress:    figures.GoalsProgress,
	})

	return &GetLifeScoreOutput{
		Figures: figures,
		Derived: Derived{
			BMI:              bmi,
			BMICategory:      valueobject.ClassifyBMI(bmi),
			Age:              age,
			SpendingRatio:    spendingRatio,
			SpendingStatus:   valueobject.ClassifySpending(spendingRatio),
			DebtToAssetRatio: debtRatio,
			DebtStatus:       valueobject.ClassifyDebtRatio(debtRatio),
			NetWorth:         figures.TotalInvestments.Sub(figures.TotalDebts),
			SalaryRemaining:  salaryRemaining,
			YearCountdown:    valueobject.CalculateYearCountdown(now),
		},
		Score:          score,
		ScoreLabels:    labelScores(score),
		HealthSettings: health,
	}
}

// defaultOutput is the payload returned when the inputs cannot be read:
// every figure zero, every score neutral, no health settings.
func defaultOutput(now time.Time) *GetLifeScoreOutput {
	score := valueobject.DefaultLifeScore()

	return &GetLifeScoreOutput{
		Derived: Derived{
			BMICategory:    valueobject.ClassifyBMI(0),
			SpendingStatus: valueobject.ClassifySpending(0),
			DebtStatus:     valueobject.ClassifyDebtRatio(0),
			YearCountdown:  valueobject.CalculateYearCountdown(now),
		},
		Score:       score,
		ScoreLabels: labelScores(score),
		Degraded:    true,
	}
}

func labelScores(score valueobject.LifeScore) ScoreLabels {
	return ScoreLabels{
		Financial:    valueobject.ClassifyScore(score.Financial),
		Health:       valueobject.ClassifyScore(score.Health),
		Productivity: valueobject.ClassifyScore(score.Productivity),
		Overall:      valueobject.ClassifyScore(score.Overall),
	}
}
