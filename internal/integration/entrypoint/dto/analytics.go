package dto

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/application/usecase/analytics"
	"github.com/lifetracker/backend/internal/domain/valueobject"
)

// TierResponse is a label with its display severity.
type TierResponse struct {
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// YearCountdownResponse describes the rest of the calendar year.
type YearCountdownResponse struct {
	Year          int     `json:"year"`
	DaysRemaining int     `json:"days_remaining"`
	Progress      float64 `json:"progress"`
}

// ScoreLabelsResponse classifies each score.
type ScoreLabelsResponse struct {
	Financial    TierResponse `json:"financial"`
	Health       TierResponse `json:"health"`
	Productivity TierResponse `json:"productivity"`
	Overall      TierResponse `json:"overall"`
}

// AnalyticsResponse is the life score payload.
type AnalyticsResponse struct {
	TotalInvestments decimal.Decimal `json:"total_investments"`
	TotalDebts       decimal.Decimal `json:"total_debts"`
	MonthlyExpenses  decimal.Decimal `json:"monthly_expenses"`
	MonthlySalary    decimal.Decimal `json:"monthly_salary"`
	SalaryRemaining  decimal.Decimal `json:"salary_remaining"`
	NetWorth         decimal.Decimal `json:"net_worth"`

	Weight         float64      `json:"weight"`
	Height         float64      `json:"height"`
	Age            int          `json:"age"`
	BMI            float64      `json:"bmi"`
	BMICategory    TierResponse `json:"bmi_category"`
	SpendingRatio  float64      `json:"spending_ratio"`
	SpendingStatus TierResponse `json:"spending_status"`
	DebtRatio      float64      `json:"debt_to_asset_ratio"`
	DebtStatus     TierResponse `json:"debt_status"`

	CompletedTasks int     `json:"completed_tasks"`
	TotalTasks     int     `json:"total_tasks"`
	ActiveHabits   int     `json:"active_habits"`
	GoalsProgress  float64 `json:"goals_progress"`

	FinancialScore    int                 `json:"financial_score"`
	HealthScore       int                 `json:"health_score"`
	ProductivityScore int                 `json:"productivity_score"`
	OverallScore      int                 `json:"overall_score"`
	ScoreLabels       ScoreLabelsResponse `json:"score_labels"`

	YearCountdown  YearCountdownResponse   `json:"year_countdown"`
	HealthSettings *HealthSettingsResponse `json:"health_settings"`
	Degraded       bool                    `json:"degraded"`
}

// ToAnalyticsResponse converts the life score output.
func ToAnalyticsResponse(out *analytics.GetLifeScoreOutput) AnalyticsResponse {
	return AnalyticsResponse{
		TotalInvestments: out.Figures.TotalInvestments,
		TotalDebts:       out.Figures.TotalDebts,
		MonthlyExpenses:  out.Figures.MonthlyExpenses,
		MonthlySalary:    out.Figures.MonthlySalary,
		SalaryRemaining:  out.Derived.SalaryRemaining,
		NetWorth:         out.Derived.NetWorth,

		Weight:         out.Figures.Weight,
		Height:         out.Figures.Height,
		Age:            out.Derived.Age,
		BMI:            round2(out.Derived.BMI),
		BMICategory:    toTierResponse(out.Derived.BMICategory),
		SpendingRatio:  round2(out.Derived.SpendingRatio),
		SpendingStatus: toTierResponse(out.Derived.SpendingStatus),
		DebtRatio:      round2(out.Derived.DebtToAssetRatio),
		DebtStatus:     toTierResponse(out.Derived.DebtStatus),

		CompletedTasks: out.Figures.CompletedTasks,
		TotalTasks:     out.Figures.TotalTasks,
		ActiveHabits:   out.Figures.ActiveHabits,
		GoalsProgress:  round2(out.Figures.GoalsProgress),

		FinancialScore:    out.Score.Financial,
		HealthScore:       out.Score.Health,
		ProductivityScore: out.Score.Productivity,
		OverallScore:      out.Score.Overall,
		ScoreLabels: ScoreLabelsResponse{
			Financial:    toTierResponse(out.ScoreLabels.Financial),
			Health:       toTierResponse(out.ScoreLabels.Health),
			Productivity: toTierResponse(out.ScoreLabels.Productivity),
			Overall:      toTierResponse(out.ScoreLabels.Overall),
		},

		YearCountdown: YearCountdownResponse{
			Year:          out.Derived.YearCountdown.Year,
			DaysRemaining: out.Derived.YearCountdown.DaysRemaining,
			Progress:      round2(out.Derived.YearCountdown.Progress),
		},
		HealthSettings: ToHealthSettingsResponse(out.HealthSettings),
		Degraded:       out.Degraded,
	}
}

func toTierResponse(t valueobject.Tier) TierResponse {
	return TierResponse{Label: t.Label, Severity: string(t.Severity)}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
