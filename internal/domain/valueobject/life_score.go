// Package valueobject contains domain value objects for the life tracker.
package valueobject

import "math"

const (
	// baseScore is the neutral starting point of every sub-score.
	baseScore = 50
	minScore  = 0
	maxScore  = 100

	// Overall weights, expressed in tenths so the weighted sum stays integral.
	financialWeight    = 4
	healthWeight       = 3
	productivityWeight = 3
)

// ScoreInput holds the aggregated figures a life score is computed from.
type ScoreInput struct {
	TotalInvestments float64
	TotalDebts       float64
	MonthlyExpenses  float64
	MonthlySalary    float64
	Weight           float64 // kg
	Height           float64 // cm
	Age              int
	TotalTasks       int
	CompletedTasks   int
	ActiveHabits     int
	GoalsProgress    float64 // 0-100
}

// LifeScore holds the three sub-scores and their weighted overall score.
type LifeScore struct {
	Financial    int
	Health       int
	Productivity int
	Overall      int
}

// DefaultLifeScore returns the neutral score used when no data can be read.
func DefaultLifeScore() LifeScore {
	return LifeScore{
		Financial:    baseScore,
		Health:       baseScore,
		Productivity: baseScore,
		Overall:      baseScore,
	}
}

// CalculateLifeScore computes every sub-score and the overall score for the input.
func CalculateLifeScore(in ScoreInput) LifeScore {
	financial := FinancialScore(in)
	health := HealthScore(in)
	productivity := ProductivityScore(in)

	return LifeScore{
		Financial:    financial,
		Health:       health,
		Productivity: productivity,
		Overall:      OverallScore(financial, health, productivity),
	}
}

// FinancialScore rates spending discipline, savings and indebtedness.
func FinancialScore(in ScoreInput) int {
	score := baseScore

	if in.MonthlySalary > 0 {
		ratio := in.MonthlyExpenses / in.MonthlySalary
		switch {
		case ratio <= 0.5:
			score += 20
		case ratio <= 0.7:
			score += 10
		case ratio <= 0.9:
		case ratio <= 1:
			score -= 10
		default:
			score -= 25
		}
	}

	if in.TotalInvestments > 0 {
		score += 15
		if in.TotalInvestments > in.MonthlySalary*3 {
			score += 10
		}
		if in.TotalInvestments > in.MonthlySalary*12 {
			score += 5
		}
	}

	if in.TotalDebts > 0 {
		debtRatio := in.TotalDebts / math.Max(in.TotalInvestments+in.MonthlySalary, 1)
		switch {
		case debtRatio > 1:
			score -= 20
		case debtRatio > 0.5:
			score -= 10
		default:
			score -= 5
		}
	}

	return clampScore(float64(score))
}

// HealthScore rates body mass and age. Without both weight and height the
// score stays neutral, age included.
func HealthScore(in ScoreInput) int {
	if in.Weight <= 0 || in.Height <= 0 {
		return baseScore
	}

	score := baseScore

	// Bands overlap; only the first match applies.
	bmi := CalculateBMI(in.Weight, in.Height)
	switch {
	case bmi >= 18.5 && bmi < 23:
		score += 30
	case bmi >= 17 && bmi < 25:
		score += 15
	case bmi >= 15 && bmi < 30:
	default:
		score -= 15
	}

	if in.Age > 0 {
		switch {
		case in.Age < 30:
			score += 10
		case in.Age < 50:
			score += 5
		}
	}

	return clampScore(float64(score))
}

// ProductivityScore rates task completion, habit count and goal progress.
func ProductivityScore(in ScoreInput) int {
	score := float64(baseScore)

	if in.TotalTasks > 0 {
		score += float64(in.CompletedTasks*30) / float64(in.TotalTasks)
	}

	if in.ActiveHabits > 0 {
		score += math.Min(float64(in.ActiveHabits*3), 15)
	}

	if in.GoalsProgress > 0 {
		score += in.GoalsProgress * 15 / 100
	}

	return clampScore(score)
}

// OverallScore returns round(0.4*financial + 0.3*health + 0.3*productivity).
func OverallScore(financial, health, productivity int) int {
	weighted := financialWeight*financial + healthWeight*health + productivityWeight*productivity
	// Sub-scores are non-negative, so adding half a unit before the integer
	// division rounds half away from zero.
	return clampScore(float64((weighted + 5) / 10))
}

// clampScore bounds a raw score to [0,100] and rounds it half away from zero.
func clampScore(score float64) int {
	return int(math.Round(math.Max(minScore, math.Min(maxScore, score))))
}
