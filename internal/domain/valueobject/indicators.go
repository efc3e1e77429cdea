package valueobject

import (
	"math"
	"time"
)

const (
	// maxDebtToAssetRatio caps the reported debt-to-asset percentage.
	maxDebtToAssetRatio = 200
	// assetEpsilon keeps the debt-to-asset denominator away from zero.
	assetEpsilon = 1e-9
)

// Severity is the coarse color bucket attached to an indicator label.
type Severity string

const (
	SeverityGood    Severity = "good"
	SeverityNeutral Severity = "neutral"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Tier is a human readable classification of a numeric indicator.
type Tier struct {
	Label    string
	Severity Severity
}

// CalculateBMI returns weight (kg) over squared height (m), or 0 when the
// height is unknown.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	meters := heightCm / 100
	return weightKg / (meters * meters)
}

// CalculateAge returns the number of full years between birthDate and now.
func CalculateAge(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// SpendingRatio returns monthly expenses as a percentage of salary.
func SpendingRatio(expenses, salary float64) float64 {
	if salary <= 0 {
		return 0
	}
	return expenses * 100 / salary
}

// DebtToAssetRatio returns debts as a percentage of investments plus the
// unspent part of the salary, capped at 200.
func DebtToAssetRatio(debts, investments, salaryRemaining float64) float64 {
	assets := math.Max(investments+math.Max(salaryRemaining, 0), assetEpsilon)
	return math.Min(debts*100/assets, maxDebtToAssetRatio)
}

// ClassifyBMI labels a body mass index using Asian cut-offs.
func ClassifyBMI(bmi float64) Tier {
	switch {
	case bmi < 18.5:
		return Tier{Label: "underweight", Severity: SeverityWarning}
	case bmi < 23:
		return Tier{Label: "normal", Severity: SeverityGood}
	case bmi < 25:
		return Tier{Label: "overweight", Severity: SeverityWarning}
	case bmi < 30:
		return Tier{Label: "obese", Severity: SeverityDanger}
	default:
		return Tier{Label: "severely obese", Severity: SeverityDanger}
	}
}

// ClassifySpending labels a spending ratio percentage.
func ClassifySpending(ratio float64) Tier {
	switch {
	case ratio <= 50:
		return Tier{Label: "excellent", Severity: SeverityGood}
	case ratio <= 70:
		return Tier{Label: "normal", Severity: SeverityNeutral}
	case ratio <= 90:
		return Tier{Label: "high", Severity: SeverityWarning}
	case ratio <= 100:
		return Tier{Label: "near limit", Severity: SeverityWarning}
	default:
		return Tier{Label: "over budget", Severity: SeverityDanger}
	}
}

// ClassifyDebtRatio labels a debt-to-asset percentage.
func ClassifyDebtRatio(ratio float64) Tier {
	switch {
	case ratio > 100:
		return Tier{Label: "critical", Severity: SeverityDanger}
	case ratio > 50:
		return Tier{Label: "high", Severity: SeverityWarning}
	default:
		return Tier{Label: "healthy", Severity: SeverityGood}
	}
}

// ClassifyScore labels a 0-100 score.
func ClassifyScore(score int) Tier {
	switch {
	case score >= 80:
		return Tier{Label: "excellent", Severity: SeverityGood}
	case score >= 60:
		return Tier{Label: "good", Severity: SeverityGood}
	case score >= 40:
		return Tier{Label: "fair", Severity: SeverityNeutral}
	case score >= 20:
		return Tier{Label: "poor", Severity: SeverityWarning}
	default:
		return Tier{Label: "critical", Severity: SeverityDanger}
	}
}

// YearCountdown describes how much of the current calendar year is left.
type YearCountdown struct {
	Year          int
	DaysRemaining int
	Progress      float64 // percent of the year elapsed
}

// CalculateYearCountdown returns the days left until January 1st of next year.
func CalculateYearCountdown(now time.Time) YearCountdown {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
	next := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, loc)

	totalDays := daysBetween(start, next)
	remaining := daysBetween(today, next)

	return YearCountdown{
		Year:          now.Year(),
		DaysRemaining: remaining,
		Progress:      math.Round(float64(totalDays-remaining)/float64(totalDays)*1000) / 10,
	}
}

// daysBetween counts calendar days, ignoring DST shifts.
func daysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}
