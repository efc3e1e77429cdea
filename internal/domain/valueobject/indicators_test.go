package valueobject

import (
	"math"
	"testing"
	"time"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		height   float64
		expected float64
	}{
		{"regular adult", 70, 170, 24.22},
		{"tall adult", 90, 190, 24.93},
		{"zero height", 70, 0, 0},
		{"negative height", 70, -170, 0},
		{"zero weight", 0, 170, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := math.Round(CalculateBMI(tt.weight, tt.height)*100) / 100
			if got != tt.expected {
				t.Errorf("expected %.2f, got %.2f", tt.expected, got)
			}
		})
	}
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		bmi      float64
		expected string
	}{
		{15, "underweight"},
		{18.49, "underweight"},
		{18.5, "normal"},
		{22.99, "normal"},
		{23, "overweight"},
		{24.22, "overweight"},
		{25, "obese"},
		{29.9, "obese"},
		{30, "severely obese"},
		{45, "severely obese"},
	}

	for _, tt := range tests {
		if got := ClassifyBMI(tt.bmi).Label; got != tt.expected {
			t.Errorf("ClassifyBMI(%.2f): expected %s, got %s", tt.bmi, tt.expected, got)
		}
	}
}

func TestCalculateAge(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		expected int
	}{
		{"day before birthday", time.Date(2024, time.June, 14, 12, 0, 0, 0, time.UTC), 33},
		{"on birthday", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), 34},
		{"month before birthday", time.Date(2024, time.May, 30, 0, 0, 0, 0, time.UTC), 33},
		{"after birthday", time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), 34},
		{"birth date in the future", time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateAge(birth, tt.now); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestSpendingRatio(t *testing.T) {
	if got := SpendingRatio(30000, 50000); got != 60 {
		t.Errorf("expected 60, got %v", got)
	}
	if got := SpendingRatio(30000, 0); got != 0 {
		t.Errorf("expected 0 without salary, got %v", got)
	}
	if got := ClassifySpending(SpendingRatio(30000, 50000)).Label; got != "normal" {
		t.Errorf("expected normal, got %s", got)
	}
}

func TestClassifySpending(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{0, "excellent"},
		{50, "excellent"},
		{50.01, "normal"},
		{70, "normal"},
		{90, "high"},
		{100, "near limit"},
		{100.5, "over budget"},
	}

	for _, tt := range tests {
		if got := ClassifySpending(tt.ratio).Label; got != tt.expected {
			t.Errorf("ClassifySpending(%.2f): expected %s, got %s", tt.ratio, tt.expected, got)
		}
	}
}

func TestDebtToAssetRatio(t *testing.T) {
	tests := []struct {
		name            string
		debts           float64
		investments     float64
		salaryRemaining float64
		expected        float64
	}{
		{"no debt", 0, 1000, 0, 0},
		{"half of assets", 50, 100, 0, 50},
		{"salary remaining counts as asset", 50, 50, 50, 50},
		{"negative salary remaining is ignored", 50, 100, -1000, 50},
		{"no assets is capped", 100, 0, 0, 200},
		{"large debt is capped", 10000, 100, 0, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DebtToAssetRatio(tt.debts, tt.investments, tt.salaryRemaining)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if got < 0 || got > 200 {
				t.Errorf("ratio %v out of range", got)
			}
		})
	}
}

func TestClassifyDebtRatio(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{0, "healthy"},
		{50, "healthy"},
		{50.1, "high"},
		{100, "high"},
		{100.1, "critical"},
		{200, "critical"},
	}

	for _, tt := range tests {
		if got := ClassifyDebtRatio(tt.ratio).Label; got != tt.expected {
			t.Errorf("ClassifyDebtRatio(%.2f): expected %s, got %s", tt.ratio, tt.expected, got)
		}
	}
}

func TestClassifyScore(t *testing.T) {
	tests := []struct {
		score    int
		expected string
		severity Severity
	}{
		{100, "excellent", SeverityGood},
		{80, "excellent", SeverityGood},
		{79, "good", SeverityGood},
		{60, "good", SeverityGood},
		{59, "fair", SeverityNeutral},
		{40, "fair", SeverityNeutral},
		{39, "poor", SeverityWarning},
		{20, "poor", SeverityWarning},
		{19, "critical", SeverityDanger},
		{0, "critical", SeverityDanger},
	}

	for _, tt := range tests {
		got := ClassifyScore(tt.score)
		if got.Label != tt.expected || got.Severity != tt.severity {
			t.Errorf("ClassifyScore(%d): expected %s/%s, got %s/%s",
				tt.score, tt.expected, tt.severity, got.Label, got.Severity)
		}
	}
}

func TestCalculateYearCountdown(t *testing.T) {
	tests := []struct {
		name          string
		now           time.Time
		daysRemaining int
		progress      float64
	}{
		{"new year's day of a leap year", time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC), 366, 0},
		{"new year's eve", time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC), 1, 99.7},
		{"mid year", time.Date(2023, time.July, 2, 10, 0, 0, 0, time.UTC), 183, 49.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateYearCountdown(tt.now)
			if got.Year != tt.now.Year() {
				t.Errorf("expected year %d, got %d", tt.now.Year(), got.Year)
			}
			if got.DaysRemaining != tt.daysRemaining {
				t.Errorf("expected %d days remaining, got %d", tt.daysRemaining, got.DaysRemaining)
			}
			if got.Progress != tt.progress {
				t.Errorf("expected progress %.1f, got %.1f", tt.progress, got.Progress)
			}
		})
	}
}
