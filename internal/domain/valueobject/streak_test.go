package valueobject

import (
	"testing"
	"time"
)

func TestCalculateStreak(t *testing.T) {
	today := time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)
	daysAgo := func(n int) time.Time { return today.AddDate(0, 0, -n) }

	tests := []struct {
		name     string
		dates    []time.Time
		expected int
	}{
		{"no completions", nil, 0},
		{"only today", []time.Time{daysAgo(0)}, 1},
		{"today and two previous days", []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}, 3},
		{"missing today does not break", []time.Time{daysAgo(1), daysAgo(2)}, 2},
		{"gap breaks the streak", []time.Time{daysAgo(0), daysAgo(1), daysAgo(3), daysAgo(4)}, 2},
		{"gap of two days at start", []time.Time{daysAgo(2), daysAgo(3)}, 0},
		{"unordered with duplicates", []time.Time{daysAgo(1), daysAgo(0), daysAgo(1), daysAgo(2)}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateStreak(tt.dates, today); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCalculateStreak_CappedAtMaxDays(t *testing.T) {
	today := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, 0, 500)
	for i := 0; i < 500; i++ {
		dates = append(dates, today.AddDate(0, 0, -i))
	}

	if got := CalculateStreak(dates, today); got != MaxStreakDays {
		t.Errorf("expected %d, got %d", MaxStreakDays, got)
	}
}
