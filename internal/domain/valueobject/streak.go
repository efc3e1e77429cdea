package valueobject

import "time"

// MaxStreakDays bounds how far back a habit streak is counted.
const MaxStreakDays = 365

// DateKey truncates t to its calendar day in UTC.
func DateKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalculateStreak counts consecutive completed days ending today. A day
// without a completion breaks the streak, except today itself.
func CalculateStreak(completedDates []time.Time, today time.Time) int {
	done := make(map[time.Time]struct{}, len(completedDates))
	for _, d := range completedDates {
		done[DateKey(d)] = struct{}{}
	}

	day := DateKey(today)
	streak := 0
	for i := 0; i < MaxStreakDays; i++ {
		check := day.AddDate(0, 0, -i)
		if _, ok := done[check]; ok {
			streak++
			continue
		}
		if i > 0 {
			break
		}
	}

	return streak
}
