package schedule

import "time"

// DateLayout is the only accepted date format for task entries.
const DateLayout = "2006-01-02"

// Task represents a single validated schedule entry.
type Task struct {
	Name  string
	Start time.Time
	End   time.Time
}

// DurationDays returns the inclusive number of days covered by the task.
// A task that starts and ends on the same day lasts one day.
func (t Task) DurationDays() int {
	return DaysBetween(t.Start, t.End) + 1
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the whole number of calendar days from a to b. It
// works on Unix seconds because time.Duration saturates past ~292 years.
// Dates are parsed at UTC midnight so every day is exactly secondsPerDay.
func DaysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}
