package schedule

import "sort"

// SortForDisplay returns a copy of tasks ordered by descending start date,
// keeping input order for equal starts. Charts plot the first task at the
// bottom of the vertical axis, so this puts the earliest task on top.
func SortForDisplay(tasks []Task) []Task {
	sorted := make([]Task, len(tasks))
	copy(sorted, tasks)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.After(sorted[j].Start)
	})

	return sorted
}
