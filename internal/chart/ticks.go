package chart

import "time"

// TickLayout formats tick labels on the date axis.
const TickLayout = "2006-01-02"

// Tick is one labelled position on the date axis.
type Tick struct {
	Date  time.Time
	Label string
}

type tickInterval struct {
	days   int
	months int
	years  int
}

// Candidate intervals, finest first.
var tickIntervals = []tickInterval{
	{days: 1}, {days: 2}, {days: 3}, {days: 4}, {days: 7}, {days: 14},
	{months: 1}, {months: 2}, {months: 3}, {months: 4}, {months: 6},
	{years: 1}, {years: 2}, {years: 5}, {years: 10}, {years: 20}, {years: 50}, {years: 100},
}

// Ticks picks the finest interval that yields between one and maxTicks
// ticks inside [Min, Max]. Month and year ticks fall on the first day of a
// month so labels line up with calendar boundaries.
func (l Layout) Ticks(maxTicks int) []Tick {
	if l.Empty() || maxTicks < 1 {
		return nil
	}

	for _, iv := range tickIntervals {
		dates := tickDates(iv, l.Min, l.Max, maxTicks)
		if len(dates) >= 1 && len(dates) <= maxTicks {
			return toTicks(dates)
		}
	}

	return toTicks([]time.Time{l.Min})
}

// tickDates returns the tick positions for iv, stopping early once more than
// limit positions have been produced.
func tickDates(iv tickInterval, from, to time.Time, limit int) []time.Time {
	var (
		first time.Time
		step  func(time.Time) time.Time
	)

	switch {
	case iv.days > 0:
		first = from
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, iv.days) }
	case iv.months > 0:
		first = time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
		if first.Before(from) {
			first = first.AddDate(0, 1, 0)
		}
		for (int(first.Month())-1)%iv.months != 0 {
			first = first.AddDate(0, 1, 0)
		}
		step = func(t time.Time) time.Time { return t.AddDate(0, iv.months, 0) }
	default:
		year := from.Year()
		first = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		if first.Before(from) {
			year++
		}
		for year%iv.years != 0 {
			year++
		}
		first = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		step = func(t time.Time) time.Time { return t.AddDate(iv.years, 0, 0) }
	}

	var dates []time.Time
	for t := first; !t.After(to); t = step(t) {
		dates = append(dates, t)
		if len(dates) > limit {
			break
		}
	}
	return dates
}

func toTicks(dates []time.Time) []Tick {
	ticks := make([]Tick, len(dates))
	for i, d := range dates {
		ticks[i] = Tick{Date: d, Label: d.Format(TickLayout)}
	}
	return ticks
}
