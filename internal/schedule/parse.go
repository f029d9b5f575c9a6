package schedule

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	recordSeparator = ";"
	fieldSeparator  = ","

	// Year zero is not a calendar year.
	minYear = 1
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate parses a strict YYYY-MM-DD calendar date at UTC midnight.
// Tests replace it to exercise the per-entry recovery boundary.
var ParseDate = func(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("date %q does not match YYYY-MM-DD", s)
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	if d.Year() < minYear {
		return time.Time{}, fmt.Errorf("date %q is before year %d", s, minYear)
	}
	return d, nil
}

// Result is the outcome of parsing one raw input blob.
type Result struct {
	Tasks       []Task       // valid tasks in input order
	Diagnostics []Diagnostic // one per rejected entry, in input order
	Entries     int          // non-empty entries seen
}

// SplitEntries splits raw input on the record separator, trims each piece
// and drops the ones left empty.
func SplitEntries(raw string) []string {
	var entries []string
	for _, piece := range strings.Split(raw, recordSeparator) {
		if piece = strings.TrimSpace(piece); piece != "" {
			entries = append(entries, piece)
		}
	}
	return entries
}

// Parse validates every entry of raw independently. Each non-empty entry
// produces exactly one Task or exactly one Diagnostic.
func Parse(raw string) Result {
	entries := SplitEntries(raw)
	res := Result{Entries: len(entries)}

	for _, entry := range entries {
		task, diag := parseEntry(entry)
		if diag != nil {
			res.Diagnostics = append(res.Diagnostics, *diag)
			continue
		}
		res.Tasks = append(res.Tasks, task)
	}

	return res
}

// parseEntry validates a single entry. A panic anywhere inside is converted
// into an UnexpectedEntryError diagnostic so the remaining entries still run.
func parseEntry(entry string) (task Task, diag *Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			task = Task{}
			diag = &Diagnostic{Kind: KindUnexpected, Entry: entry, Detail: fmt.Sprint(r)}
		}
	}()

	parts := strings.Split(entry, fieldSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) != 3 || parts[0] == "" {
		return Task{}, &Diagnostic{Kind: KindMalformedEntry, Entry: entry}
	}

	name, startText, endText := parts[0], parts[1], parts[2]

	start, err := ParseDate(startText)
	if err != nil {
		return Task{}, &Diagnostic{Kind: KindInvalidStartDate, Entry: entry, Name: name, StartText: startText, Detail: err.Error()}
	}

	end, err := ParseDate(endText)
	if err != nil {
		return Task{}, &Diagnostic{Kind: KindInvalidEndDate, Entry: entry, Name: name, EndText: endText, Detail: err.Error()}
	}

	if end.Before(start) {
		return Task{}, &Diagnostic{Kind: KindInvertedRange, Entry: entry, Name: name, StartText: startText, EndText: endText}
	}

	return Task{Name: name, Start: start, End: end}, nil
}

// Build runs the whole validation pipeline on raw input: trimming, parsing
// and display ordering. It returns ErrEmptyInput for blank input and a
// wrapped ErrNoValidTasks, with the diagnostics still populated, when every
// entry was rejected.
func Build(raw string) (Result, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{}, ErrEmptyInput
	}

	res := Parse(raw)
	if len(res.Tasks) == 0 {
		return res, fmt.Errorf("%d entries rejected: %w", len(res.Diagnostics), ErrNoValidTasks)
	}

	res.Tasks = SortForDisplay(res.Tasks)
	return res, nil
}
