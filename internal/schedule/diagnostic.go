package schedule

import (
	"errors"
	"fmt"
)

// Run-level failures. Both abort before any chart is drawn.
var (
	ErrEmptyInput   = errors.New("no input detected")
	ErrNoValidTasks = errors.New("no valid tasks found")
)

// Kind classifies why an entry was rejected.
type Kind int

const (
	KindMalformedEntry Kind = iota
	KindInvalidStartDate
	KindInvalidEndDate
	KindInvertedRange
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindMalformedEntry:
		return "MalformedEntry"
	case KindInvalidStartDate:
		return "InvalidStartDate"
	case KindInvalidEndDate:
		return "InvalidEndDate"
	case KindInvertedRange:
		return "InvertedRange"
	case KindUnexpected:
		return "UnexpectedEntryError"
	default:
		return "Unknown"
	}
}

// Diagnostic describes one rejected entry. It satisfies error so callers can
// log or wrap it like any other failure.
type Diagnostic struct {
	Kind      Kind
	Entry     string
	Name      string
	StartText string
	EndText   string
	Detail    string
}

// Error returns the human-readable message shown to the user.
func (d Diagnostic) Error() string {
	switch d.Kind {
	case KindMalformedEntry:
		return fmt.Sprintf("'%s' is missing commas or dates.", d.Entry)
	case KindInvalidStartDate:
		return fmt.Sprintf("Start date '%s' in '%s' must be YYYY-MM-DD.", d.StartText, d.Name)
	case KindInvalidEndDate:
		return fmt.Sprintf("End date '%s' in '%s' must be YYYY-MM-DD.", d.EndText, d.Name)
	case KindInvertedRange:
		return fmt.Sprintf("Task '%s' ends before it starts (%s < %s).", d.Name, d.EndText, d.StartText)
	default:
		return d.Detail
	}
}

// Unexpected reports whether the diagnostic came from the per-entry recovery
// boundary rather than a validation rule.
func (d Diagnostic) Unexpected() bool {
	return d.Kind == KindUnexpected
}
