package billing

import (
	"fmt"

	"affitto/internal/core"
)

// ScheduleNotFoundError reports that no rent schedule entry is in effect
// for the target date (the date precedes every entry).
type ScheduleNotFoundError struct {
	Date core.Date
}

func (e *ScheduleNotFoundError) Error() string {
	return fmt.Sprintf("no rent schedule in effect for %s", e.Date.ISO())
}

// NoUtilityInfoError reports that the configuration has no utility data
// for the billing month.
type NoUtilityInfoError struct {
	Month string // "YYYY-MM"
}

func (e *NoUtilityInfoError) Error() string {
	return fmt.Sprintf("no utility info for %s", e.Month)
}

// TotalMismatchError reports that the two independently computed statement
// totals disagree. This is an internal consistency failure: it signals a
// bug in the component builder, not a data problem, and is never reconciled.
type TotalMismatchError struct {
	Got  core.Money // sum of component shares
	Want core.Money // rent + evenly divided utility sum
}

func (e *TotalMismatchError) Error() string {
	return fmt.Sprintf("statement total mismatch: component shares sum to %s, cross-check computed %s", e.Got, e.Want)
}

// UnknownPersonError reports a statement request for a person that is not
// in the configuration. Load-time validation makes this unreachable for
// configured people; it guards direct calls.
type UnknownPersonError struct {
	Name string
}

func (e *UnknownPersonError) Error() string {
	return fmt.Sprintf("unknown person %q", e.Name)
}
