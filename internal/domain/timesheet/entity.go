package timesheet

import (
	"math"
	"time"
)

// State classifies the completeness of an attendance interval. Consumers
// switch over it explicitly instead of re-deriving nil checks.
type State string

const (
	// StateComplete has both stamps.
	StateComplete State = "complete"
	// StateOpenExit has only the opening stamp; the closing stamp has not
	// been recorded yet.
	StateOpenExit State = "open_exit"
	// StateOpenEntry has only the closing stamp. A return without a prior
	// checkout is a data anomaly and is surfaced, not hidden.
	StateOpenEntry State = "open_entry"
	// StateEmpty has neither stamp.
	StateEmpty State = "empty"
)

// Interval is an entry/exit or exit/return stamp pair. Derived metrics are
// computed freshly on each call; intervals are never mutated in place.
type Interval struct {
	Start *time.Time
	End   *time.Time
}

// Classify reports the completeness of the interval.
func (iv Interval) Classify() State {
	switch {
	case iv.Start != nil && iv.End != nil:
		return StateComplete
	case iv.Start != nil:
		return StateOpenExit
	case iv.End != nil:
		return StateOpenEntry
	}
	return StateEmpty
}

// Minutes returns the elapsed whole minutes of a complete interval, rounded
// to the nearest minute. Non-complete intervals yield ErrIntervalOpen. An
// end before start is corrupted input from the real world (guard or clock
// entry mistakes), reported as ErrNegativeDuration so callers can surface
// it instead of crashing a report.
func (iv Interval) Minutes() (int, error) {
	if iv.Classify() != StateComplete {
		return 0, ErrIntervalOpen
	}
	if iv.End.Before(*iv.Start) {
		return 0, ErrNegativeDuration
	}
	return int(math.Round(iv.End.Sub(*iv.Start).Minutes())), nil
}

// StandardTime is a configured expected clock time (e.g. official entry
// 06:00) supplied per report by the caller, never stored here.
type StandardTime struct {
	Hour   int
	Minute int
}

// Standards pairs the official entry and exit times for a report.
type Standards struct {
	Entry StandardTime
	Exit  StandardTime
}

// AttendanceRecord is a raw daily entry/exit row from the store.
type AttendanceRecord struct {
	ID            string
	PersonnelCode string
	FullName      *string
	Interval      Interval
}

// HourlyLeaveRecord is an intra-day exit/return row from the store. Reason
// is opaque to the accounting core.
type HourlyLeaveRecord struct {
	ID            string
	PersonnelCode string
	FullName      *string
	Reason        string
	Interval      Interval
}

// PersonAggregate is one person's totals for a reporting period. It exists
// only for the duration of a report computation.
type PersonAggregate struct {
	PersonnelCode          string
	FullName               *string
	DistinctWorkingDays    int
	TotalLateMinutes       int
	TotalEarlyLeaveMinutes int
	TotalShortLeaveMinutes int
	// OpenLeaveIntervals counts hourly leaves still missing a stamp. They
	// are excluded from the minute total but stay visible to the caller.
	OpenLeaveIntervals int
}

// SkippedRecord describes a row excluded from the numeric sums, reported
// alongside the totals so the count is never silently wrong.
type SkippedRecord struct {
	RecordID      string
	PersonnelCode string
	Reason        string
}
