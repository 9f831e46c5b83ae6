package timesheet

import "errors"

// Timesheet domain errors
var (
	// ErrNegativeDuration marks an interval whose end precedes its start:
	// expected bad data, not a programming error.
	ErrNegativeDuration = errors.New("interval end precedes start")
	ErrIntervalOpen     = errors.New("interval is not complete")
)
