package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository reads raw stamp rows from the store. Ranges are
// half-open UTC instant windows [from, to); the repository does no
// calendar or duration arithmetic of its own.
type TimesheetRepository interface {
	// ListAttendance returns daily entry/exit rows whose recorded stamp
	// falls inside the window.
	ListAttendance(ctx context.Context, from, to time.Time) ([]AttendanceRecord, error)

	// ListHourlyLeaves returns intra-day exit/return rows whose recorded
	// stamp falls inside the window.
	ListHourlyLeaves(ctx context.Context, from, to time.Time) ([]HourlyLeaveRecord, error)
}
