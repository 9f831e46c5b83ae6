package timesheet

import (
	"context"
)

// TimesheetService defines the attendance accounting reports.
type TimesheetService interface {
	// MonthlyReport aggregates one Jalali month into per-person totals.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReportResponse, error)

	// DailyReport lists per-record metrics for one Jalali day.
	DailyReport(ctx context.Context, req DailyReportRequest) (DailyReportResponse, error)
}
