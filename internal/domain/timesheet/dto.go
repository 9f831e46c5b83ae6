package timesheet

import (
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/jalali"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET REPORT DTOs
// ========================================

// MonthlyReportRequest selects one Jalali month and the official entry/exit
// clock times the report is measured against.
type MonthlyReportRequest struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	EntryStandard string `json:"entry_standard"`
	ExitStandard  string `json:"exit_standard"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive Jalali year",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if _, _, ok := validator.ParseClock(r.EntryStandard); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_standard",
			Message: "entry_standard must be a HH:MM clock time",
		})
	}

	if _, _, ok := validator.ParseClock(r.ExitStandard); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_standard",
			Message: "exit_standard must be a HH:MM clock time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Standards converts the validated HH:MM strings into StandardTime values.
func (r *MonthlyReportRequest) Standards() Standards {
	entryHour, entryMinute, _ := validator.ParseClock(r.EntryStandard)
	exitHour, exitMinute, _ := validator.ParseClock(r.ExitStandard)
	return Standards{
		Entry: StandardTime{Hour: entryHour, Minute: entryMinute},
		Exit:  StandardTime{Hour: exitHour, Minute: exitMinute},
	}
}

// DailyReportRequest selects one Jalali calendar day.
type DailyReportRequest struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	Day           int    `json:"day"`
	EntryStandard string `json:"entry_standard"`
	ExitStandard  string `json:"exit_standard"`
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	date := jalali.JalaliDate{Year: r.Year, Month: r.Month, Day: r.Day}
	if err := date.Validate(); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "year/month/day is not a valid Jalali date",
		})
	}

	if _, _, ok := validator.ParseClock(r.EntryStandard); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_standard",
			Message: "entry_standard must be a HH:MM clock time",
		})
	}

	if _, _, ok := validator.ParseClock(r.ExitStandard); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "exit_standard",
			Message: "exit_standard must be a HH:MM clock time",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Standards converts the validated HH:MM strings into StandardTime values.
func (r *DailyReportRequest) Standards() Standards {
	entryHour, entryMinute, _ := validator.ParseClock(r.EntryStandard)
	exitHour, exitMinute, _ := validator.ParseClock(r.ExitStandard)
	return Standards{
		Entry: StandardTime{Hour: entryHour, Minute: entryMinute},
		Exit:  StandardTime{Hour: exitHour, Minute: exitMinute},
	}
}

type PersonAggregateResponse struct {
	PersonnelCode          string  `json:"personnel_code"`
	FullName               *string `json:"full_name,omitempty"`
	DistinctWorkingDays    int     `json:"distinct_working_days"`
	TotalLateMinutes       int     `json:"total_late_minutes"`
	TotalEarlyLeaveMinutes int     `json:"total_early_leave_minutes"`
	TotalShortLeaveMinutes int     `json:"total_short_leave_minutes"`
	TotalShortLeaveLabel   string  `json:"total_short_leave_label"`
	OpenLeaveIntervals     int     `json:"open_leave_intervals"`
}

type SkippedRecordResponse struct {
	RecordID      string `json:"record_id"`
	PersonnelCode string `json:"personnel_code"`
	Reason        string `json:"reason"`
}

type MonthlyReportResponse struct {
	PeriodYear     int                       `json:"period_year"`
	PeriodMonth    int                       `json:"period_month"`
	PeriodStart    string                    `json:"period_start"`
	PeriodEnd      string                    `json:"period_end"`
	JalaliPeriod   string                    `json:"jalali_period"`
	EntryStandard  string                    `json:"entry_standard"`
	ExitStandard   string                    `json:"exit_standard"`
	GeneratedAt    string                    `json:"generated_at"`
	People         []PersonAggregateResponse `json:"people"`
	SkippedRecords []SkippedRecordResponse   `json:"skipped_records"`
}

type AttendanceRowResponse struct {
	ID                string  `json:"id"`
	PersonnelCode     string  `json:"personnel_code"`
	FullName          *string `json:"full_name,omitempty"`
	EntryTime         *string `json:"entry_time,omitempty"`
	ExitTime          *string `json:"exit_time,omitempty"`
	State             string  `json:"state"`
	WorkMinutes       *int    `json:"work_minutes,omitempty"`
	WorkLabel         *string `json:"work_label,omitempty"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
	Error             *string `json:"error,omitempty"`
}

type HourlyLeaveRowResponse struct {
	ID            string  `json:"id"`
	PersonnelCode string  `json:"personnel_code"`
	FullName      *string `json:"full_name,omitempty"`
	Reason        string  `json:"reason"`
	ExitTime      *string `json:"exit_time,omitempty"`
	ReturnTime    *string `json:"return_time,omitempty"`
	State         string  `json:"state"`
	LeaveMinutes  *int    `json:"leave_minutes,omitempty"`
	LeaveLabel    *string `json:"leave_label,omitempty"`
	Error         *string `json:"error,omitempty"`
}

type DailyReportResponse struct {
	JalaliDate    string                   `json:"jalali_date"`
	GregorianDate string                   `json:"gregorian_date"`
	EntryStandard string                   `json:"entry_standard"`
	ExitStandard  string                   `json:"exit_standard"`
	GeneratedAt   string                   `json:"generated_at"`
	Attendance    []AttendanceRowResponse  `json:"attendance"`
	HourlyLeaves  []HourlyLeaveRowResponse `json:"hourly_leaves"`
}
