package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/domain/timesheet"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/jalali"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/tehran"
)

type TimesheetServiceImpl struct {
	timesheet.TimesheetRepository
	clock tehran.Clock
}

func NewTimesheetService(repo timesheet.TimesheetRepository, clock tehran.Clock) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		TimesheetRepository: repo,
		clock:               clock,
	}
}

// monthWindow derives the half-open UTC window covering one Jalali month,
// plus the Gregorian first/last days for display.
func (s *TimesheetServiceImpl) monthWindow(year, month int) (from, to time.Time, first, last jalali.GregorianDate, err error) {
	first, err = jalali.ToGregorian(jalali.JalaliDate{Year: year, Month: month, Day: 1})
	if err != nil {
		return
	}
	last, err = jalali.ToGregorian(jalali.JalaliDate{Year: year, Month: month, Day: jalali.DaysInJalaliMonth(year, month)})
	if err != nil {
		return
	}

	nextMonth := jalali.JalaliDate{Year: year, Month: month + 1, Day: 1}
	if month == 12 {
		nextMonth = jalali.JalaliDate{Year: year + 1, Month: 1, Day: 1}
	}
	var next jalali.GregorianDate
	next, err = jalali.ToGregorian(nextMonth)
	if err != nil {
		return
	}

	from, err = s.clock.Instant(first, 0, 0)
	if err != nil {
		return
	}
	to, err = s.clock.Instant(next, 0, 0)
	return
}

// MonthlyReport implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) MonthlyReport(ctx context.Context, req timesheet.MonthlyReportRequest) (timesheet.MonthlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.MonthlyReportResponse{}, err
	}

	from, to, first, last, err := s.monthWindow(req.Year, req.Month)
	if err != nil {
		return timesheet.MonthlyReportResponse{}, fmt.Errorf("failed to resolve report period: %w", err)
	}

	attendance, err := s.TimesheetRepository.ListAttendance(ctx, from, to)
	if err != nil {
		return timesheet.MonthlyReportResponse{}, fmt.Errorf("failed to list attendance rows: %w", err)
	}

	leaves, err := s.TimesheetRepository.ListHourlyLeaves(ctx, from, to)
	if err != nil {
		return timesheet.MonthlyReportResponse{}, fmt.Errorf("failed to list hourly leave rows: %w", err)
	}

	aggregates, skipped := Rollup(attendance, leaves, req.Standards(), s.clock)

	people := make([]timesheet.PersonAggregateResponse, 0, len(aggregates))
	for _, agg := range aggregates {
		people = append(people, timesheet.PersonAggregateResponse{
			PersonnelCode:          agg.PersonnelCode,
			FullName:               agg.FullName,
			DistinctWorkingDays:    agg.DistinctWorkingDays,
			TotalLateMinutes:       agg.TotalLateMinutes,
			TotalEarlyLeaveMinutes: agg.TotalEarlyLeaveMinutes,
			TotalShortLeaveMinutes: agg.TotalShortLeaveMinutes,
			TotalShortLeaveLabel:   timesheet.FormatMinutes(agg.TotalShortLeaveMinutes),
			OpenLeaveIntervals:     agg.OpenLeaveIntervals,
		})
	}

	return timesheet.MonthlyReportResponse{
		PeriodYear:     req.Year,
		PeriodMonth:    req.Month,
		PeriodStart:    first.String(),
		PeriodEnd:      last.String(),
		JalaliPeriod:   timesheet.PersianDigits(fmt.Sprintf("%04d/%02d", req.Year, req.Month)),
		EntryStandard:  req.EntryStandard,
		ExitStandard:   req.ExitStandard,
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
		People:         people,
		SkippedRecords: mapSkipped(skipped),
	}, nil
}

// DailyReport implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DailyReport(ctx context.Context, req timesheet.DailyReportRequest) (timesheet.DailyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.DailyReportResponse{}, err
	}

	date := jalali.JalaliDate{Year: req.Year, Month: req.Month, Day: req.Day}
	gregorian, err := jalali.ToGregorian(date)
	if err != nil {
		return timesheet.DailyReportResponse{}, fmt.Errorf("failed to resolve report date: %w", err)
	}

	from, err := s.clock.Instant(gregorian, 0, 0)
	if err != nil {
		return timesheet.DailyReportResponse{}, fmt.Errorf("failed to resolve report date: %w", err)
	}
	// The offset is fixed, so the next local midnight is exactly 24h away.
	to := from.Add(24 * time.Hour)

	attendance, err := s.TimesheetRepository.ListAttendance(ctx, from, to)
	if err != nil {
		return timesheet.DailyReportResponse{}, fmt.Errorf("failed to list attendance rows: %w", err)
	}

	leaves, err := s.TimesheetRepository.ListHourlyLeaves(ctx, from, to)
	if err != nil {
		return timesheet.DailyReportResponse{}, fmt.Errorf("failed to list hourly leave rows: %w", err)
	}

	std := req.Standards()

	attRows := make([]timesheet.AttendanceRowResponse, 0, len(attendance))
	for _, rec := range attendance {
		row := timesheet.AttendanceRowResponse{
			ID:            rec.ID,
			PersonnelCode: rec.PersonnelCode,
			FullName:      rec.FullName,
			EntryTime:     s.localClock(rec.Interval.Start),
			ExitTime:      s.localClock(rec.Interval.End),
			State:         string(rec.Interval.Classify()),
		}
		switch minutes, err := rec.Interval.Minutes(); {
		case err == nil:
			label := timesheet.FormatMinutes(minutes)
			row.WorkMinutes = &minutes
			row.WorkLabel = &label
			row.LateMinutes = timesheet.Lateness(rec.Interval.Start, std.Entry, s.clock)
			row.EarlyLeaveMinutes = timesheet.Earliness(rec.Interval.End, std.Exit, s.clock)
		case errors.Is(err, timesheet.ErrNegativeDuration):
			reason := "exit stamp precedes entry stamp"
			row.Error = &reason
		default:
			row.LateMinutes = timesheet.Lateness(rec.Interval.Start, std.Entry, s.clock)
			row.EarlyLeaveMinutes = timesheet.Earliness(rec.Interval.End, std.Exit, s.clock)
		}
		attRows = append(attRows, row)
	}

	leaveRows := make([]timesheet.HourlyLeaveRowResponse, 0, len(leaves))
	for _, rec := range leaves {
		row := timesheet.HourlyLeaveRowResponse{
			ID:            rec.ID,
			PersonnelCode: rec.PersonnelCode,
			FullName:      rec.FullName,
			Reason:        rec.Reason,
			ExitTime:      s.localClock(rec.Interval.Start),
			ReturnTime:    s.localClock(rec.Interval.End),
			State:         string(rec.Interval.Classify()),
		}
		switch minutes, err := rec.Interval.Minutes(); {
		case err == nil:
			label := timesheet.FormatMinutes(minutes)
			row.LeaveMinutes = &minutes
			row.LeaveLabel = &label
		case errors.Is(err, timesheet.ErrNegativeDuration):
			reason := "return stamp precedes exit stamp"
			row.Error = &reason
		}
		leaveRows = append(leaveRows, row)
	}

	return timesheet.DailyReportResponse{
		JalaliDate:    timesheet.PersianDigits(date.String()),
		GregorianDate: gregorian.String(),
		EntryStandard: req.EntryStandard,
		ExitStandard:  req.ExitStandard,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
		Attendance:    attRows,
		HourlyLeaves:  leaveRows,
	}, nil
}

// localClock renders an instant as a local HH:MM stamp.
func (s *TimesheetServiceImpl) localClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	_, hour, minute := s.clock.LocalParts(*t)
	formatted := fmt.Sprintf("%02d:%02d", hour, minute)
	return &formatted
}

func mapSkipped(skipped []timesheet.SkippedRecord) []timesheet.SkippedRecordResponse {
	out := make([]timesheet.SkippedRecordResponse, 0, len(skipped))
	for _, s := range skipped {
		out = append(out, timesheet.SkippedRecordResponse{
			RecordID:      s.RecordID,
			PersonnelCode: s.PersonnelCode,
			Reason:        s.Reason,
		})
	}
	return out
}
