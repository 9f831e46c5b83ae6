package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/domain/timesheet"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/jalali"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/tehran"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTimesheetRepo struct {
	attendance []timesheet.AttendanceRecord
	leaves     []timesheet.HourlyLeaveRecord
	from, to   time.Time
}

func (r *stubTimesheetRepo) ListAttendance(_ context.Context, from, to time.Time) ([]timesheet.AttendanceRecord, error) {
	r.from, r.to = from, to
	return r.attendance, nil
}

func (r *stubTimesheetRepo) ListHourlyLeaves(_ context.Context, from, to time.Time) ([]timesheet.HourlyLeaveRecord, error) {
	return r.leaves, nil
}

func TestMonthlyReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	name := "رضا محمدی"
	repo := &stubTimesheetRepo{
		attendance: []timesheet.AttendanceRecord{
			{ID: "a1", PersonnelCode: "4021", FullName: &name, Interval: timesheet.Interval{
				Start: at(t, day1, 6, 10),
				End:   at(t, day1, 14, 5),
			}},
		},
		leaves: []timesheet.HourlyLeaveRecord{
			{ID: "l1", PersonnelCode: "4021", FullName: &name, Reason: "پزشکی", Interval: timesheet.Interval{
				Start: at(t, day1, 11, 0),
				End:   at(t, day1, 11, 30),
			}},
		},
	}
	svc := NewTimesheetService(repo, tehran.Tehran)

	result, err := svc.MonthlyReport(ctx, timesheet.MonthlyReportRequest{
		Year:          1403,
		Month:         1,
		EntryStandard: "06:00",
		ExitStandard:  "14:00",
	})
	require.NoError(t, err)

	// The repository window covers the whole Jalali month, local
	// midnight to local midnight.
	wantFrom, err := tehran.Tehran.Instant(jalali.GregorianDate{Year: 2024, Month: 3, Day: 20}, 0, 0)
	require.NoError(t, err)
	wantTo, err := tehran.Tehran.Instant(jalali.GregorianDate{Year: 2024, Month: 4, Day: 20}, 0, 0)
	require.NoError(t, err)
	assert.True(t, repo.from.Equal(wantFrom), "window start = %v, want %v", repo.from, wantFrom)
	assert.True(t, repo.to.Equal(wantTo), "window end = %v, want %v", repo.to, wantTo)

	assert.Equal(t, "2024-03-20", result.PeriodStart)
	assert.Equal(t, "2024-04-19", result.PeriodEnd)
	assert.Equal(t, "۱۴۰۳/۰۱", result.JalaliPeriod)

	require.Len(t, result.People, 1)
	person := result.People[0]
	assert.Equal(t, "4021", person.PersonnelCode)
	require.NotNil(t, person.FullName)
	assert.Equal(t, name, *person.FullName)
	assert.Equal(t, 1, person.DistinctWorkingDays)
	assert.Equal(t, 10, person.TotalLateMinutes)
	assert.Equal(t, 0, person.TotalEarlyLeaveMinutes)
	assert.Equal(t, 30, person.TotalShortLeaveMinutes)
	assert.Equal(t, "۰ ساعت و ۳۰ دقیقه", person.TotalShortLeaveLabel)
	assert.Empty(t, result.SkippedRecords)
}

func TestMonthlyReportValidation(t *testing.T) {
	t.Parallel()
	svc := NewTimesheetService(&stubTimesheetRepo{}, tehran.Tehran)

	_, err := svc.MonthlyReport(context.Background(), timesheet.MonthlyReportRequest{
		Year:          1403,
		Month:         13,
		EntryStandard: "6 am",
		ExitStandard:  "14:00",
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "month")
	assert.Contains(t, details, "entry_standard")
}

func TestDailyReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &stubTimesheetRepo{
		attendance: []timesheet.AttendanceRecord{
			{ID: "a1", PersonnelCode: "4021", Interval: timesheet.Interval{
				Start: at(t, day1, 6, 10),
				End:   at(t, day1, 14, 5),
			}},
			{ID: "a2", PersonnelCode: "5100", Interval: timesheet.Interval{
				Start: at(t, day1, 7, 0),
			}},
			{ID: "a3", PersonnelCode: "6200", Interval: timesheet.Interval{
				Start: at(t, day1, 14, 0),
				End:   at(t, day1, 6, 0),
			}},
		},
		leaves: []timesheet.HourlyLeaveRecord{
			{ID: "l1", PersonnelCode: "4021", Reason: "اداری", Interval: timesheet.Interval{
				Start: at(t, day1, 10, 0),
				End:   at(t, day1, 10, 45),
			}},
		},
	}
	svc := NewTimesheetService(repo, tehran.Tehran)

	result, err := svc.DailyReport(ctx, timesheet.DailyReportRequest{
		Year:          1403,
		Month:         1,
		Day:           1,
		EntryStandard: "06:00",
		ExitStandard:  "14:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "۱۴۰۳/۰۱/۰۱", result.JalaliDate)
	assert.Equal(t, "2024-03-20", result.GregorianDate)

	require.Len(t, result.Attendance, 3)

	complete := result.Attendance[0]
	assert.Equal(t, "complete", complete.State)
	require.NotNil(t, complete.EntryTime)
	assert.Equal(t, "06:10", *complete.EntryTime)
	require.NotNil(t, complete.ExitTime)
	assert.Equal(t, "14:05", *complete.ExitTime)
	require.NotNil(t, complete.WorkMinutes)
	assert.Equal(t, 475, *complete.WorkMinutes)
	assert.Equal(t, 10, complete.LateMinutes)
	assert.Equal(t, 0, complete.EarlyLeaveMinutes)

	open := result.Attendance[1]
	assert.Equal(t, "open_exit", open.State)
	assert.Nil(t, open.WorkMinutes)
	assert.Equal(t, 60, open.LateMinutes)

	reversed := result.Attendance[2]
	require.NotNil(t, reversed.Error)
	assert.Equal(t, "exit stamp precedes entry stamp", *reversed.Error)
	assert.Nil(t, reversed.WorkMinutes)

	require.Len(t, result.HourlyLeaves, 1)
	leave := result.HourlyLeaves[0]
	assert.Equal(t, "complete", leave.State)
	require.NotNil(t, leave.LeaveMinutes)
	assert.Equal(t, 45, *leave.LeaveMinutes)
}
