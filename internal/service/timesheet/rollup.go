package timesheet

import (
	"errors"
	"sort"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/domain/timesheet"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/jalali"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/tehran"
)

// Rollup folds one period's attendance and hourly-leave rows into
// per-person totals. It carries no state between calls: the seen-day sets
// live and die inside one invocation, so running it twice on the same input
// yields identical output. Malformed rows never abort the fold; they are
// excluded from the sums and returned as skipped records so the caller can
// surface them next to the totals.
func Rollup(
	attendance []timesheet.AttendanceRecord,
	leaves []timesheet.HourlyLeaveRecord,
	std timesheet.Standards,
	clk tehran.Clock,
) ([]timesheet.PersonAggregate, []timesheet.SkippedRecord) {
	aggregates := make(map[string]*timesheet.PersonAggregate)
	seenDays := make(map[string]map[jalali.GregorianDate]struct{})
	skipped := make([]timesheet.SkippedRecord, 0)

	person := func(code string, name *string) *timesheet.PersonAggregate {
		agg, ok := aggregates[code]
		if !ok {
			agg = &timesheet.PersonAggregate{PersonnelCode: code}
			aggregates[code] = agg
			seenDays[code] = make(map[jalali.GregorianDate]struct{})
		}
		if agg.FullName == nil && name != nil {
			agg.FullName = name
		}
		return agg
	}

	for _, rec := range attendance {
		agg := person(rec.PersonnelCode, rec.FullName)

		anchor := rec.Interval.Start
		if anchor == nil {
			anchor = rec.Interval.End
		}
		if anchor != nil {
			day := clk.LocalDate(*anchor)
			if _, ok := seenDays[rec.PersonnelCode][day]; !ok {
				seenDays[rec.PersonnelCode][day] = struct{}{}
				agg.DistinctWorkingDays++
			}
		}

		if rec.Interval.Classify() == timesheet.StateComplete {
			if _, err := rec.Interval.Minutes(); errors.Is(err, timesheet.ErrNegativeDuration) {
				skipped = append(skipped, timesheet.SkippedRecord{
					RecordID:      rec.ID,
					PersonnelCode: rec.PersonnelCode,
					Reason:        "exit stamp precedes entry stamp",
				})
				continue
			}
		}

		agg.TotalLateMinutes += timesheet.Lateness(rec.Interval.Start, std.Entry, clk)
		agg.TotalEarlyLeaveMinutes += timesheet.Earliness(rec.Interval.End, std.Exit, clk)
	}

	for _, rec := range leaves {
		agg := person(rec.PersonnelCode, rec.FullName)

		switch rec.Interval.Classify() {
		case timesheet.StateComplete:
			minutes, err := rec.Interval.Minutes()
			if err != nil {
				skipped = append(skipped, timesheet.SkippedRecord{
					RecordID:      rec.ID,
					PersonnelCode: rec.PersonnelCode,
					Reason:        "return stamp precedes exit stamp",
				})
				continue
			}
			agg.TotalShortLeaveMinutes += minutes
		case timesheet.StateOpenExit, timesheet.StateOpenEntry:
			agg.OpenLeaveIntervals++
		case timesheet.StateEmpty:
			// nothing to account
		}
	}

	out := make([]timesheet.PersonAggregate, 0, len(aggregates))
	for _, agg := range aggregates {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PersonnelCode < out[j].PersonnelCode
	})
	return out, skipped
}
