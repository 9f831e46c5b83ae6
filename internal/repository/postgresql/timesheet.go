package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/domain/timesheet"
	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

// ListAttendance implements timesheet.TimesheetRepository. A row belongs to
// the window when its earliest recorded stamp does; rows with both stamps
// missing never match and are handled upstream as empty intervals anyway.
func (r *timesheetRepository) ListAttendance(ctx context.Context, from, to time.Time) ([]timesheet.AttendanceRecord, error) {
	q := r.db.Querier()

	query := `
		SELECT al.id, al.personnel_code, p.full_name, al.entry_time, al.exit_time
		FROM attendance_logs al
		LEFT JOIN personnel p ON p.personnel_code = al.personnel_code
		WHERE COALESCE(al.entry_time, al.exit_time) >= $1
		  AND COALESCE(al.entry_time, al.exit_time) < $2
		ORDER BY COALESCE(al.entry_time, al.exit_time), al.id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var records []timesheet.AttendanceRecord

	for rows.Next() {
		var rec timesheet.AttendanceRecord

		err := rows.Scan(
			&rec.ID, &rec.PersonnelCode, &rec.FullName,
			&rec.Interval.Start, &rec.Interval.End,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance logs: %w", err)
	}

	return records, nil
}

// ListHourlyLeaves implements timesheet.TimesheetRepository. The exit stamp
// opens the leave and the entry stamp closes it, so exit_time scans into
// the interval start.
func (r *timesheetRepository) ListHourlyLeaves(ctx context.Context, from, to time.Time) ([]timesheet.HourlyLeaveRecord, error) {
	q := r.db.Querier()

	query := `
		SELECT hl.id, hl.personnel_code, p.full_name, hl.reason, hl.exit_time, hl.entry_time
		FROM hourly_leaves hl
		LEFT JOIN personnel p ON p.personnel_code = hl.personnel_code
		WHERE COALESCE(hl.exit_time, hl.entry_time) >= $1
		  AND COALESCE(hl.exit_time, hl.entry_time) < $2
		ORDER BY COALESCE(hl.exit_time, hl.entry_time), hl.id
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list hourly leaves: %w", err)
	}
	defer rows.Close()

	var records []timesheet.HourlyLeaveRecord

	for rows.Next() {
		var rec timesheet.HourlyLeaveRecord

		err := rows.Scan(
			&rec.ID, &rec.PersonnelCode, &rec.FullName, &rec.Reason,
			&rec.Interval.Start, &rec.Interval.End,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hourly leave: %w", err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hourly leaves: %w", err)
	}

	return records, nil
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}
