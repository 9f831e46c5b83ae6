// Package tehran bridges civil date+time in Tehran local time and absolute
// UTC instants. Iran does not observe daylight saving, so the offset is a
// fixed constant and no host timezone database is ever consulted; the same
// input yields the same instant on every deployment.
package tehran

import (
	"errors"
	"fmt"
	"time"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/jalali"
)

// ErrInvalidTime is returned when an hour or minute is out of range.
var ErrInvalidTime = errors.New("invalid time of day")

// OffsetMinutes is the fixed Iran Standard Time offset: UTC+03:30.
const OffsetMinutes = 210

// Clock resolves civil times at a fixed UTC offset. The zero value is UTC;
// use Tehran for Iran Standard Time.
type Clock struct {
	OffsetMinutes int
}

// Tehran is the production clock policy.
var Tehran = Clock{OffsetMinutes: OffsetMinutes}

func (c Clock) offset() time.Duration {
	return time.Duration(c.OffsetMinutes) * time.Minute
}

// Instant builds the UTC instant for the given local calendar day and
// clock time.
func (c Clock) Instant(d jalali.GregorianDate, hour, minute int) (time.Time, error) {
	if err := d.Validate(); err != nil {
		return time.Time{}, err
	}
	if hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("%w: hour %d", ErrInvalidTime, hour)
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: minute %d", ErrInvalidTime, minute)
	}
	local := time.Date(d.Year, time.Month(d.Month), d.Day, hour, minute, 0, 0, time.UTC)
	return local.Add(-c.offset()), nil
}

// InstantJalali is Instant for a Jalali calendar day.
func (c Clock) InstantJalali(d jalali.JalaliDate, hour, minute int) (time.Time, error) {
	gd, err := jalali.ToGregorian(d)
	if err != nil {
		return time.Time{}, err
	}
	return c.Instant(gd, hour, minute)
}

// LocalParts extracts the local calendar day and clock time of an instant.
func (c Clock) LocalParts(t time.Time) (jalali.GregorianDate, int, int) {
	local := t.UTC().Add(c.offset())
	d := jalali.GregorianDate{Year: local.Year(), Month: int(local.Month()), Day: local.Day()}
	return d, local.Hour(), local.Minute()
}

// LocalDate returns the local calendar day an instant falls on.
func (c Clock) LocalDate(t time.Time) jalali.GregorianDate {
	d, _, _ := c.LocalParts(t)
	return d
}
