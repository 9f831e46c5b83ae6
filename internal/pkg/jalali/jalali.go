// Package jalali converts between the Jalali (Persian solar) calendar and
// the Gregorian calendar without lookup tables or a timezone database.
// User-facing dates in the system are Jalali; storage and wire formats are
// Gregorian.
package jalali

import (
	"errors"
	"fmt"
)

// ErrInvalidDate is returned for calendar components outside their valid
// range. Out-of-range input is a caller bug and is never clamped.
var ErrInvalidDate = errors.New("invalid calendar date")

// JalaliDate is a calendar day in the Persian solar calendar.
type JalaliDate struct {
	Year  int
	Month int
	Day   int
}

// GregorianDate is a calendar day in the Gregorian calendar.
type GregorianDate struct {
	Year  int
	Month int
	Day   int
}

func (d JalaliDate) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

var jalaliMonthNames = [...]string{
	"فروردین", "اردیبهشت", "خرداد",
	"تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر",
	"دی", "بهمن", "اسفند",
}

// MonthName returns the Persian name of a Jalali month, or "" when month is
// out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return jalaliMonthNames[month-1]
}

func (d GregorianDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Validate checks year, month and day ranges, including the 29/30-day
// boundary of the last Jalali month in non-leap/leap years.
func (d JalaliDate) Validate() error {
	if d.Year < 1 {
		return fmt.Errorf("%w: jalali year %d", ErrInvalidDate, d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: jalali month %d", ErrInvalidDate, d.Month)
	}
	if d.Day < 1 || d.Day > DaysInJalaliMonth(d.Year, d.Month) {
		return fmt.Errorf("%w: jalali day %d in %04d/%02d", ErrInvalidDate, d.Day, d.Year, d.Month)
	}
	return nil
}

// Validate checks year, month and day ranges under standard Gregorian rules.
func (d GregorianDate) Validate() error {
	if d.Year < 1 {
		return fmt.Errorf("%w: gregorian year %d", ErrInvalidDate, d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: gregorian month %d", ErrInvalidDate, d.Month)
	}
	if d.Day < 1 || d.Day > DaysInGregorianMonth(d.Year, d.Month) {
		return fmt.Errorf("%w: gregorian day %d in %04d-%02d", ErrInvalidDate, d.Day, d.Year, d.Month)
	}
	return nil
}

// Before reports whether d falls on an earlier day than u.
func (d JalaliDate) Before(u JalaliDate) bool {
	if d.Year != u.Year {
		return d.Year < u.Year
	}
	if d.Month != u.Month {
		return d.Month < u.Month
	}
	return d.Day < u.Day
}

// Before reports whether d falls on an earlier day than u.
func (d GregorianDate) Before(u GregorianDate) bool {
	if d.Year != u.Year {
		return d.Year < u.Year
	}
	if d.Month != u.Month {
		return d.Month < u.Month
	}
	return d.Day < u.Day
}

// leapDaysBefore counts Jalali leap days accumulated before epoch-shifted
// year jy, using the 33-year cycle (8 leap years per cycle).
func leapDaysBefore(jy int) int {
	return (jy/33)*8 + (jy%33+3)/4
}

// IsJalaliLeapYear reports whether the Jalali year has 366 days, i.e. its
// last month has 30 days instead of 29.
func IsJalaliLeapYear(year int) bool {
	jy := year + 1595
	return leapDaysBefore(jy+1)-leapDaysBefore(jy) == 1
}

// IsGregorianLeapYear applies the 400/100/4 rule.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInJalaliMonth returns 31 for months 1-6, 30 for months 7-11, and 29
// or 30 for month 12 depending on the leap year. Returns 0 for an invalid
// month.
func DaysInJalaliMonth(year, month int) int {
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if IsJalaliLeapYear(year) {
			return 30
		}
		return 29
	}
	return 0
}

// DaysInGregorianMonth returns the month length, with February at 29 days
// in leap years. Returns 0 for an invalid month.
func DaysInGregorianMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsGregorianLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// ToGregorian converts a Jalali calendar day to its Gregorian equivalent.
// The input is validated first; no silent repair.
func ToGregorian(d JalaliDate) (GregorianDate, error) {
	if err := d.Validate(); err != nil {
		return GregorianDate{}, err
	}

	jy := d.Year + 1595
	days := -355668 + 365*jy + (jy/33)*8 + (jy%33+3)/4 + d.Day
	if d.Month < 7 {
		days += (d.Month - 1) * 31
	} else {
		days += (d.Month-7)*30 + 186
	}

	gy := 400 * (days / 146097)
	days %= 146097
	if days > 36524 {
		days--
		gy += 100 * (days / 36524)
		days %= 36524
		if days >= 365 {
			days++
		}
	}
	gy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	gd := days + 1
	gm := 1
	for gm <= 12 && gd > DaysInGregorianMonth(gy, gm) {
		gd -= DaysInGregorianMonth(gy, gm)
		gm++
	}

	return GregorianDate{Year: gy, Month: gm, Day: gd}, nil
}

var gregorianDayOfYear = [...]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// ToJalali converts a Gregorian calendar day to its Jalali equivalent.
// Inverse of ToGregorian over the supported range.
func ToJalali(d GregorianDate) (JalaliDate, error) {
	if err := d.Validate(); err != nil {
		return JalaliDate{}, err
	}

	gy2 := d.Year
	if d.Month > 2 {
		gy2 = d.Year + 1
	}
	days := 355666 + 365*d.Year + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400 + d.Day + gregorianDayOfYear[d.Month]

	jy := -1595 + 33*(days/12053)
	days %= 12053
	jy += 4 * (days / 1461)
	days %= 1461
	if days > 365 {
		jy += (days - 1) / 365
		days = (days - 1) % 365
	}

	var jm, jd int
	if days < 186 {
		jm = 1 + days/31
		jd = 1 + days%31
	} else {
		jm = 7 + (days-186)/30
		jd = 1 + (days-186)%30
	}

	return JalaliDate{Year: jy, Month: jm, Day: jd}, nil
}
