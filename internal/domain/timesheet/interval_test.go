package timesheet

import (
	"errors"
	"testing"
	"time"
)

func tp(t time.Time) *time.Time { return &t }

var base = time.Date(2024, 3, 20, 2, 30, 0, 0, time.UTC)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		iv   Interval
		want State
	}{
		{"both stamps", Interval{Start: tp(base), End: tp(base.Add(time.Hour))}, StateComplete},
		{"start only", Interval{Start: tp(base)}, StateOpenExit},
		{"end only", Interval{End: tp(base)}, StateOpenEntry},
		{"no stamps", Interval{}, StateEmpty},
	}
	for _, c := range cases {
		if got := c.iv.Classify(); got != c.want {
			t.Errorf("%s: Classify() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestMinutes(t *testing.T) {
	iv := Interval{Start: tp(base), End: tp(base.Add(90 * time.Minute))}
	got, err := iv.Minutes()
	if err != nil {
		t.Fatalf("Minutes() returned error: %v", err)
	}
	if got != 90 {
		t.Errorf("Minutes() = %d, want 90", got)
	}

	// Sub-minute remainders round to the nearest minute.
	iv = Interval{Start: tp(base), End: tp(base.Add(90*time.Minute + 31*time.Second))}
	got, err = iv.Minutes()
	if err != nil {
		t.Fatalf("Minutes() returned error: %v", err)
	}
	if got != 91 {
		t.Errorf("Minutes() with 31s remainder = %d, want 91", got)
	}
}

func TestMinutesOpenInterval(t *testing.T) {
	for _, iv := range []Interval{{}, {Start: tp(base)}, {End: tp(base)}} {
		if _, err := iv.Minutes(); !errors.Is(err, ErrIntervalOpen) {
			t.Errorf("Minutes() on %q interval: error = %v, want ErrIntervalOpen", iv.Classify(), err)
		}
	}
}

func TestMinutesNegativeDuration(t *testing.T) {
	// A reversed stamp pair is corrupted input, reported as a tagged error
	// rather than a negative number.
	iv := Interval{Start: tp(base), End: tp(base.Add(-10 * time.Minute))}
	minutes, err := iv.Minutes()
	if !errors.Is(err, ErrNegativeDuration) {
		t.Fatalf("Minutes() error = %v, want ErrNegativeDuration", err)
	}
	if minutes != 0 {
		t.Errorf("Minutes() = %d alongside error, want 0", minutes)
	}
}

func TestSplitHours(t *testing.T) {
	cases := []struct {
		minutes, hours, remainder int
	}{
		{0, 0, 0},
		{59, 0, 59},
		{60, 1, 0},
		{135, 2, 15},
	}
	for _, c := range cases {
		hours, remainder := SplitHours(c.minutes)
		if hours != c.hours || remainder != c.remainder {
			t.Errorf("SplitHours(%d) = (%d, %d), want (%d, %d)",
				c.minutes, hours, remainder, c.hours, c.remainder)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{135, "۲ ساعت و ۱۵ دقیقه"},
		{30, "۰ ساعت و ۳۰ دقیقه"},
		{60, "۱ ساعت و ۰ دقیقه"},
	}
	for _, c := range cases {
		if got := FormatMinutes(c.minutes); got != c.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestPersianDigits(t *testing.T) {
	if got := PersianDigits("1403/01/01"); got != "۱۴۰۳/۰۱/۰۱" {
		t.Errorf("PersianDigits(\"1403/01/01\") = %q", got)
	}
}
