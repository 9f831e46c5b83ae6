package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidPersonnelCode(t *testing.T) {
	valid := []string{"100", "4021", "9876543210"}
	invalid := []string{"12", "98765432101", "40-21", "abcd", ""}
	for _, code := range valid {
		if !IsValidPersonnelCode(code) {
			t.Errorf("IsValidPersonnelCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidPersonnelCode(code) {
			t.Errorf("IsValidPersonnelCode(%q) = true, want false", code)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		input  string
		hour   int
		minute int
		ok     bool
	}{
		{"06:00", 6, 0, true},
		{"14:05", 14, 5, true},
		{"23:59", 23, 59, true},
		{"00:00", 0, 0, true},
		{"24:00", 0, 0, false},
		{"12:60", 0, 0, false},
		{"9:30", 0, 0, false},
		{"09.30", 0, 0, false},
		{"ab:cd", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, c := range cases {
		hour, minute, ok := ParseClock(c.input)
		if ok != c.ok || hour != c.hour || minute != c.minute {
			t.Errorf("ParseClock(%q) = (%d, %d, %v), want (%d, %d, %v)",
				c.input, hour, minute, ok, c.hour, c.minute, c.ok)
		}
	}
}

