package timesheet

import (
	"testing"
	"time"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/tehran"
)

// 06:00 Tehran on 2024-03-20 expressed in UTC.
var sixTehran = time.Date(2024, 3, 20, 2, 30, 0, 0, time.UTC)

func TestLateness(t *testing.T) {
	std := StandardTime{Hour: 6, Minute: 0}
	cases := []struct {
		name   string
		actual *time.Time
		want   int
	}{
		{"12 minutes late", tp(sixTehran.Add(12 * time.Minute)), 12},
		{"exactly on time", tp(sixTehran), 0},
		{"5 minutes early is not negative lateness", tp(sixTehran.Add(-5 * time.Minute)), 0},
		{"missing stamp contributes nothing", nil, 0},
	}
	for _, c := range cases {
		if got := Lateness(c.actual, std, tehran.Tehran); got != c.want {
			t.Errorf("%s: Lateness() = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestEarliness(t *testing.T) {
	std := StandardTime{Hour: 14, Minute: 0}
	twoTehran := time.Date(2024, 3, 20, 10, 30, 0, 0, time.UTC)
	cases := []struct {
		name   string
		actual *time.Time
		want   int
	}{
		{"left 20 minutes early", tp(twoTehran.Add(-20 * time.Minute)), 20},
		{"left on time", tp(twoTehran), 0},
		{"overstaying is not negative earliness", tp(twoTehran.Add(40 * time.Minute)), 0},
		{"missing stamp contributes nothing", nil, 0},
	}
	for _, c := range cases {
		if got := Earliness(c.actual, std, tehran.Tehran); got != c.want {
			t.Errorf("%s: Earliness() = %d, want %d", c.name, got, c.want)
		}
	}
}

// The reference is anchored to the same local day as the actual stamp, so a
// stamp just after local midnight measures against that day's standard, not
// the previous UTC day's.
func TestDeviationAnchorsToLocalDay(t *testing.T) {
	std := StandardTime{Hour: 6, Minute: 0}
	// 21:00 UTC = 00:30 local, next local day.
	actual := time.Date(2024, 3, 19, 21, 0, 0, 0, time.UTC)
	if got := Lateness(&actual, std, tehran.Tehran); got != 0 {
		t.Errorf("Lateness just after local midnight = %d, want 0", got)
	}
	if got := Earliness(&actual, std, tehran.Tehran); got != 330 {
		t.Errorf("Earliness just after local midnight = %d, want 330", got)
	}
}
