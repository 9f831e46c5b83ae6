package timesheet

import (
	"math"
	"time"

	"github.com/hamkaran-hr/hozoor-backend-go/internal/pkg/tehran"
)

// reference builds the instant of the standard clock time on the same local
// calendar day as actual. The date comes from LocalParts, so it is valid by
// construction and the error path is unreachable.
func reference(actual time.Time, std StandardTime, clk tehran.Clock) time.Time {
	date, _, _ := clk.LocalParts(actual)
	ref, _ := clk.Instant(date, std.Hour, std.Minute)
	return ref
}

// Lateness returns how many minutes actual falls after the standard time on
// the same local day. Arriving early is never negative lateness; a missing
// stamp contributes zero, it is tracked as an anomaly elsewhere.
func Lateness(actual *time.Time, std StandardTime, clk tehran.Clock) int {
	if actual == nil {
		return 0
	}
	diff := actual.Sub(reference(*actual, std, clk)).Minutes()
	return max(0, int(math.Round(diff)))
}

// Earliness returns how many minutes actual falls before the standard time
// on the same local day. Symmetric to Lateness, used for early departure.
func Earliness(actual *time.Time, std StandardTime, clk tehran.Clock) int {
	if actual == nil {
		return 0
	}
	diff := reference(*actual, std, clk).Sub(*actual).Minutes()
	return max(0, int(math.Round(diff)))
}
