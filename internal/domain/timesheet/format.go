package timesheet

import (
	"fmt"
	"strings"
)

// SplitHours decomposes a non-negative minute count into whole hours and
// the minute remainder.
func SplitHours(minutes int) (hours, remainder int) {
	return minutes / 60, minutes % 60
}

var persianDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// PersianDigits rewrites ASCII digits in s as Persian-Arabic numerals.
func PersianDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(persianDigits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatMinutes renders a non-negative minute count as a Persian
// "H ساعت و M دقیقه" label for report cells.
func FormatMinutes(minutes int) string {
	hours, remainder := SplitHours(minutes)
	return PersianDigits(fmt.Sprintf("%d ساعت و %d دقیقه", hours, remainder))
}
