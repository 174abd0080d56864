package tenure

import (
	"fmt"
	"strings"
)

// Duration is an employment duration in calendar months plus leftover days.
type Duration struct {
	Months int `json:"months"`
	Days   int `json:"days"`
}

// Add sums two durations field-wise. Days are not normalized here; the
// 30-day carry is display-only and happens in Format.
func (d Duration) Add(other Duration) Duration {
	return Duration{Months: d.Months + other.Months, Days: d.Days + other.Days}
}

// IsZero reports whether both fields are zero.
func (d Duration) IsZero() bool { return d.Months == 0 && d.Days == 0 }

// Format renders the duration as e.g. "3 MONTHS 12 DAYS" or "15 DAYS".
// Days of 30 or more carry into months at a flat 30 days per month; that is
// a display approximation, not calendar-exact arithmetic.
func (d Duration) Format() string {
	months := d.Months
	days := d.Days

	if days >= 30 {
		months += days / 30
		days = days % 30
	}

	if months > 0 {
		var b strings.Builder
		fmt.Fprintf(&b, "%d MONTH%s", months, plural(months))
		if days > 0 {
			fmt.Fprintf(&b, " %d DAY%s", days, plural(days))
		}
		return b.String()
	}
	return fmt.Sprintf("%d DAY%s", days, plural(days))
}

// FormatDuration is the free-function form of Duration.Format.
func FormatDuration(d Duration) string { return d.Format() }

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "S"
}
