// Package tenure computes participant ages and employment durations from
// the raw date strings stored on roster records.
//
// Historical rows carry missing and malformed dates, so every function here
// degrades to a sentinel or zero value instead of returning an error. The
// view layer must never crash on bad legacy data.
package tenure

import (
	"strings"
	"time"
)

// dateLayouts covers the formats that show up in form input and imported
// spreadsheet cells, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses a roster date string. The boolean is false when the
// input is empty or matches none of the known layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return midnight(t), true
		}
	}
	return time.Time{}, false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// Age returns the whole-year age at now, subtracting one when the birthday
// has not yet occurred this year. The boolean is false when birthDate is
// missing or unparseable.
func Age(birthDate string, now time.Time) (int, bool) {
	birth, ok := ParseDate(birthDate)
	if !ok {
		return 0, false
	}
	now = midnight(now)
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age, true
}

// MonthsBetween returns the whole calendar months between start and end,
// floored at 1: a stint always counts as having served at least one month,
// including when either date is missing or unparseable. This is the single
// minimum-duration policy for the whole system.
func MonthsBetween(start, end string) int {
	s, okS := ParseDate(start)
	e, okE := ParseDate(end)
	if !okS || !okE {
		return 1
	}
	months := wholeMonths(s, e)
	if months < 1 {
		return 1
	}
	return months
}

// MonthsAndDays returns the full calendar months between start and end plus
// the leftover whole days. Missing or invalid input yields the zero
// Duration. Days is always within [0, 31); both fields are floored at zero.
func MonthsAndDays(start, end string) Duration {
	s, okS := ParseDate(start)
	e, okE := ParseDate(end)
	if !okS || !okE {
		return Duration{}
	}

	months := wholeMonths(s, e)
	cursor := s.AddDate(0, months, 0)
	days := daysBetween(cursor, e)

	// Month-end normalization (e.g. Jan 31 + 1 month) can overshoot the
	// cursor past end; walk months back until the leftover is non-negative.
	for days < 0 && months > 0 {
		months--
		cursor = s.AddDate(0, months, 0)
		days = daysBetween(cursor, e)
	}

	if months < 0 {
		months = 0
	}
	if days < 0 {
		days = 0
	}
	return Duration{Months: months, Days: days}
}

// wholeMonths is the floor of the calendar-month distance from s to e:
// the largest n >= 0 with s advanced by n months not after e. Negative
// ranges yield 0.
func wholeMonths(s, e time.Time) int {
	if e.Before(s) {
		return 0
	}
	months := (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month())
	for months > 0 && s.AddDate(0, months, 0).After(e) {
		months--
	}
	return months
}
