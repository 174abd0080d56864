package tenure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	testCases := map[string]struct {
		input string
		want  string
		ok    bool
	}{
		"iso":            {"2024-03-15", "2024-03-15", true},
		"iso datetime":   {"2024-03-15T08:30:00", "2024-03-15", true},
		"us slash":       {"03/15/2024", "2024-03-15", true},
		"short month":    {"Mar 15, 2024", "2024-03-15", true},
		"padded":         {"  2024-03-15  ", "2024-03-15", true},
		"empty":          {"", "", false},
		"garbage":        {"not a date", "", false},
		"partial number": {"2024", "", false},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseDate(tc.input)
			require.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, got.Format("2006-01-02"))
			}
		})
	}
}

func TestAge_BirthdayBoundary(t *testing.T) {
	// Day before the birthday the subject is still 23; on the day, 24.
	dayBefore := time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC)
	onTheDay := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	age, ok := Age("2000-06-15", dayBefore)
	require.True(t, ok)
	assert.Equal(t, 23, age)

	age, ok = Age("2000-06-15", onTheDay)
	require.True(t, ok)
	assert.Equal(t, 24, age)
}

func TestAge_InvalidInput(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	_, ok := Age("", now)
	assert.False(t, ok)

	_, ok = Age("15 June, sometime", now)
	assert.False(t, ok)
}

func TestMonthsBetween(t *testing.T) {
	testCases := map[string]struct {
		start, end string
		want       int
	}{
		"three months":        {"2023-01-01", "2023-04-01", 3},
		"full year":           {"2023-01-15", "2024-01-15", 12},
		"same day floors to 1": {"2023-05-10", "2023-05-10", 1},
		"under a month floors": {"2023-05-01", "2023-05-20", 1},
		"missing start":        {"", "2023-04-01", 1},
		"missing end":          {"2023-01-01", "", 1},
		"unparseable":          {"soon", "later", 1},
		"reversed range":       {"2023-04-01", "2023-01-01", 1},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, MonthsBetween(tc.start, tc.end))
		})
	}
}

func TestMonthsAndDays(t *testing.T) {
	testCases := map[string]struct {
		start, end string
		want       Duration
	}{
		"zero interval":     {"2023-06-01", "2023-06-01", Duration{0, 0}},
		"exact one month":   {"2023-01-01", "2023-02-01", Duration{1, 0}},
		"exact three":       {"2023-01-01", "2023-04-01", Duration{3, 0}},
		"exact twelve":      {"2023-03-15", "2024-03-15", Duration{12, 0}},
		"fourteen days":     {"2023-06-01", "2023-06-15", Duration{0, 14}},
		"month and a half":  {"2023-01-01", "2023-02-16", Duration{1, 15}},
		"missing input":     {"", "2023-06-15", Duration{0, 0}},
		"unparseable":       {"n/a", "n/a", Duration{0, 0}},
		"reversed range":    {"2023-06-15", "2023-06-01", Duration{0, 0}},
		// Jan 31 plus one month normalizes past Mar 1, so the whole span
		// stays in days.
		"feb across leap": {"2024-01-31", "2024-03-01", Duration{0, 30}},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, MonthsAndDays(tc.start, tc.end))
		})
	}
}

func TestMonthsAndDays_ZeroIntervalAnyDate(t *testing.T) {
	for _, d := range []string{"2020-02-29", "2023-12-31", "1999-01-01"} {
		assert.Equal(t, Duration{}, MonthsAndDays(d, d), "date %s", d)
	}
}

func TestMonthsAndDays_ExactMonthSteps(t *testing.T) {
	start, _ := ParseDate("2023-01-01")
	for n := 1; n <= 24; n++ {
		end := start.AddDate(0, n, 0).Format("2006-01-02")
		assert.Equal(t, Duration{Months: n, Days: 0}, MonthsAndDays("2023-01-01", end), "n=%d", n)
	}
}

func TestMonthsAndDays_DaysAlwaysInRange(t *testing.T) {
	// Month-end normalization must never leak a negative or oversized
	// leftover.
	starts := []string{"2023-01-31", "2023-01-30", "2024-02-29", "2023-12-31"}
	ends := []string{"2023-03-01", "2023-03-02", "2024-03-01", "2024-02-29"}

	for _, s := range starts {
		for _, e := range ends {
			d := MonthsAndDays(s, e)
			assert.GreaterOrEqual(t, d.Months, 0, "%s..%s", s, e)
			assert.GreaterOrEqual(t, d.Days, 0, "%s..%s", s, e)
			assert.Less(t, d.Days, 32, "%s..%s", s, e)
		}
	}
}
