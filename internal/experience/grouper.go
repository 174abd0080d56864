// Package experience aggregates a participant's placement history across
// roster records. Records have no stored person key; two records belong to
// the same person iff their names match after trimming and case-folding.
// That join rule silently merges distinct people with identical names and
// splits one person across spelling variants; it is a known data-quality
// limitation of the roster, not something this package tries to repair.
package experience

import (
	"sort"
	"strings"

	"github.com/pesocar/gip-registry/internal/domain"
	"github.com/pesocar/gip-registry/internal/tenure"
)

// UnknownYear is the bucket for records whose start date does not parse.
const UnknownYear = "Unknown"

// Normalize folds a name into the canonical join key.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SamePerson reports whether two names refer to the same person under the
// roster's name-as-join-key rule.
func SamePerson(a, b string) bool {
	return Normalize(a) != "" && Normalize(a) == Normalize(b)
}

// GroupByYear collects every record in roster belonging to name, except the
// record whose storage ID equals excludeID, and buckets them by the calendar
// year of the start date. Within a bucket entries are sorted by start date,
// newest first, and the bucket total is the field-wise sum of each entry's
// months-and-days duration. Summing per entry means overlapping stints count
// additively; that matches how the roster has always reported experience.
//
// Buckets come back sorted by year string, descending, so "Unknown" sorts
// ahead of any 4-digit year. The roster slice is never mutated.
func GroupByYear(roster []domain.EmploymentRecord, name, excludeID string) []domain.ExperienceYearGroup {
	target := Normalize(name)
	if target == "" {
		return nil
	}

	buckets := make(map[string][]domain.EmploymentRecord)
	for _, rec := range roster {
		if rec.ID == excludeID && excludeID != "" {
			continue
		}
		if Normalize(rec.Name) != target {
			continue
		}
		year := UnknownYear
		if start, ok := tenure.ParseDate(rec.StartDate); ok {
			year = start.Format("2006")
		}
		buckets[year] = append(buckets[year], rec)
	}

	groups := make([]domain.ExperienceYearGroup, 0, len(buckets))
	for year, entries := range buckets {
		sort.SliceStable(entries, func(i, j int) bool {
			a, _ := tenure.ParseDate(entries[i].StartDate)
			b, _ := tenure.ParseDate(entries[j].StartDate)
			return a.After(b)
		})

		var total tenure.Duration
		for _, entry := range entries {
			total = total.Add(tenure.MonthsAndDays(entry.StartDate, entry.EndDate))
		}

		groups = append(groups, domain.ExperienceYearGroup{
			Year:    year,
			Entries: entries,
			Total:   total,
			Display: total.Format(),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Year > groups[j].Year
	})
	return groups
}

// GroupByPersonTotal groups the whole roster by person and computes each
// person's grand-total duration across all stints. Records with blank names
// are dropped. Output is sorted by name for stable display.
func GroupByPersonTotal(roster []domain.EmploymentRecord) []domain.PersonTotal {
	order := []string{}
	byKey := make(map[string][]domain.EmploymentRecord)
	display := make(map[string]string)

	for _, rec := range roster {
		key := Normalize(rec.Name)
		if key == "" {
			continue
		}
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
			display[key] = strings.TrimSpace(rec.Name)
		}
		byKey[key] = append(byKey[key], rec)
	}

	totals := make([]domain.PersonTotal, 0, len(order))
	for _, key := range order {
		entries := byKey[key]
		var total tenure.Duration
		for _, entry := range entries {
			total = total.Add(tenure.MonthsAndDays(entry.StartDate, entry.EndDate))
		}
		totals = append(totals, domain.PersonTotal{
			Name:    display[key],
			Entries: entries,
			Total:   total,
			Display: total.Format(),
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		return Normalize(totals[i].Name) < Normalize(totals[j].Name)
	})
	return totals
}
