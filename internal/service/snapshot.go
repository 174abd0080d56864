package service

import (
	"strings"

	"github.com/pesocar/gip-registry/internal/domain"
	"github.com/pesocar/gip-registry/internal/tenure"
)

// displayDate renders a stored date string for printed forms, e.g.
// "JAN 2, 2024". Unparseable input falls back to the raw string so legacy
// values still land on the form instead of vanishing.
func displayDate(s string) string {
	t, ok := tenure.ParseDate(s)
	if !ok {
		return strings.TrimSpace(s)
	}
	return strings.ToUpper(t.Format("Jan 2, 2006"))
}

// FormSnapshot flattens a record into the display-formatted field map the
// contract-form-filling collaborator consumes. The collaborator owns the
// template coordinates; this side only supplies the strings.
func FormSnapshot(rec *domain.EmploymentRecord) map[string]string {
	snap := rec.StringFields()

	snap["startDate"] = displayDate(rec.StartDate)
	snap["endDate"] = displayDate(rec.EndDate)
	snap["birthDate"] = displayDate(rec.BirthDate)

	if snap["lgu"] == "" {
		snap["lgu"] = "N/A"
	}

	d := tenure.Duration{Months: rec.DurationMonths, Days: rec.DurationDays}
	snap["duration"] = d.Format()

	return snap
}
