package rosterxls

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pesocar/gip-registry/internal/domain"
)

func TestExportParseRoundTrip(t *testing.T) {
	age := 24
	records := []domain.EmploymentRecord{
		{
			GipID:        "GIP-JDC-2024-07",
			Name:         "Juan Dela Cruz",
			StartDate:    "2024-03-15",
			EndDate:      "2024-09-15",
			BirthDate:    "2000-06-15",
			Age:          &age,
			MonthsWorked: 6,
			Year:         "2024",
			LGU:          "ITOGON",
		},
		{
			Name:      "Ana Reyes",
			StartDate: "2023-01-01",
		},
	}

	data, err := NewExporter().ToBytes(records)
	require.NoError(t, err)

	rows, err := ParseWorkbook(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "GIP-JDC-2024-07", rows[0]["gipId"])
	assert.Equal(t, "Juan Dela Cruz", rows[0]["name"])
	assert.Equal(t, "2024-03-15", rows[0]["startDate"])
	assert.Equal(t, "24", rows[0]["age"])
	assert.Equal(t, "6", rows[0]["monthsWorked"])
	assert.Equal(t, "ITOGON", rows[0]["lgu"])

	assert.Equal(t, "Ana Reyes", rows[1]["name"])
	assert.Equal(t, "", rows[1]["gipId"])
}

func TestParseWorkbook_UnknownHeaderPassesThrough(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Full Name"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Favorite Color"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "Ana Reyes"))
	require.NoError(t, f.SetCellValue(sheet, "B2", "Blue"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := ParseWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana Reyes", rows[0]["name"])
	assert.Equal(t, "Blue", rows[0]["Favorite Color"])
}

func TestParseWorkbook_DropsBlankRows(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Full Name"))
	require.NoError(t, f.SetCellValue(sheet, "A2", "   "))
	require.NoError(t, f.SetCellValue(sheet, "A3", "Pedro Santos"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := ParseWorkbook(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pedro Santos", rows[0]["name"])
}

func TestParseWorkbook_HeadersOnly(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Full Name"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	rows, err := ParseWorkbook(buf)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseWorkbook_NotAWorkbook(t *testing.T) {
	_, err := ParseWorkbook(strings.NewReader("name,startDate\nAna,2023-01-01\n"))
	assert.Error(t, err)
}

func TestLoadTemplate(t *testing.T) {
	src := `
sheet: Roster 2024
columns:
  - header: GIP ID
    field: gipId
    width: 20
  - header: Full Name
    field: name
`
	tpl, err := LoadTemplate(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "Roster 2024", tpl.Sheet)
	require.Len(t, tpl.Columns, 2)
	assert.Equal(t, "gipId", tpl.Columns[0].Field)
	assert.Equal(t, float64(20), tpl.Columns[0].Width)
}

func TestLoadTemplate_DefaultsSheetName(t *testing.T) {
	tpl, err := LoadTemplate(strings.NewReader("columns:\n  - header: Full Name\n    field: name\n"))
	require.NoError(t, err)
	assert.Equal(t, defaultSheetName, tpl.Sheet)
}

func TestExporterFromTemplate(t *testing.T) {
	tpl := &Template{
		Sheet: "Custom",
		Columns: []Column{
			{Header: "Full Name", Field: "name"},
			{Header: "Start Date", Field: "startDate"},
		},
	}

	data, err := NewExporterFromTemplate(tpl).ToBytes([]domain.EmploymentRecord{
		{Name: "Ana Reyes", StartDate: "2023-01-01", LGU: "ITOGON"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Custom", f.GetSheetName(0))

	name, err := f.GetCellValue("Custom", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Start Date", name)

	value, err := f.GetCellValue("Custom", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes", value)
}

func TestDefaultColumns_FieldsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, col := range DefaultColumns() {
		assert.False(t, seen[col.Field], "field %s repeated", col.Field)
		seen[col.Field] = true
		assert.NotEmpty(t, col.Header)
	}
}
