package rosterxls

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"

	"github.com/pesocar/gip-registry/internal/domain"
)

const defaultSheetName = "Employees"

func decodeYAML(r io.Reader, out interface{}) error {
	if err := yaml.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("decode export template: %w", err)
	}
	return nil
}

// ParseWorkbook reads the first sheet of an .xlsx upload into field-keyed
// rows. The first row must be headers; known headers map to canonical
// field keys, unknown ones pass through verbatim the way the old tooling
// always has. Rows with no non-blank cell are dropped.
func ParseWorkbook(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	fields := headerToField()
	headers := rows[0]

	var out []map[string]string
	for _, cells := range rows[1:] {
		row := make(map[string]string, len(headers))
		empty := true
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			var value string
			if i < len(cells) {
				value = strings.TrimSpace(cells[i])
			}
			if value != "" {
				empty = false
			}
			key := header
			if mapped, ok := fields[header]; ok {
				key = mapped
			}
			row[key] = value
		}
		if !empty {
			out = append(out, row)
		}
	}
	return out, nil
}

// Exporter writes roster records to a workbook using a column layout.
type Exporter struct {
	sheet   string
	columns []Column
}

// NewExporter uses the canonical layout.
func NewExporter() *Exporter {
	return &Exporter{sheet: defaultSheetName, columns: DefaultColumns()}
}

// NewExporterFromTemplate uses a YAML-supplied layout instead.
func NewExporterFromTemplate(t *Template) *Exporter {
	sheet := t.Sheet
	if sheet == "" {
		sheet = defaultSheetName
	}
	cols := t.Columns
	if len(cols) == 0 {
		cols = DefaultColumns()
	}
	return &Exporter{sheet: sheet, columns: cols}
}

// ToBytes renders the records as an .xlsx file in memory.
func (e *Exporter) ToBytes(records []domain.EmploymentRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", e.sheet)

	for i, col := range e.columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(e.sheet, cell, col.Header); err != nil {
			return nil, err
		}
		if col.Width > 0 {
			name, _ := excelize.ColumnNumberToName(i + 1)
			if err := f.SetColWidth(e.sheet, name, name, col.Width); err != nil {
				return nil, err
			}
		}
	}

	for rowIdx, rec := range records {
		fields := rec.StringFields()
		for colIdx, col := range e.columns {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(e.sheet, cell, fields[col.Field]); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
