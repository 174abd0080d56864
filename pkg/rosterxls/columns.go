// Package rosterxls moves the roster in and out of .xlsx workbooks.
// It owns the mapping between spreadsheet column headers and canonical
// record field keys; the service layer only ever sees field-keyed rows.
package rosterxls

import "io"

// Column binds a spreadsheet header to a canonical record field key.
type Column struct {
	Header string  `yaml:"header"`
	Field  string  `yaml:"field"`
	Width  float64 `yaml:"width"`
}

// Template is an optional YAML export layout overriding the default
// column selection and order.
type Template struct {
	Sheet   string   `yaml:"sheet"`
	Columns []Column `yaml:"columns"`
}

// DefaultColumns is the canonical roster layout, matching the headers the
// field offices have been exchanging for years. Import recognizes these
// headers; export emits them in this order.
func DefaultColumns() []Column {
	return []Column{
		{Header: "GIP ID", Field: "gipId", Width: 18},
		{Header: "Full Name", Field: "name", Width: 28},
		{Header: "Start Date", Field: "startDate", Width: 14},
		{Header: "End Date", Field: "endDate", Width: 14},
		{Header: "Months Worked", Field: "monthsWorked", Width: 14},
		{Header: "Birth Date", Field: "birthDate", Width: 14},
		{Header: "Age", Field: "age", Width: 8},
		{Header: "Year", Field: "year", Width: 8},
		{Header: "LGU", Field: "lgu", Width: 16},
		{Header: "Place of Assignment", Field: "assignmentPlace", Width: 24},
		{Header: "Valid ID Type", Field: "validId", Width: 18},
		{Header: "Valid ID Issued At", Field: "validIdIssued", Width: 18},
		{Header: "Place of Birth", Field: "placeOfBirth", Width: 20},
		{Header: "Address", Field: "address", Width: 32},
		{Header: "Contact Number", Field: "contactNumber", Width: 16},
		{Header: "Email Address", Field: "email", Width: 24},
		{Header: "Gender", Field: "gender", Width: 10},
		{Header: "Educational Attainment", Field: "educationalAttainment", Width: 22},
		{Header: "Primary Degree", Field: "primaryDegree", Width: 18},
		{Header: "Primary School", Field: "primarySchool", Width: 24},
		{Header: "Primary Year From", Field: "primaryYearFrom", Width: 12},
		{Header: "Primary Year To", Field: "primaryYearTo", Width: 12},
		{Header: "Junior High Degree", Field: "secondaryDegree", Width: 18},
		{Header: "Junior High School", Field: "secondarySchool", Width: 24},
		{Header: "Junior High Year From", Field: "secondaryYearFrom", Width: 12},
		{Header: "Junior High Year To", Field: "secondaryYearTo", Width: 12},
		{Header: "Senior High Degree", Field: "seniorHighDegree", Width: 18},
		{Header: "Senior High School", Field: "seniorHighSchool", Width: 24},
		{Header: "Senior High Year From", Field: "seniorHighYearFrom", Width: 12},
		{Header: "Senior High Year To", Field: "seniorHighYearTo", Width: 12},
		{Header: "College Degree", Field: "collegeDegree", Width: 18},
		{Header: "College School", Field: "collegeSchool", Width: 24},
		{Header: "College Year From", Field: "collegeYearFrom", Width: 12},
		{Header: "College Year To", Field: "collegeYearTo", Width: 12},
		{Header: "Previous Company", Field: "workCompany", Width: 24},
		{Header: "Previous Position", Field: "workPosition", Width: 20},
		{Header: "Work Period", Field: "workPeriod", Width: 16},
		{Header: "Disadvantaged Group", Field: "disadvantageGroup", Width: 20},
		{Header: "Documents Submitted", Field: "documentsSubmitted", Width: 26},
		{Header: "ADL No.", Field: "adlNo", Width: 14},
		{Header: "LBP Account No.", Field: "lbpAccount", Width: 18},
		{Header: "Emergency Contact Name", Field: "emergencyName", Width: 24},
		{Header: "Emergency Contact Number", Field: "emergencyContact", Width: 18},
		{Header: "Emergency Contact Address", Field: "emergencyAddress", Width: 32},
		{Header: "GSIS Beneficiary Name", Field: "gsisName", Width: 24},
		{Header: "GSIS Relationship", Field: "gsisRelationship", Width: 16},
		{Header: "GPAI Link", Field: "gpaiLink", Width: 24},
		{Header: "Employment Status", Field: "employmentStatus", Width: 18},
		{Header: "Remarks", Field: "remarks", Width: 32},
	}
}

// headerToField indexes the default layout by header name.
func headerToField() map[string]string {
	cols := DefaultColumns()
	m := make(map[string]string, len(cols))
	for _, col := range cols {
		m[col.Header] = col.Field
	}
	return m
}

// LoadTemplate decodes a YAML export layout.
func LoadTemplate(r io.Reader) (*Template, error) {
	var t Template
	if err := decodeYAML(r, &t); err != nil {
		return nil, err
	}
	if t.Sheet == "" {
		t.Sheet = defaultSheetName
	}
	return &t, nil
}
