package domain

import "strconv"

// fieldPtrs maps canonical field keys to the string fields they populate.
// These keys are the contract with the spreadsheet collaborator and the
// form-filling collaborator; column headers map onto them, never directly
// onto struct fields.
func (r *EmploymentRecord) fieldPtrs() map[string]*string {
	return map[string]*string{
		"gipId":                 &r.GipID,
		"name":                  &r.Name,
		"startDate":             &r.StartDate,
		"endDate":               &r.EndDate,
		"birthDate":             &r.BirthDate,
		"lgu":                   &r.LGU,
		"validId":               &r.ValidID,
		"validIdIssued":         &r.ValidIDIssued,
		"assignmentPlace":       &r.AssignmentPlace,
		"placeOfBirth":          &r.PlaceOfBirth,
		"address":               &r.Address,
		"contactNumber":         &r.ContactNumber,
		"email":                 &r.Email,
		"gender":                &r.Gender,
		"educationalAttainment": &r.EducationalAttainment,
		"primaryDegree":         &r.PrimaryDegree,
		"primarySchool":         &r.PrimarySchool,
		"primaryYearFrom":       &r.PrimaryYearFrom,
		"primaryYearTo":         &r.PrimaryYearTo,
		"secondaryDegree":       &r.SecondaryDegree,
		"secondarySchool":       &r.SecondarySchool,
		"secondaryYearFrom":     &r.SecondaryYearFrom,
		"secondaryYearTo":       &r.SecondaryYearTo,
		"seniorHighDegree":      &r.SeniorHighDegree,
		"seniorHighSchool":      &r.SeniorHighSchool,
		"seniorHighYearFrom":    &r.SeniorHighYearFrom,
		"seniorHighYearTo":      &r.SeniorHighYearTo,
		"collegeDegree":         &r.CollegeDegree,
		"collegeSchool":         &r.CollegeSchool,
		"collegeYearFrom":       &r.CollegeYearFrom,
		"collegeYearTo":         &r.CollegeYearTo,
		"workCompany":           &r.WorkCompany,
		"workPosition":          &r.WorkPosition,
		"workPeriod":            &r.WorkPeriod,
		"disadvantageGroup":     &r.DisadvantageGroup,
		"documentsSubmitted":    &r.DocumentsSubmitted,
		"adlNo":                 &r.ADLNo,
		"lbpAccount":            &r.LBPAccount,
		"emergencyName":         &r.EmergencyName,
		"emergencyContact":      &r.EmergencyContact,
		"emergencyAddress":      &r.EmergencyAddress,
		"gsisName":              &r.GSISName,
		"gsisRelationship":      &r.GSISRelationship,
		"gpaiLink":              &r.GPAILink,
		"employmentStatus":      &r.EmploymentStatus,
		"remarks":               &r.Remarks,
	}
}

// RecordFromFields builds a record from a field-keyed row, e.g. one parsed
// from an imported spreadsheet. Unknown keys are ignored; derived fields
// (age, monthsWorked, year, duration) are never taken from the row because
// the lifecycle path recomputes them at write time.
func RecordFromFields(fields map[string]string) EmploymentRecord {
	var r EmploymentRecord
	ptrs := r.fieldPtrs()
	for key, value := range fields {
		if p, ok := ptrs[key]; ok {
			*p = value
		}
	}
	return r
}

// StringFields flattens the record into a field-keyed string map, derived
// fields included, for export and form filling.
func (r *EmploymentRecord) StringFields() map[string]string {
	out := make(map[string]string, 56)
	for key, p := range r.fieldPtrs() {
		out[key] = *p
	}
	if r.Age != nil {
		out["age"] = strconv.Itoa(*r.Age)
	} else {
		out["age"] = ""
	}
	out["monthsWorked"] = strconv.Itoa(r.MonthsWorked)
	out["durationMonths"] = strconv.Itoa(r.DurationMonths)
	out["durationDays"] = strconv.Itoa(r.DurationDays)
	out["year"] = r.Year
	return out
}
