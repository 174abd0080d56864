package domain

import "github.com/pesocar/gip-registry/internal/tenure"

// LGUOptions is the fixed set of localities a participant can be assigned to.
// "N/A" is the catch-all for records imported without one.
var LGUOptions = []string{
	"N/A",
	"BAGUIO CITY",
	"ATOK",
	"BAKUN",
	"BENGUET",
	"BOKOD",
	"BUGUIAS",
	"ITOGON",
	"KABAYAN",
	"KAPANGAN",
	"KIBUNGAN",
	"MANKAYAN",
	"LA TRINIDAD",
	"SABLAN",
	"TUBA",
	"TUBLAY",
}

// EmploymentRecord is one placement stint for one participant. A person with
// several stints has several independent records; they are linked only by
// Name at aggregation time, never by a stored key.
//
// Dates are kept as the raw strings they arrived with (form input or
// spreadsheet cell). Historical rows carry all sorts of malformed values and
// the arithmetic in tenure degrades gracefully instead of rejecting them.
type EmploymentRecord struct {
	// ID is the storage-assigned identifier. Immutable after insert.
	ID string `json:"id" datastore:"-"`

	// RowNumber is the 1-based ordinal assigned when listing; display only.
	RowNumber int `json:"idNumber,omitempty" datastore:"-"`

	// GipID is the structured participant code, e.g. GIP-JDC-2024-07.
	// Assigned once (allocated when blank on create), immutable after.
	GipID string `json:"gipId" datastore:"GipID"`

	Name      string `json:"name" datastore:"Name"`
	StartDate string `json:"startDate" datastore:"StartDate"`
	EndDate   string `json:"endDate" datastore:"EndDate"`
	BirthDate string `json:"birthDate" datastore:"BirthDate"`
	LGU       string `json:"lgu" datastore:"LGU"`

	// Write-time derived fields. Recomputed on every create/update and
	// stored as-is; readers must not re-derive them.
	Age            *int   `json:"age" datastore:"Age"`
	MonthsWorked   int    `json:"monthsWorked" datastore:"MonthsWorked"`
	DurationMonths int    `json:"durationMonths" datastore:"DurationMonths"`
	DurationDays   int    `json:"durationDays" datastore:"DurationDays"`
	Year           string `json:"year" datastore:"Year"`

	// Demographic, education, document-checklist and remarks fields.
	// Opaque payload carried through storage and spreadsheets verbatim.
	ValidID               string `json:"validId" datastore:"ValidID,noindex"`
	ValidIDIssued         string `json:"validIdIssued" datastore:"ValidIDIssued,noindex"`
	AssignmentPlace       string `json:"assignmentPlace" datastore:"AssignmentPlace,noindex"`
	PlaceOfBirth          string `json:"placeOfBirth" datastore:"PlaceOfBirth,noindex"`
	Address               string `json:"address" datastore:"Address,noindex"`
	ContactNumber         string `json:"contactNumber" datastore:"ContactNumber,noindex"`
	Email                 string `json:"email" datastore:"Email,noindex"`
	Gender                string `json:"gender" datastore:"Gender,noindex"`
	EducationalAttainment string `json:"educationalAttainment" datastore:"EducationalAttainment,noindex"`
	PrimaryDegree         string `json:"primaryDegree" datastore:"PrimaryDegree,noindex"`
	PrimarySchool         string `json:"primarySchool" datastore:"PrimarySchool,noindex"`
	PrimaryYearFrom       string `json:"primaryYearFrom" datastore:"PrimaryYearFrom,noindex"`
	PrimaryYearTo         string `json:"primaryYearTo" datastore:"PrimaryYearTo,noindex"`
	SecondaryDegree       string `json:"secondaryDegree" datastore:"SecondaryDegree,noindex"`
	SecondarySchool       string `json:"secondarySchool" datastore:"SecondarySchool,noindex"`
	SecondaryYearFrom     string `json:"secondaryYearFrom" datastore:"SecondaryYearFrom,noindex"`
	SecondaryYearTo       string `json:"secondaryYearTo" datastore:"SecondaryYearTo,noindex"`
	SeniorHighDegree      string `json:"seniorHighDegree" datastore:"SeniorHighDegree,noindex"`
	SeniorHighSchool      string `json:"seniorHighSchool" datastore:"SeniorHighSchool,noindex"`
	SeniorHighYearFrom    string `json:"seniorHighYearFrom" datastore:"SeniorHighYearFrom,noindex"`
	SeniorHighYearTo      string `json:"seniorHighYearTo" datastore:"SeniorHighYearTo,noindex"`
	CollegeDegree         string `json:"collegeDegree" datastore:"CollegeDegree,noindex"`
	CollegeSchool         string `json:"collegeSchool" datastore:"CollegeSchool,noindex"`
	CollegeYearFrom       string `json:"collegeYearFrom" datastore:"CollegeYearFrom,noindex"`
	CollegeYearTo         string `json:"collegeYearTo" datastore:"CollegeYearTo,noindex"`
	WorkCompany           string `json:"workCompany" datastore:"WorkCompany,noindex"`
	WorkPosition          string `json:"workPosition" datastore:"WorkPosition,noindex"`
	WorkPeriod            string `json:"workPeriod" datastore:"WorkPeriod,noindex"`
	DisadvantageGroup     string `json:"disadvantageGroup" datastore:"DisadvantageGroup,noindex"`
	DocumentsSubmitted    string `json:"documentsSubmitted" datastore:"DocumentsSubmitted,noindex"`
	ADLNo                 string `json:"adlNo" datastore:"ADLNo,noindex"`
	LBPAccount            string `json:"lbpAccount" datastore:"LBPAccount,noindex"`
	EmergencyName         string `json:"emergencyName" datastore:"EmergencyName,noindex"`
	EmergencyContact      string `json:"emergencyContact" datastore:"EmergencyContact,noindex"`
	EmergencyAddress      string `json:"emergencyAddress" datastore:"EmergencyAddress,noindex"`
	GSISName              string `json:"gsisName" datastore:"GSISName,noindex"`
	GSISRelationship      string `json:"gsisRelationship" datastore:"GSISRelationship,noindex"`
	GPAILink              string `json:"gpaiLink" datastore:"GPAILink,noindex"`
	EmploymentStatus      string `json:"employmentStatus" datastore:"EmploymentStatus,noindex"`
	Remarks               string `json:"remarks" datastore:"Remarks,noindex"`
}

// ExperienceYearGroup is one year's worth of a person's placements.
// Derived on every view, never persisted.
type ExperienceYearGroup struct {
	Year    string             `json:"year"`
	Entries []EmploymentRecord `json:"entries"`
	Total   tenure.Duration    `json:"totalDuration"`
	Display string             `json:"totalDisplay"`
}

// PersonTotal is the roster-wide summary row: every record grouped under
// one name with the grand-total duration across all stints.
type PersonTotal struct {
	Name    string             `json:"name"`
	Entries []EmploymentRecord `json:"entries"`
	Total   tenure.Duration    `json:"totalDuration"`
	Display string             `json:"totalDisplay"`
}

// ImportReport summarizes a bulk spreadsheet import.
type ImportReport struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// RecordHit is a search-index projection of a record, enough for the
// lookup UI to offer a match without a second fetch.
type RecordHit struct {
	ID        string `json:"id"`
	GipID     string `json:"gipId"`
	Name      string `json:"name"`
	LGU       string `json:"lgu"`
	StartDate string `json:"startDate"`
}
