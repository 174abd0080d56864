// Package service orchestrates the record lifecycle: derived-field
// computation, participant-ID allocation and delegation to storage.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/pesocar/gip-registry/internal/domain"
	"github.com/pesocar/gip-registry/internal/experience"
	"github.com/pesocar/gip-registry/internal/gipid"
	"github.com/pesocar/gip-registry/internal/logger"
	"github.com/pesocar/gip-registry/internal/tenure"
)

// RecordService is the lifecycle orchestrator over the roster.
type RecordService struct {
	repo  domain.RecordRepository
	index domain.RecordIndex
	alloc *gipid.Allocator
	now   func() time.Time
}

// NewRecordService wires the orchestrator. index may be nil when search is
// disabled; indexing is best-effort and never fails a write either way.
func NewRecordService(repo domain.RecordRepository, index domain.RecordIndex) *RecordService {
	return &RecordService{
		repo:  repo,
		index: index,
		alloc: gipid.New(),
		now:   time.Now,
	}
}

// derive recomputes the write-time snapshot fields from the record's raw
// date strings. Age and duration are stored as of this moment and readers
// display them as-is; they are deliberately not live-recalculated.
func (s *RecordService) derive(rec *domain.EmploymentRecord) {
	rec.Name = strings.TrimSpace(rec.Name)
	rec.GipID = strings.TrimSpace(rec.GipID)

	if age, ok := tenure.Age(rec.BirthDate, s.now()); ok {
		rec.Age = &age
	} else {
		rec.Age = nil
	}

	rec.MonthsWorked = tenure.MonthsBetween(rec.StartDate, rec.EndDate)
	d := tenure.MonthsAndDays(rec.StartDate, rec.EndDate)
	rec.DurationMonths = d.Months
	rec.DurationDays = d.Days

	if start, ok := tenure.ParseDate(rec.StartDate); ok {
		rec.Year = start.Format("2006")
	} else {
		rec.Year = ""
	}
}

// allocateID assigns a fresh participant ID, consulting every ID already on
// the roster. The read-then-pick sequence is not atomic across concurrent
// writers; see the gipid package notes.
func (s *RecordService) allocateID(ctx context.Context, rec *domain.EmploymentRecord) error {
	roster, err := s.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(roster))
	for _, other := range roster {
		ids = append(ids, other.GipID)
	}
	id, err := s.alloc.Allocate(rec.Name, rec.StartDate, gipid.ExistingSet(ids))
	if err != nil {
		return err
	}
	rec.GipID = id
	return nil
}

// Create validates, derives and persists a new record, allocating a
// participant ID when none was supplied. Name is the only mandatory field.
func (s *RecordService) Create(ctx context.Context, rec *domain.EmploymentRecord) (*domain.EmploymentRecord, error) {
	s.derive(rec)
	if rec.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "must not be empty"}
	}

	if rec.GipID == "" {
		if err := s.allocateID(ctx, rec); err != nil {
			return nil, err
		}
	}

	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	s.reindex(ctx, rec)
	return rec, nil
}

// Update re-derives the snapshot fields and replaces the stored record.
// A populated participant ID is never reassigned behind the user's back;
// allocation happens only when the field comes in blank.
func (s *RecordService) Update(ctx context.Context, id string, rec *domain.EmploymentRecord) (*domain.EmploymentRecord, error) {
	s.derive(rec)
	if rec.Name == "" {
		return nil, &domain.ValidationError{Field: "name", Message: "must not be empty"}
	}

	if rec.GipID == "" {
		if err := s.allocateID(ctx, rec); err != nil {
			return nil, err
		}
	}

	rec.ID = id
	if err := s.repo.Replace(ctx, id, rec); err != nil {
		return nil, err
	}
	s.reindex(ctx, rec)
	return rec, nil
}

// Delete removes the record outright. No soft delete, no history.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}
	if s.index != nil {
		if err := s.index.Remove(ctx, id); err != nil {
			logger.WarnLog(ctx, "search index remove for %s failed: %v", id, err)
		}
	}
	return nil
}

// Get fetches a single record by storage ID.
func (s *RecordService) Get(ctx context.Context, id string) (*domain.EmploymentRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the full roster with 1-based display row numbers.
func (s *RecordService) List(ctx context.Context) ([]domain.EmploymentRecord, error) {
	roster, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range roster {
		roster[i].RowNumber = i + 1
	}
	return roster, nil
}

// Experience returns the record's person's other placements grouped by
// year, excluding the record itself from its own history.
func (s *RecordService) Experience(ctx context.Context, id string) ([]domain.ExperienceYearGroup, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	roster, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return experience.GroupByYear(roster, rec.Name, rec.ID), nil
}

// Summary returns the per-person grand totals across the whole roster.
func (s *RecordService) Summary(ctx context.Context) ([]domain.PersonTotal, error) {
	roster, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return experience.GroupByPersonTotal(roster), nil
}

// IsDuplicate reports whether the roster already holds a record for the
// same person (trimmed, case-folded name) with the exact same start date
// string. This is the bulk-import duplicate predicate.
func (s *RecordService) IsDuplicate(roster []domain.EmploymentRecord, name, startDate string) bool {
	for _, rec := range roster {
		if experience.SamePerson(rec.Name, name) && rec.StartDate == startDate {
			return true
		}
	}
	return false
}

// ImportRows runs the bulk import: rows are processed sequentially, each
// through the same derivation as Create. Duplicates are skipped unless
// acceptDuplicates is set. One row's failure never aborts the rest; the
// caller gets counts only.
func (s *RecordService) ImportRows(ctx context.Context, rows []map[string]string, acceptDuplicates bool) (domain.ImportReport, error) {
	var report domain.ImportReport

	roster, err := s.repo.ListAll(ctx)
	if err != nil {
		return report, err
	}

	for i, row := range rows {
		rec := domain.RecordFromFields(row)
		if s.IsDuplicate(roster, rec.Name, rec.StartDate) && !acceptDuplicates {
			report.Skipped++
			continue
		}
		if _, err := s.Create(ctx, &rec); err != nil {
			logger.ErrorLog(ctx, "import row %d failed: %v", i+1, err)
			report.Failed++
			continue
		}
		roster = append(roster, rec)
		report.Added++
	}

	return report, nil
}

// SearchByName queries the optional search index.
func (s *RecordService) SearchByName(ctx context.Context, query string) ([]domain.RecordHit, error) {
	if s.index == nil {
		return nil, domain.ErrSearchDisabled
	}
	return s.index.SearchByName(ctx, query)
}

func (s *RecordService) reindex(ctx context.Context, rec *domain.EmploymentRecord) {
	if s.index == nil {
		return
	}
	if err := s.index.Index(ctx, rec); err != nil {
		logger.WarnLog(ctx, "search index update for %s failed: %v", rec.ID, err)
	}
}
