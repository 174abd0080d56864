package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pesocar/gip-registry/internal/domain"
	"github.com/pesocar/gip-registry/internal/gipid"
	"github.com/pesocar/gip-registry/internal/repository"
)

func newTestService(t *testing.T) *RecordService {
	t.Helper()
	svc := NewRecordService(repository.NewMemoryRepository(), nil)
	svc.alloc = gipid.NewWithRand(rand.New(rand.NewSource(42)))
	svc.now = func() time.Time {
		return time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestCreate_DerivesAndAllocates(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, &domain.EmploymentRecord{
		Name:      "  Juan Dela Cruz  ",
		BirthDate: "2000-06-15",
		StartDate: "2024-03-15",
		EndDate:   "2024-09-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "Juan Dela Cruz", rec.Name)
	assert.NotEmpty(t, rec.ID)
	assert.Regexp(t, `^GIP-JDC-2024-\d{2}$`, rec.GipID)

	require.NotNil(t, rec.Age)
	assert.Equal(t, 24, *rec.Age)

	assert.Equal(t, 6, rec.MonthsWorked)
	assert.Equal(t, 6, rec.DurationMonths)
	assert.Equal(t, 0, rec.DurationDays)
	assert.Equal(t, "2024", rec.Year)
}

func TestCreate_KeepsSuppliedGipID(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Create(context.Background(), &domain.EmploymentRecord{
		Name:      "Ana Reyes",
		GipID:     " GIP-AR-2023-05 ",
		StartDate: "2023-01-01",
		EndDate:   "2023-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "GIP-AR-2023-05", rec.GipID)
}

func TestCreate_EmptyNameRejected(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), &domain.EmploymentRecord{Name: "   "})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)
}

func TestCreate_UnparseableBirthDateLeavesAgeUnset(t *testing.T) {
	svc := newTestService(t)

	rec, err := svc.Create(context.Background(), &domain.EmploymentRecord{
		Name:      "Ana Reyes",
		BirthDate: "around 1999",
		StartDate: "2023-01-01",
		EndDate:   "2023-04-01",
	})
	require.NoError(t, err)
	assert.Nil(t, rec.Age)
	assert.Equal(t, 3, rec.MonthsWorked)
}

func TestCreate_AllocationAvoidsRosterIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 30; i++ {
		rec, err := svc.Create(ctx, &domain.EmploymentRecord{
			Name:      "Juan Dela Cruz",
			StartDate: "2024-03-15",
			EndDate:   "2024-09-15",
		})
		require.NoError(t, err)
		assert.False(t, seen[rec.GipID], "duplicate id %s", rec.GipID)
		seen[rec.GipID] = true
	}
}

func TestUpdate_NeverReassignsPopulatedGipID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, &domain.EmploymentRecord{
		Name:      "Ana Reyes",
		StartDate: "2023-01-01",
		EndDate:   "2023-04-01",
	})
	require.NoError(t, err)
	original := rec.GipID

	updated, err := svc.Update(ctx, rec.ID, &domain.EmploymentRecord{
		Name:      "Ana Reyes",
		GipID:     original,
		StartDate: "2023-01-01",
		EndDate:   "2023-07-01",
	})
	require.NoError(t, err)
	assert.Equal(t, original, updated.GipID)
	assert.Equal(t, 6, updated.MonthsWorked)
}

func TestUpdate_BlankGipIDGetsAllocated(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, &domain.EmploymentRecord{
		Name:      "Ana Reyes",
		StartDate: "2023-01-01",
		EndDate:   "2023-04-01",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, rec.ID, &domain.EmploymentRecord{
		Name:      "Ana Reyes",
		GipID:     "  ",
		StartDate: "2023-01-01",
		EndDate:   "2023-04-01",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^GIP-AR-2023-\d{2}$`, updated.GipID)
}

func TestDelete_RemovesOutright(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, &domain.EmploymentRecord{
		Name:      "Ana Reyes",
		StartDate: "2023-01-01",
		EndDate:   "2023-04-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rec.ID))

	_, err = svc.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestList_NumbersRows(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Ana Reyes", "Pedro Santos", "Juan Cruz"} {
		_, err := svc.Create(ctx, &domain.EmploymentRecord{
			Name:      name,
			StartDate: "2023-01-01",
			EndDate:   "2023-04-01",
		})
		require.NoError(t, err)
	}

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, rec := range records {
		assert.Equal(t, i+1, rec.RowNumber)
	}
}

func TestExperience_ExcludesOwnRecord(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, &domain.EmploymentRecord{
		Name:      "Ana Reyes",
		StartDate: "2023-01-01",
		EndDate:   "2023-04-01",
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, &domain.EmploymentRecord{
		Name:      " ana reyes ",
		StartDate: "2022-06-01",
		EndDate:   "2022-09-01",
	})
	require.NoError(t, err)

	groups, err := svc.Experience(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "2022", groups[0].Year)
	require.Len(t, groups[0].Entries, 1)
	assert.Equal(t, second.ID, groups[0].Entries[0].ID)
}

func TestImportRows_DuplicateHandling(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.EmploymentRecord{
		Name:      "Ana Reyes",
		StartDate: "2023-01-01",
		EndDate:   "2023-04-01",
	})
	require.NoError(t, err)

	rows := []map[string]string{
		{"name": "ANA REYES", "startDate": "2023-01-01", "endDate": "2023-04-01"}, // duplicate
		{"name": "Pedro Santos", "startDate": "2023-02-01", "endDate": "2023-05-01"},
		{"name": "Pedro Santos", "startDate": "2023-02-01", "endDate": "2023-05-01"}, // dup of row above
	}

	report, err := svc.ImportRows(ctx, rows, false)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportReport{Added: 1, Skipped: 2, Failed: 0}, report)

	report, err = svc.ImportRows(ctx, rows, true)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportReport{Added: 3, Skipped: 0, Failed: 0}, report)
}

// failingRepo wraps the memory repository and refuses to insert one
// particular name, to exercise per-row isolation.
type failingRepo struct {
	*repository.MemoryRepository
	rejectName string
}

func (f *failingRepo) Insert(ctx context.Context, rec *domain.EmploymentRecord) (string, error) {
	if strings.EqualFold(rec.Name, f.rejectName) {
		return "", errors.New("storage write refused")
	}
	return f.MemoryRepository.Insert(ctx, rec)
}

func TestImportRows_RowFailureDoesNotAbort(t *testing.T) {
	repo := &failingRepo{MemoryRepository: repository.NewMemoryRepository(), rejectName: "Bad Row"}
	svc := NewRecordService(repo, nil)
	svc.alloc = gipid.NewWithRand(rand.New(rand.NewSource(7)))
	svc.now = func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) }

	rows := []map[string]string{
		{"name": "Ana Reyes", "startDate": "2023-01-01", "endDate": "2023-04-01"},
		{"name": "Bad Row", "startDate": "2023-02-01", "endDate": "2023-05-01"},
		{"name": "", "startDate": "2023-03-01", "endDate": "2023-06-01"}, // validation failure
		{"name": "Pedro Santos", "startDate": "2023-04-01", "endDate": "2023-07-01"},
	}

	report, err := svc.ImportRows(context.Background(), rows, false)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportReport{Added: 2, Skipped: 0, Failed: 2}, report)
}

func TestIsDuplicate(t *testing.T) {
	svc := newTestService(t)
	roster := []domain.EmploymentRecord{
		{Name: "Ana Reyes", StartDate: "2023-01-01"},
	}

	assert.True(t, svc.IsDuplicate(roster, " ana reyes ", "2023-01-01"))
	assert.False(t, svc.IsDuplicate(roster, "Ana Reyes", "2023-01-02"))
	assert.False(t, svc.IsDuplicate(roster, "Ana Reyes Jr", "2023-01-01"))
}
