package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/pesocar/gip-registry/internal/domain"
)

// MemoryRepository is an in-memory RecordRepository for tests and local
// development. IDs are monotonically increasing counters rendered as
// strings, mirroring how the SQL backend numbers rows.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[int64]domain.EmploymentRecord
	nextID  int64
}

// NewMemoryRepository returns an empty in-memory roster.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[int64]domain.EmploymentRecord)}
}

func (m *MemoryRepository) ListAll(_ context.Context) ([]domain.EmploymentRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int64, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]domain.EmploymentRecord, 0, len(ids))
	for _, id := range ids {
		rec := m.records[id]
		rec.ID = strconv.FormatInt(id, 10)
		out = append(out, rec)
	}
	return out, nil
}

func (m *MemoryRepository) GetByID(_ context.Context, id string) (*domain.EmploymentRecord, error) {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[key]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	rec.ID = id
	return &rec, nil
}

func (m *MemoryRepository) Insert(_ context.Context, rec *domain.EmploymentRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	stored := *rec
	stored.ID = strconv.FormatInt(id, 10)
	m.records[id] = stored
	return stored.ID, nil
}

func (m *MemoryRepository) Replace(_ context.Context, id string, rec *domain.EmploymentRecord) error {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[key]; !ok {
		return domain.ErrRecordNotFound
	}
	stored := *rec
	stored.ID = id
	m.records[key] = stored
	return nil
}

func (m *MemoryRepository) Remove(_ context.Context, id string) error {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[key]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(m.records, key)
	return nil
}
