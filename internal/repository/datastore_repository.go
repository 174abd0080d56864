package repository

import (
	"context"
	"errors"
	"strconv"

	"cloud.google.com/go/datastore"

	"github.com/pesocar/gip-registry/internal/domain"
)

// recordKind is the Datastore kind holding roster entities.
const recordKind = "EmploymentRecord"

// DatastoreRepository stores records as Datastore entities with allocated
// numeric keys, rendered as decimal strings at the domain boundary.
type DatastoreRepository struct {
	client *datastore.Client
}

// NewDatastoreRepository wraps an existing Datastore client.
func NewDatastoreRepository(client *datastore.Client) *DatastoreRepository {
	return &DatastoreRepository{client: client}
}

func (r *DatastoreRepository) key(id string) (*datastore.Key, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}
	return datastore.IDKey(recordKind, n, nil), nil
}

func (r *DatastoreRepository) ListAll(ctx context.Context) ([]domain.EmploymentRecord, error) {
	var records []domain.EmploymentRecord
	keys, err := r.client.GetAll(ctx, datastore.NewQuery(recordKind), &records)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].ID = strconv.FormatInt(keys[i].ID, 10)
	}
	return records, nil
}

func (r *DatastoreRepository) GetByID(ctx context.Context, id string) (*domain.EmploymentRecord, error) {
	key, err := r.key(id)
	if err != nil {
		return nil, err
	}

	var rec domain.EmploymentRecord
	if err := r.client.Get(ctx, key, &rec); err != nil {
		if errors.Is(err, datastore.ErrNoSuchEntity) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}

func (r *DatastoreRepository) Insert(ctx context.Context, rec *domain.EmploymentRecord) (string, error) {
	key, err := r.client.Put(ctx, datastore.IncompleteKey(recordKind, nil), rec)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(key.ID, 10), nil
}

func (r *DatastoreRepository) Replace(ctx context.Context, id string, rec *domain.EmploymentRecord) error {
	key, err := r.key(id)
	if err != nil {
		return err
	}
	_, err = r.client.Put(ctx, key, rec)
	return err
}

func (r *DatastoreRepository) Remove(ctx context.Context, id string) error {
	key, err := r.key(id)
	if err != nil {
		return err
	}
	return r.client.Delete(ctx, key)
}
