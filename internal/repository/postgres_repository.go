package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/pesocar/gip-registry/internal/domain"
)

// PostgresRepository keeps the roster in a single table: a few indexed
// columns for listing plus the full record as a JSONB payload. The long
// tail of demographic fields changes with every program cycle, so the
// payload column carries it verbatim instead of chasing schema migrations.
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository wraps an open connection pool.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the roster table when it does not exist yet.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS gip_records (
			id         SERIAL PRIMARY KEY,
			gip_id     TEXT NOT NULL DEFAULT '',
			full_name  TEXT NOT NULL DEFAULT '',
			start_date TEXT NOT NULL DEFAULT '',
			payload    JSONB NOT NULL
		)`)
	return err
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]domain.EmploymentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, payload FROM gip_records ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.EmploymentRecord
	for rows.Next() {
		var id int64
		var payload []byte
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, err
		}
		var rec domain.EmploymentRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, err
		}
		rec.ID = strconv.FormatInt(id, 10)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.EmploymentRecord, error) {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	var payload []byte
	err = r.db.QueryRowContext(ctx,
		`SELECT payload FROM gip_records WHERE id = $1`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	var rec domain.EmploymentRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, rec *domain.EmploymentRecord) (string, error) {
	payload, err := marshalRecord(rec)
	if err != nil {
		return "", err
	}

	var id int64
	err = r.db.QueryRowContext(ctx,
		`INSERT INTO gip_records (gip_id, full_name, start_date, payload)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		rec.GipID, rec.Name, rec.StartDate, payload).Scan(&id)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}

func (r *PostgresRepository) Replace(ctx context.Context, id string, rec *domain.EmploymentRecord) error {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	payload, err := marshalRecord(rec)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE gip_records SET gip_id = $1, full_name = $2, start_date = $3, payload = $4
		 WHERE id = $5`,
		rec.GipID, rec.Name, rec.StartDate, payload, key)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, id string) error {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return domain.ErrRecordNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM gip_records WHERE id = $1`, key)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// marshalRecord serializes the record without its storage identity; the id
// column is the source of truth for that.
func marshalRecord(rec *domain.EmploymentRecord) ([]byte, error) {
	clone := *rec
	clone.ID = ""
	clone.RowNumber = 0
	return json.Marshal(&clone)
}
