package domain

import "context"

// RecordRepository defines the interface for roster data access.
// Implementations must preserve field values verbatim and give
// read-after-write visibility for ListAll following Insert/Replace
// from the same caller.
type RecordRepository interface {
	ListAll(ctx context.Context) ([]EmploymentRecord, error)
	GetByID(ctx context.Context, id string) (*EmploymentRecord, error)
	Insert(ctx context.Context, rec *EmploymentRecord) (string, error)
	Replace(ctx context.Context, id string, rec *EmploymentRecord) error
	Remove(ctx context.Context, id string) error
}

// RecordIndex is the optional search index over the roster. It is an
// auxiliary view, never the source of truth: callers log indexing
// failures and move on.
type RecordIndex interface {
	Index(ctx context.Context, rec *EmploymentRecord) error
	Remove(ctx context.Context, id string) error
	SearchByName(ctx context.Context, query string) ([]RecordHit, error)
}
