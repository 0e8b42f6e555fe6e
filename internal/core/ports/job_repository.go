package ports

import (
	"context"

	"github.com/jobtrail/jobtrail-api/internal/core/domain"
)

// JobPatch carries a partial update. Nil fields are left untouched;
// non-nil fields are merged into the stored record.
type JobPatch struct {
	Company *string
	Role    *string
	Status  *domain.JobStatus
	Notes   *string
}

// Empty reports whether the patch carries no fields at all.
func (p JobPatch) Empty() bool {
	return p.Company == nil && p.Role == nil && p.Status == nil && p.Notes == nil
}

// JobRepository defines persistence operations for job records. Every
// method that targets a single record matches on (id, ownerID) in one
// query, so a record owned by someone else behaves exactly like a
// missing one (domain.ErrJobNotFound).
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// FindByOwner returns all jobs of ownerID, most recently updated first.
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Job, error)
	// FindAndUpdate merges patch into the record matching (id, ownerID),
	// refreshes updated_at, and returns the updated record.
	FindAndUpdate(ctx context.Context, id, ownerID string, patch JobPatch) (*domain.Job, error)
	// FindAndDelete removes the record matching (id, ownerID).
	FindAndDelete(ctx context.Context, id, ownerID string) error
}
