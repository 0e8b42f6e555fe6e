package ports

import (
	"context"

	"github.com/jobtrail/jobtrail-api/internal/core/domain"
)

// Identity is the authenticated caller resolved by the auth middleware.
type Identity struct {
	UserID string
	Email  string
}

// CreateJobInput carries the client-controlled fields for a new job.
// Ownership is never part of the input: the service assigns it from the
// caller's identity.
type CreateJobInput struct {
	Company string
	Role    string
	Status  string // empty = default SAVED
	Notes   string
}

// UpdateJobInput is the partial-update DTO. Nil means "not supplied".
type UpdateJobInput struct {
	Company *string
	Role    *string
	Status  *string
	Notes   *string
}

// JobService defines the ownership-scoped use cases over job records.
type JobService interface {
	List(ctx context.Context, identity Identity) ([]*domain.Job, error)
	Create(ctx context.Context, identity Identity, input CreateJobInput) (*domain.Job, error)
	Update(ctx context.Context, identity Identity, id string, input UpdateJobInput) (*domain.Job, error)
	Delete(ctx context.Context, identity Identity, id string) error
}
