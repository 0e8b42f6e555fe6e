package ports

import (
	"context"

	"github.com/jobtrail/jobtrail-api/internal/core/domain"
)

// UserRepository defines the persistence operations for user identities.
// Implementations must enforce email uniqueness at the storage layer;
// the service-level pre-check is only a fast path.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
