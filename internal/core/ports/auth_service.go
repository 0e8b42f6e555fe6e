package ports

import (
	"context"

	"github.com/jobtrail/jobtrail-api/internal/core/domain"
)

// AuthResult carries the public user view plus a freshly issued token.
type AuthResult struct {
	User  *domain.User
	Token string
}

type AuthService interface {
	Signup(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
