package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jobtrail/jobtrail-api/internal/core/domain"
	"github.com/jobtrail/jobtrail-api/internal/core/ports"
	"github.com/jobtrail/jobtrail-api/internal/core/token"
)

// dummyHash is a bcrypt hash of a random string nobody knows. Login runs
// a compare against it when the email does not exist, so the unknown-email
// and wrong-password paths cost roughly the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements signup and login over a user repository,
// bcrypt password hashing, and a token manager.
type AuthService struct {
	repo   ports.UserRepository
	tokens *token.Manager
}

func NewAuthService(repo ports.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Signup registers a new account and returns it with a fresh token.
// The FindByEmail pre-check is a fast path only: the unique index on
// email is the authoritative guard against concurrent signups.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	t, err := s.tokens.Issue(created.ID, created.Email)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{User: created, Token: t}, nil
}

// Login authenticates an existing account. Unknown email and wrong
// password both come back as ErrInvalidCredentials so the response never
// reveals which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// A malformed stored hash also fails the compare: fail closed.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	t, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{User: user, Token: t}, nil
}
