package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jobtrail/jobtrail-api/internal/core/domain"
	"github.com/jobtrail/jobtrail-api/internal/core/token"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func newTestAuthService() (*AuthService, *token.Manager) {
	tokens := token.NewManager("test-secret", time.Hour)
	return NewAuthService(newStubUserRepo(), tokens), tokens
}

func TestAuthService_Signup_Success(t *testing.T) {
	svc, tokens := newTestAuthService()

	result, err := svc.Signup(context.Background(), "alice@example.com", "s3cret123")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if result.User == nil || result.User.ID == "" {
		t.Fatalf("expected created user with id, got %+v", result.User)
	}
	if result.User.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", result.User.Email)
	}
	if result.User.PasswordHash == "s3cret123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("s3cret123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	claims, err := tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Signup_EmptyInput(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Signup(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), "a@example.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Signup(context.Background(), "bob@example.com", "pass1"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "bob@example.com", "pass2"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_SignupThenLogin(t *testing.T) {
	svc, tokens := newTestAuthService()

	if _, err := svc.Signup(context.Background(), "carol@example.com", "hunter22"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token, got empty")
	}
	if _, err := tokens.Verify(result.Token); err != nil {
		t.Fatalf("login token does not verify: %v", err)
	}
	if result.User.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", result.User)
	}
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.Signup(context.Background(), "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, unknownEmail := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if unknownEmail != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
	if wrongPass != unknownEmail {
		t.Fatalf("failure modes must be identical: %v vs %v", wrongPass, unknownEmail)
	}
}

func TestAuthService_Login_MalformedStoredHash(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["eve@example.com"] = &domain.User{
		ID:           "user_1",
		Email:        "eve@example.com",
		PasswordHash: "not-a-bcrypt-hash",
	}
	svc := NewAuthService(repo, token.NewManager("test-secret", time.Hour))

	// Fail closed: a corrupt hash must read as a credential mismatch.
	if _, err := svc.Login(context.Background(), "eve@example.com", "anything"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
