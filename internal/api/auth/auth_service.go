package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkk-1817/crm-backend/internal/apperr"
	"github.com/mkk-1817/crm-backend/internal/db"
)

// UserStore is the credential store the auth service depends on. GetByEmail
// returns nil, nil when no user matches; Create surfaces apperr.ErrConflict
// when the email is already taken.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*db.User, error)
	Create(ctx context.Context, u *db.User) error
}

type Service struct {
	users  UserStore
	issuer *TokenIssuer
}

func NewService(users UserStore, issuer *TokenIssuer) *Service {
	return &Service{users: users, issuer: issuer}
}

// ValidateCredentials looks the user up by email and verifies the password.
// Unknown email and wrong password both return nil, nil so callers cannot
// tell which emails are registered. The returned user carries no hash.
func (s *Service) ValidateCredentials(ctx context.Context, email, password string) (*db.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if u == nil || !CheckPassword(password, u.PasswordHash) {
		return nil, nil
	}

	out := *u
	out.PasswordHash = ""
	return &out, nil
}

// IssueTokenFor mints a token for an already-authenticated user. No
// credential re-check happens here; it is the trusted half of login, used
// after registration and after guard success.
func (s *Service) IssueTokenFor(u *db.User) (string, error) {
	return s.issuer.Issue(u)
}

// LoginWithCredentials is the public login path: full validation, then a
// token. Bad credentials yield apperr.ErrUnauthorized; internal failures are
// wrapped, never handed back raw.
func (s *Service) LoginWithCredentials(ctx context.Context, email, password string) (string, error) {
	u, err := s.ValidateCredentials(ctx, email, password)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", apperr.ErrUnauthorized
	}
	return s.IssueTokenFor(u)
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// Register creates the user and logs them in, in one round trip. Validation
// happens before any hashing or store write.
func (s *Service) Register(ctx context.Context, in RegisterInput) (string, error) {
	if in.Email == "" {
		return "", fmt.Errorf("%w: email is required", apperr.ErrValidation)
	}
	if in.Password == "" {
		return "", fmt.Errorf("%w: password is required", apperr.ErrValidation)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	u := &db.User{Email: in.Email, Name: in.Name, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}

	return s.IssueTokenFor(u)
}

// GetProfile decodes the Authorization header value and re-fetches the user
// by the email claim, so the response reflects current stored data rather
// than the snapshot taken at token-issue time.
func (s *Service) GetProfile(ctx context.Context, bearerHeaderValue string) (*db.User, error) {
	tokenStr := strings.TrimPrefix(bearerHeaderValue, "Bearer ")

	claims, err := s.issuer.Decode(tokenStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrUnauthorized, err)
	}

	u, err := s.users.GetByEmail(ctx, claims.Email)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user no longer exists", apperr.ErrUnauthorized)
	}

	out := *u
	out.PasswordHash = ""
	return &out, nil
}
