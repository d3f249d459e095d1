package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

// AuthService implements registration, login, and token issuance.
type AuthService struct {
	users     ports.UserRepository
	audit     ports.AuditRecorder
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(users ports.UserRepository, audit ports.AuditRecorder, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, audit: audit, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates a new account. The stored role is always RoleUser; admin
// elevation happens out of band, never through this endpoint.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.UserName == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		UserName:     input.UserName,
		Email:        input.Email,
		Role:         domain.RoleUser,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    created.ID,
		Action:     domain.AuditUserRegistered,
		ResourceID: created.ID,
		Timestamp:  now,
	})
	return created, nil
}

// Login verifies the credentials and returns a signed token plus the account.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// An unknown email and a wrong password are indistinguishable to
		// the caller; a distinct not-found answer would reveal which
		// addresses have accounts.
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !verifyPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
