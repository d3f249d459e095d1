package ports

import (
	"context"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// RegisterInput carries the registration payload. Any client-supplied role is
// discarded; the service always stores RoleUser.
type RegisterInput struct {
	UserName string
	Email    string
	Password string
}

// AuthService implements registration, login, and token issuance.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
