package ports

import (
	"context"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// UpdateUserInput carries the self-service profile update payload. Empty
// fields are left untouched.
type UpdateUserInput struct {
	UserName string
	Email    string
	Password string
}

// UserService exposes user reads and self-service mutations. All returned
// profiles omit the password hash and role.
type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	List(ctx context.Context) ([]domain.UserProfile, error)
	UpdateCurrent(ctx context.Context, principal domain.Principal, input UpdateUserInput) (*domain.UserProfile, error)
	DeleteCurrent(ctx context.Context, principal domain.Principal) (*domain.UserProfile, error)
}
