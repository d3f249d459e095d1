package ports

import (
	"context"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindAll returns every user. An empty slice is a valid result, not an error.
	FindAll(ctx context.Context) ([]*domain.User, error)
	// UpdateByID merges the non-nil patch fields into the stored record and
	// returns the post-update state.
	UpdateByID(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
	// DeleteByID removes the record and returns its prior state.
	DeleteByID(ctx context.Context, id string) (*domain.User, error)
}
