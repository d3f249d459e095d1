package ports

import (
	"context"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// CatRepository defines persistence operations for cats. All read methods
// return cats with the owner's public profile joined in.
type CatRepository interface {
	Create(ctx context.Context, cat *domain.Cat) (*domain.Cat, error)
	FindByID(ctx context.Context, id string) (*domain.Cat, error)
	FindAll(ctx context.Context) ([]*domain.Cat, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Cat, error)
	// FindWithinGeometry returns every cat whose location lies inside the
	// given polygon. Zero matches is a valid result.
	FindWithinGeometry(ctx context.Context, polygon domain.Polygon) ([]*domain.Cat, error)
	UpdateByID(ctx context.Context, id string, patch domain.CatPatch) (*domain.Cat, error)
	DeleteByID(ctx context.Context, id string) (*domain.Cat, error)
}
