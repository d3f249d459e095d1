package ports

import (
	"context"
	"time"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// CreateCatInput carries everything needed to create a cat. Location is the
// pre-resolved [longitude, latitude] pair attached by the enrichment step and
// Filename the handle returned by the file store. The owner is always the
// acting principal, never a payload value.
type CreateCatInput struct {
	CatName   string
	Weight    float64
	Birthdate time.Time
	Filename  string
	Location  domain.Point
}

// UpdateCatInput carries the owner-route partial update. Nil fields are left
// untouched. The owner field is not updatable here.
type UpdateCatInput struct {
	CatName   *string
	Weight    *float64
	Birthdate *time.Time
}

// CatService exposes cat CRUD, the ownership rules around it, and the
// bounding-box query.
type CatService interface {
	GetByID(ctx context.Context, id string) (*domain.Cat, error)
	List(ctx context.Context) ([]*domain.Cat, error)
	ListByOwner(ctx context.Context, principal domain.Principal) ([]*domain.Cat, error)
	// FindWithinBounds parses the two "lat,lng" corner strings and returns
	// all cats inside the implied rectangle.
	FindWithinBounds(ctx context.Context, topRight, bottomLeft string) ([]*domain.Cat, error)
	Create(ctx context.Context, principal domain.Principal, input CreateCatInput) (*domain.Cat, error)
	UpdateOwn(ctx context.Context, principal domain.Principal, id string, input UpdateCatInput) (*domain.Cat, error)
	DeleteOwn(ctx context.Context, principal domain.Principal, id string) (*domain.Cat, error)
	// Transfer reassigns ownership; DeleteAny removes any cat. Both are
	// admin routes gated on role alone.
	Transfer(ctx context.Context, principal domain.Principal, id, newOwnerID string) (*domain.Cat, error)
	DeleteAny(ctx context.Context, principal domain.Principal, id string) (*domain.Cat, error)
}
