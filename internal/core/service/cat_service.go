package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

// CatService implements cat CRUD with ownership enforcement and the
// bounding-box query.
type CatService struct {
	cats   ports.CatRepository
	users  ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewCatService(cats ports.CatRepository, users ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *CatService {
	return &CatService{cats: cats, users: users, audit: audit, logger: logger}
}

func (s *CatService) GetByID(ctx context.Context, id string) (*domain.Cat, error) {
	return s.cats.FindByID(ctx, id)
}

func (s *CatService) List(ctx context.Context) ([]*domain.Cat, error) {
	return s.cats.FindAll(ctx)
}

// ListByOwner returns the principal's own cats.
func (s *CatService) ListByOwner(ctx context.Context, principal domain.Principal) ([]*domain.Cat, error) {
	if !principal.Authenticated() {
		return nil, domain.ErrUnauthorized
	}
	return s.cats.FindByOwner(ctx, principal.ID)
}

// FindWithinBounds parses the two "lat,lng" corner strings, builds the closed
// rectangle ring, and returns every cat inside it.
func (s *CatService) FindWithinBounds(ctx context.Context, topRight, bottomLeft string) ([]*domain.Cat, error) {
	tr, err := domain.ParseCorner(topRight)
	if err != nil {
		return nil, err
	}
	bl, err := domain.ParseCorner(bottomLeft)
	if err != nil {
		return nil, err
	}

	bounds := domain.RectangleBounds(tr, bl)
	return s.cats.FindWithinGeometry(ctx, bounds)
}

// Create stores a new cat owned by the acting principal. Any client-supplied
// owner value has already been discarded by the transport layer; the owner
// here is always the principal.
func (s *CatService) Create(ctx context.Context, principal domain.Principal, input ports.CreateCatInput) (*domain.Cat, error) {
	if err := domain.Authorize(principal, domain.OpCreateCat, ""); err != nil {
		return nil, err
	}

	cat := &domain.Cat{
		CatName:   input.CatName,
		Weight:    input.Weight,
		Filename:  input.Filename,
		Birthdate: input.Birthdate,
		Location:  input.Location,
		Owner:     principal.ID,
	}

	created, err := s.cats.Create(ctx, cat)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create cat")
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    principal.ID,
		Action:     domain.AuditCatCreated,
		ResourceID: created.ID,
		Timestamp:  time.Now().UTC(),
	})
	s.logger.Info().Str("cat_id", created.ID).Str("owner", principal.ID).Msg("cat created")
	return created, nil
}

// UpdateOwn merges the supplied fields into a cat owned by the principal.
// A failed lookup is NotFound; a denied policy on an existing cat is
// Forbidden. The split is deliberate.
func (s *CatService) UpdateOwn(ctx context.Context, principal domain.Principal, id string, input ports.UpdateCatInput) (*domain.Cat, error) {
	cat, err := s.cats.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(principal, domain.OpCatUpdate, cat.Owner); err != nil {
		return nil, err
	}

	patch := domain.CatPatch{
		CatName:   input.CatName,
		Weight:    input.Weight,
		Birthdate: input.Birthdate,
	}
	updated, err := s.cats.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    principal.ID,
		Action:     domain.AuditCatUpdated,
		ResourceID: id,
		Timestamp:  time.Now().UTC(),
	})
	return updated, nil
}

// DeleteOwn removes a cat owned by the principal and returns its prior state.
func (s *CatService) DeleteOwn(ctx context.Context, principal domain.Principal, id string) (*domain.Cat, error) {
	cat, err := s.cats.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.Authorize(principal, domain.OpCatDelete, cat.Owner); err != nil {
		return nil, err
	}

	deleted, err := s.cats.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    principal.ID,
		Action:     domain.AuditCatDeleted,
		ResourceID: id,
		Timestamp:  time.Now().UTC(),
	})
	s.logger.Info().Str("cat_id", id).Str("actor", principal.ID).Msg("cat deleted")
	return deleted, nil
}

// Transfer reassigns a cat to a different owner. Admin route: gated on role,
// no ownership check. The new owner must exist.
func (s *CatService) Transfer(ctx context.Context, principal domain.Principal, id, newOwnerID string) (*domain.Cat, error) {
	if err := domain.Authorize(principal, domain.OpCatTransfer, ""); err != nil {
		return nil, err
	}
	if newOwnerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.users.FindByID(ctx, newOwnerID); err != nil {
		return nil, err
	}

	updated, err := s.cats.UpdateByID(ctx, id, domain.CatPatch{Owner: &newOwnerID})
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    principal.ID,
		Action:     domain.AuditCatTransferred,
		ResourceID: id,
		Timestamp:  time.Now().UTC(),
	})
	s.logger.Info().Str("cat_id", id).Str("new_owner", newOwnerID).Msg("cat ownership transferred")
	return updated, nil
}

// DeleteAny removes any cat regardless of ownership. Admin route.
func (s *CatService) DeleteAny(ctx context.Context, principal domain.Principal, id string) (*domain.Cat, error) {
	if err := domain.Authorize(principal, domain.OpCatAdminDelete, ""); err != nil {
		return nil, err
	}

	deleted, err := s.cats.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    principal.ID,
		Action:     domain.AuditCatDeleted,
		ResourceID: id,
		Timestamp:  time.Now().UTC(),
	})
	s.logger.Info().Str("cat_id", id).Str("actor", principal.ID).Msg("cat deleted by admin")
	return deleted, nil
}
