package service

import (
	"context"
	"fmt"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User
	seq   int
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

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("u%d", r.seq)
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateByID(_ context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.UserName != nil {
		u.UserName = *patch.UserName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

type stubCatRepo struct {
	cats map[string]*domain.Cat
	seq  int
}

func newStubCatRepo() *stubCatRepo {
	return &stubCatRepo{cats: make(map[string]*domain.Cat)}
}

func cloneCat(c *domain.Cat) *domain.Cat {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCatRepo) Create(_ context.Context, cat *domain.Cat) (*domain.Cat, error) {
	r.seq++
	clone := cloneCat(cat)
	clone.ID = fmt.Sprintf("c%d", r.seq)
	r.cats[clone.ID] = cloneCat(clone)
	return clone, nil
}

func (r *stubCatRepo) FindByID(_ context.Context, id string) (*domain.Cat, error) {
	c, ok := r.cats[id]
	if !ok {
		return nil, domain.ErrCatNotFound
	}
	return cloneCat(c), nil
}

func (r *stubCatRepo) FindAll(_ context.Context) ([]*domain.Cat, error) {
	out := make([]*domain.Cat, 0, len(r.cats))
	for _, c := range r.cats {
		out = append(out, cloneCat(c))
	}
	return out, nil
}

func (r *stubCatRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Cat, error) {
	out := []*domain.Cat{}
	for _, c := range r.cats {
		if c.Owner == ownerID {
			out = append(out, cloneCat(c))
		}
	}
	return out, nil
}

// FindWithinGeometry mirrors the real Mongo $geoWithin query for an
// axis-aligned rectangle: ring point 0 is the top-right corner, point 2 the
// bottom-left, both as [lng, lat].
func (r *stubCatRepo) FindWithinGeometry(_ context.Context, polygon domain.Polygon) ([]*domain.Cat, error) {
	ring := polygon.Coordinates[0]
	tr, bl := ring[0], ring[2]

	out := []*domain.Cat{}
	for _, c := range r.cats {
		lng, lat := c.Location.Coordinates[0], c.Location.Coordinates[1]
		if lng >= bl[0] && lng <= tr[0] && lat >= bl[1] && lat <= tr[1] {
			out = append(out, cloneCat(c))
		}
	}
	return out, nil
}

func (r *stubCatRepo) UpdateByID(_ context.Context, id string, patch domain.CatPatch) (*domain.Cat, error) {
	c, ok := r.cats[id]
	if !ok {
		return nil, domain.ErrCatNotFound
	}
	if patch.CatName != nil {
		c.CatName = *patch.CatName
	}
	if patch.Weight != nil {
		c.Weight = *patch.Weight
	}
	if patch.Birthdate != nil {
		c.Birthdate = *patch.Birthdate
	}
	if patch.Owner != nil {
		c.Owner = *patch.Owner
	}
	return cloneCat(c), nil
}

func (r *stubCatRepo) DeleteByID(_ context.Context, id string) (*domain.Cat, error) {
	c, ok := r.cats[id]
	if !ok {
		return nil, domain.ErrCatNotFound
	}
	delete(r.cats, id)
	return c, nil
}

// recordingAudit captures entries synchronously for assertions.
type recordingAudit struct {
	entries []domain.AuditEntry
}

func (a *recordingAudit) Record(entry domain.AuditEntry) {
	a.entries = append(a.entries, entry)
}
