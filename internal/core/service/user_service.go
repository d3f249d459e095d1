package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

// UserService exposes user reads and self-service mutations. Every returned
// profile is the public projection; password hash and role never leave the
// service.
type UserService struct {
	users  ports.UserRepository
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, audit ports.AuditRecorder, logger zerolog.Logger) *UserService {
	return &UserService{users: users, audit: audit, logger: logger}
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

// List returns every user's public profile. An empty registry yields an empty
// slice, not an error.
func (s *UserService) List(ctx context.Context) ([]domain.UserProfile, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	profiles := make([]domain.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	return profiles, nil
}

// UpdateCurrent merges the supplied fields into the principal's own record.
// The target id comes from the token, so no ownership check is needed.
func (s *UserService) UpdateCurrent(ctx context.Context, principal domain.Principal, input ports.UpdateUserInput) (*domain.UserProfile, error) {
	if err := domain.Authorize(principal, domain.OpSelfUpdate, ""); err != nil {
		return nil, err
	}

	var patch domain.UserPatch
	if input.UserName != "" {
		patch.UserName = &input.UserName
	}
	if input.Email != "" {
		patch.Email = &input.Email
	}
	if input.Password != "" {
		hash, err := hashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	user, err := s.users.UpdateByID(ctx, principal.ID, patch)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    principal.ID,
		Action:     domain.AuditUserUpdated,
		ResourceID: principal.ID,
		Timestamp:  time.Now().UTC(),
	})
	s.logger.Info().Str("user_id", principal.ID).Msg("user updated")

	profile := user.Profile()
	return &profile, nil
}

// DeleteCurrent removes the principal's own account and returns its prior
// public profile.
func (s *UserService) DeleteCurrent(ctx context.Context, principal domain.Principal) (*domain.UserProfile, error) {
	if err := domain.Authorize(principal, domain.OpSelfDelete, ""); err != nil {
		return nil, err
	}

	user, err := s.users.DeleteByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}

	s.audit.Record(domain.AuditEntry{
		ActorID:    principal.ID,
		Action:     domain.AuditUserDeleted,
		ResourceID: principal.ID,
		Timestamp:  time.Now().UTC(),
	})
	s.logger.Info().Str("user_id", principal.ID).Msg("user deleted")

	profile := user.Profile()
	return &profile, nil
}
