package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists entries to the audit
// trail. Processing runs on the dispatcher workers, off the request path.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, entry domain.AuditEntry) error {
	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("process audit entry: %w", err)
	}
	s.log.Debug().
		Str("actor", entry.ActorID).
		Str("action", entry.Action).
		Str("resource", entry.ResourceID).
		Msg("audit entry recorded")
	return nil
}
