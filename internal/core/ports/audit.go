package ports

import (
	"context"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// AuditRecorder accepts audit entries for asynchronous processing. Recording
// must never block or fail the mutation that produced the entry.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditService processes a single audit entry dequeued by the dispatcher.
type AuditService interface {
	Process(ctx context.Context, entry domain.AuditEntry) error
}
