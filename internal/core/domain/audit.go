package domain

import "time"

// Audit actions recorded for every mutation.
const (
	AuditUserRegistered = "user.registered"
	AuditUserUpdated    = "user.updated"
	AuditUserDeleted    = "user.deleted"
	AuditCatCreated     = "cat.created"
	AuditCatUpdated     = "cat.updated"
	AuditCatDeleted     = "cat.deleted"
	AuditCatTransferred = "cat.transferred"
)

// AuditEntry records a single mutation for the audit trail.
type AuditEntry struct {
	ActorID    string
	Action     string
	ResourceID string
	Timestamp  time.Time
}
