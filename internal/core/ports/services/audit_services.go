package services

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
)

// AuditSvcFacade exposes the audit trail to the API surface. Writing the
// trail is done inside the services that make the changes.
type AuditSvcFacade interface {
	// ListAuditLogs retrieves audit records for an entity, newest first.
	ListAuditLogs(ctx context.Context, businessID string, entityType string, entityID string, limit int) ([]domain.AuditLog, error)
}
