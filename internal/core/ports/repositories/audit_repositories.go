package repositories

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AuditRepository persists the audit trail.
type AuditRepository interface {
	// SaveAuditLog persists an audit record outside any caller transaction.
	// Used for best-effort trails written after a commit.
	SaveAuditLog(ctx context.Context, log domain.AuditLog) error

	// SaveAuditLogTx persists an audit record within an existing transaction,
	// so the trail commits or rolls back with the change it describes.
	SaveAuditLogTx(ctx context.Context, tx pgx.Tx, log domain.AuditLog) error

	// ListAuditLogs retrieves audit records for an entity, newest first.
	ListAuditLogs(ctx context.Context, businessID string, entityType string, entityID string, limit int) ([]domain.AuditLog, error)
}
