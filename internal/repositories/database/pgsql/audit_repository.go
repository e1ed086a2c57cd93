package pgsql

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	"github.com/bizledger/biz_ledger_app/internal/models"
	"github.com/bizledger/biz_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const auditColumns = `audit_id, business_id, user_id, action, entity_type, entity_id, details, created_at`

const insertAuditQuery = `
	INSERT INTO audit_logs (` + auditColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the audit trail.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepository
var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

// SaveAuditLog persists an audit record outside any caller transaction.
func (r *PgxAuditRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	m := mapping.ToModelAuditLog(log)
	_, err := r.Pool.Exec(ctx, insertAuditQuery,
		m.AuditID, m.BusinessID, m.UserID, m.Action, m.EntityType, m.EntityID, m.Details, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log "+m.AuditID, err)
	}
	return nil
}

// SaveAuditLogTx persists an audit record within an existing transaction.
func (r *PgxAuditRepository) SaveAuditLogTx(ctx context.Context, tx pgx.Tx, log domain.AuditLog) error {
	m := mapping.ToModelAuditLog(log)
	_, err := tx.Exec(ctx, insertAuditQuery,
		m.AuditID, m.BusinessID, m.UserID, m.Action, m.EntityType, m.EntityID, m.Details, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log "+m.AuditID, err)
	}
	return nil
}

// ListAuditLogs retrieves audit records for an entity, newest first.
func (r *PgxAuditRepository) ListAuditLogs(ctx context.Context, businessID string, entityType string, entityID string, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT ` + auditColumns + `
		FROM audit_logs
		WHERE business_id = $1 AND entity_type = $2 AND entity_id = $3
		ORDER BY created_at DESC
		LIMIT $4;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, entityType, entityID, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list audit logs for "+entityType+" "+entityID, err)
	}
	defer rows.Close()

	logs := []models.AuditLog{}
	for rows.Next() {
		var m models.AuditLog
		err := rows.Scan(
			&m.AuditID,
			&m.BusinessID,
			&m.UserID,
			&m.Action,
			&m.EntityType,
			&m.EntityID,
			&m.Details,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan audit log row", err)
		}
		logs = append(logs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating audit log rows", err)
	}
	return mapping.ToDomainAuditLogSlice(logs), nil
}
