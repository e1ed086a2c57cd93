package models

import "time"

// AuditLog represents an audit_logs row.
type AuditLog struct {
	AuditID    string    `db:"audit_id"`
	BusinessID string    `db:"business_id"`
	UserID     string    `db:"user_id"`
	Action     string    `db:"action"`
	EntityType string    `db:"entity_type"`
	EntityID   string    `db:"entity_id"`
	Details    []byte    `db:"details"` // JSONB
	CreatedAt  time.Time `db:"created_at"`
}
