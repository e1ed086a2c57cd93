package domain

import (
	"encoding/json"
	"time"
)

// AuditAction is the kind of change recorded in the audit trail.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionPost    AuditAction = "POST"
	AuditActionReverse AuditAction = "REVERSE"
)

// AuditLog captures who changed what, when. Details carries a JSON snapshot
// of the relevant fields at the time of the change.
type AuditLog struct {
	AuditID    string          `json:"auditID"`    // Primary Key (UUID)
	BusinessID string          `json:"businessID"` // FK -> businesses.business_id (NON-NULL)
	UserID     string          `json:"userID"`
	Action     AuditAction     `json:"action"`
	EntityType string          `json:"entityType"` // e.g. "JOURNAL_ENTRY", "INVOICE"
	EntityID   string          `json:"entityID"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
