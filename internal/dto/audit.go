package dto

import (
	"encoding/json"
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
)

// AuditLogResponse defines the data returned for an audit trail record.
type AuditLogResponse struct {
	AuditID    string          `json:"auditID"`
	UserID     string          `json:"userID"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityID"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// ToAuditLogResponse converts a domain.AuditLog to its response DTO.
func ToAuditLogResponse(l *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditID:    l.AuditID,
		UserID:     l.UserID,
		Action:     string(l.Action),
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Details:    l.Details,
		CreatedAt:  l.CreatedAt,
	}
}

// ToListAuditLogResponse converts domain audit logs to response DTOs.
func ToListAuditLogResponse(ls []domain.AuditLog) []AuditLogResponse {
	res := make([]AuditLogResponse, len(ls))
	for i, l := range ls {
		res[i] = ToAuditLogResponse(&l)
	}
	return res
}
