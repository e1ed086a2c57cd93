package services

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
)

type auditService struct {
	auditRepo   portsrepo.AuditRepository
	businessSvc portssvc.BusinessSvcFacade
}

// NewAuditService creates a new audit service.
func NewAuditService(auditRepo portsrepo.AuditRepository, businessSvc portssvc.BusinessSvcFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo, businessSvc: businessSvc}
}

// Ensure auditService implements the portssvc.AuditSvcFacade interface
var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// ListAuditLogs retrieves audit records for an entity, newest first.
func (s *auditService) ListAuditLogs(ctx context.Context, businessID string, entityType string, entityID string, limit int) ([]domain.AuditLog, error) {
	return s.auditRepo.ListAuditLogs(ctx, businessID, entityType, entityID, limit)
}
