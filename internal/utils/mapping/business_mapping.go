package mapping

import (
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/models"
)

// ToModelBusiness converts a domain Business to a model Business
func ToModelBusiness(d domain.Business) models.Business {
	return models.Business{
		BusinessID:   d.BusinessID,
		BusinessName: d.BusinessName,
		CurrencyCode: d.CurrencyCode,
		TaxID:        d.TaxID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBusiness converts a model Business to a domain Business
func ToDomainBusiness(m models.Business) domain.Business {
	return domain.Business{
		BusinessID:   m.BusinessID,
		BusinessName: m.BusinessName,
		CurrencyCode: m.CurrencyCode,
		TaxID:        m.TaxID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserBusiness converts a model UserBusiness to its domain form
func ToDomainUserBusiness(m models.UserBusiness) domain.UserBusiness {
	return domain.UserBusiness{
		UserID:      m.UserID,
		BusinessID:  m.BusinessID,
		Role:        domain.UserBusinessRole(m.Role),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelUserBusiness converts a domain UserBusiness to its model form
func ToModelUserBusiness(d domain.UserBusiness) models.UserBusiness {
	return models.UserBusiness{
		UserID:      d.UserID,
		BusinessID:  d.BusinessID,
		Role:        string(d.Role),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
