package mapping

import (
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		BusinessID:    d.BusinessID,
		Direction:     string(d.Direction),
		Amount:        d.Amount,
		Category:      d.Category,
		Description:   d.Description,
		PaymentMethod: string(d.PaymentMethod),
		ReferenceID:   d.ReferenceID,
		OccurredAt:    d.OccurredAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		BusinessID:    m.BusinessID,
		Direction:     domain.TransactionDirection(m.Direction),
		Amount:        m.Amount,
		Category:      m.Category,
		Description:   m.Description,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		ReferenceID:   m.ReferenceID,
		OccurredAt:    m.OccurredAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts model transactions to domain form
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
