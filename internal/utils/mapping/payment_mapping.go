package mapping

import (
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		BusinessID:    d.BusinessID,
		PaymentNumber: d.PaymentNumber,
		PaymentType:   string(d.PaymentType),
		PaymentMethod: string(d.PaymentMethod),
		Amount:        d.Amount,
		PaymentDate:   d.PaymentDate,
		CustomerID:    d.CustomerID,
		VendorID:      d.VendorID,
		InvoiceID:     d.InvoiceID,
		Reference:     d.Reference,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		BusinessID:    m.BusinessID,
		PaymentNumber: m.PaymentNumber,
		PaymentType:   domain.PaymentType(m.PaymentType),
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Amount:        m.Amount,
		PaymentDate:   m.PaymentDate,
		CustomerID:    m.CustomerID,
		VendorID:      m.VendorID,
		InvoiceID:     m.InvoiceID,
		Reference:     m.Reference,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}

// ToModelMobileMoneyTransaction converts a domain MobileMoneyTransaction to its model
func ToModelMobileMoneyTransaction(d domain.MobileMoneyTransaction) models.MobileMoneyTransaction {
	return models.MobileMoneyTransaction{
		TransactionID: d.TransactionID,
		PaymentID:     d.PaymentID,
		BusinessID:    d.BusinessID,
		Provider:      d.Provider,
		PhoneNumber:   d.PhoneNumber,
		Amount:        d.Amount,
		Reference:     d.Reference,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainMobileMoneyTransaction converts a model MobileMoneyTransaction to its domain form
func ToDomainMobileMoneyTransaction(m models.MobileMoneyTransaction) domain.MobileMoneyTransaction {
	return domain.MobileMoneyTransaction{
		TransactionID: m.TransactionID,
		PaymentID:     m.PaymentID,
		BusinessID:    m.BusinessID,
		Provider:      m.Provider,
		PhoneNumber:   m.PhoneNumber,
		Amount:        m.Amount,
		Reference:     m.Reference,
		CreatedAt:     m.CreatedAt,
	}
}
