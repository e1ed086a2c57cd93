package mapping

import (
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	m := models.Invoice{
		InvoiceID:     d.InvoiceID,
		BusinessID:    d.BusinessID,
		CustomerID:    d.CustomerID,
		InvoiceNumber: d.InvoiceNumber,
		InvoiceDate:   d.InvoiceDate,
		DueDate:       d.DueDate,
		Status:        models.InvoiceStatus(d.Status),
		Subtotal:      d.Subtotal,
		TaxAmount:     d.TaxAmount,
		TotalAmount:   d.TotalAmount,
		PaidAmount:    d.PaidAmount,
		Balance:       d.Balance,
		CurrencyCode:  d.CurrencyCode,
		Notes:         d.Notes,
		IsRecurring:   d.IsRecurring,
		NextDueDate:   d.NextDueDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.RecurringType != nil {
		rt := string(*d.RecurringType)
		m.RecurringType = &rt
	}
	return m
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	d := domain.Invoice{
		InvoiceID:     m.InvoiceID,
		BusinessID:    m.BusinessID,
		CustomerID:    m.CustomerID,
		InvoiceNumber: m.InvoiceNumber,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		Status:        domain.InvoiceStatus(m.Status),
		Subtotal:      m.Subtotal,
		TaxAmount:     m.TaxAmount,
		TotalAmount:   m.TotalAmount,
		PaidAmount:    m.PaidAmount,
		Balance:       m.Balance,
		CurrencyCode:  m.CurrencyCode,
		Notes:         m.Notes,
		IsRecurring:   m.IsRecurring,
		NextDueDate:   m.NextDueDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.RecurringType != nil {
		rt := domain.RecurringType(*m.RecurringType)
		d.RecurringType = &rt
	}
	return d
}

// ToModelInvoiceItem converts a domain InvoiceItem to a model InvoiceItem
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		ItemID:      d.ItemID,
		InvoiceID:   d.InvoiceID,
		ProductID:   d.ProductID,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		TaxRate:     d.TaxRate,
		TaxAmount:   d.TaxAmount,
		LineTotal:   d.LineTotal,
		Description: d.Description,
	}
}

// ToDomainInvoiceItem converts a model InvoiceItem to a domain InvoiceItem
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		ItemID:      m.ItemID,
		InvoiceID:   m.InvoiceID,
		ProductID:   m.ProductID,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		TaxRate:     m.TaxRate,
		TaxAmount:   m.TaxAmount,
		LineTotal:   m.LineTotal,
		Description: m.Description,
	}
}

// ToDomainInvoiceItemSlice converts a slice of model invoice items to domain items
func ToDomainInvoiceItemSlice(ms []models.InvoiceItem) []domain.InvoiceItem {
	ds := make([]domain.InvoiceItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceItem(m)
	}
	return ds
}

// ToDomainInvoiceSlice converts a slice of model Invoices to domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
