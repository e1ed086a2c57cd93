package mapping

import (
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/models"
)

// ToModelPurchaseInvoice converts a domain PurchaseInvoice to a model PurchaseInvoice
func ToModelPurchaseInvoice(d domain.PurchaseInvoice) models.PurchaseInvoice {
	return models.PurchaseInvoice{
		PurchaseInvoiceID: d.PurchaseInvoiceID,
		BusinessID:        d.BusinessID,
		VendorID:          d.VendorID,
		InvoiceNumber:     d.InvoiceNumber,
		InvoiceDate:       d.InvoiceDate,
		DueDate:           d.DueDate,
		Status:            string(d.Status),
		Subtotal:          d.Subtotal,
		TaxAmount:         d.TaxAmount,
		TotalAmount:       d.TotalAmount,
		PaidAmount:        d.PaidAmount,
		Balance:           d.Balance,
		CurrencyCode:      d.CurrencyCode,
		Notes:             d.Notes,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseInvoice converts a model PurchaseInvoice to a domain PurchaseInvoice
func ToDomainPurchaseInvoice(m models.PurchaseInvoice) domain.PurchaseInvoice {
	return domain.PurchaseInvoice{
		PurchaseInvoiceID: m.PurchaseInvoiceID,
		BusinessID:        m.BusinessID,
		VendorID:          m.VendorID,
		InvoiceNumber:     m.InvoiceNumber,
		InvoiceDate:       m.InvoiceDate,
		DueDate:           m.DueDate,
		Status:            domain.PurchaseInvoiceStatus(m.Status),
		Subtotal:          m.Subtotal,
		TaxAmount:         m.TaxAmount,
		TotalAmount:       m.TotalAmount,
		PaidAmount:        m.PaidAmount,
		Balance:           m.Balance,
		CurrencyCode:      m.CurrencyCode,
		Notes:             m.Notes,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseInvoiceItem converts a domain item to its model
func ToModelPurchaseInvoiceItem(d domain.PurchaseInvoiceItem) models.PurchaseInvoiceItem {
	return models.PurchaseInvoiceItem{
		ItemID:            d.ItemID,
		PurchaseInvoiceID: d.PurchaseInvoiceID,
		ProductID:         d.ProductID,
		Quantity:          d.Quantity,
		UnitCost:          d.UnitCost,
		TaxRate:           d.TaxRate,
		TaxAmount:         d.TaxAmount,
		LineTotal:         d.LineTotal,
		Description:       d.Description,
	}
}

// ToDomainPurchaseInvoiceItem converts a model item to its domain form
func ToDomainPurchaseInvoiceItem(m models.PurchaseInvoiceItem) domain.PurchaseInvoiceItem {
	return domain.PurchaseInvoiceItem{
		ItemID:            m.ItemID,
		PurchaseInvoiceID: m.PurchaseInvoiceID,
		ProductID:         m.ProductID,
		Quantity:          m.Quantity,
		UnitCost:          m.UnitCost,
		TaxRate:           m.TaxRate,
		TaxAmount:         m.TaxAmount,
		LineTotal:         m.LineTotal,
		Description:       m.Description,
	}
}

// ToDomainPurchaseInvoiceItemSlice converts model items to domain items
func ToDomainPurchaseInvoiceItemSlice(ms []models.PurchaseInvoiceItem) []domain.PurchaseInvoiceItem {
	ds := make([]domain.PurchaseInvoiceItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchaseInvoiceItem(m)
	}
	return ds
}

// ToDomainPurchaseInvoiceSlice converts model purchase invoices to domain form
func ToDomainPurchaseInvoiceSlice(ms []models.PurchaseInvoice) []domain.PurchaseInvoice {
	ds := make([]domain.PurchaseInvoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchaseInvoice(m)
	}
	return ds
}
