package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseInvoice represents a purchase_invoices row.
type PurchaseInvoice struct {
	PurchaseInvoiceID string          `db:"purchase_invoice_id"`
	BusinessID        string          `db:"business_id"`
	VendorID          string          `db:"vendor_id"`
	InvoiceNumber     string          `db:"invoice_number"`
	InvoiceDate       time.Time       `db:"invoice_date"`
	DueDate           time.Time       `db:"due_date"`
	Status            string          `db:"status"`
	Subtotal          decimal.Decimal `db:"subtotal"`
	TaxAmount         decimal.Decimal `db:"tax_amount"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	PaidAmount        decimal.Decimal `db:"paid_amount"`
	Balance           decimal.Decimal `db:"balance"`
	CurrencyCode      string          `db:"currency_code"`
	Notes             string          `db:"notes"`
	AuditFields
}

// PurchaseInvoiceItem represents a purchase_invoice_items row.
type PurchaseInvoiceItem struct {
	ItemID            string          `db:"item_id"`
	PurchaseInvoiceID string          `db:"purchase_invoice_id"`
	ProductID         string          `db:"product_id"`
	Quantity          decimal.Decimal `db:"quantity"`
	UnitCost          decimal.Decimal `db:"unit_cost"`
	TaxRate           decimal.Decimal `db:"tax_rate"`
	TaxAmount         decimal.Decimal `db:"tax_amount"`
	LineTotal         decimal.Decimal `db:"line_total"`
	Description       string          `db:"description"`
}
