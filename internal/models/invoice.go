package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus mirrors domain.InvoiceStatus at the persistence layer.
type InvoiceStatus string

// Invoice represents an invoices row.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	BusinessID    string          `db:"business_id"`
	CustomerID    string          `db:"customer_id"`
	InvoiceNumber string          `db:"invoice_number"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	DueDate       time.Time       `db:"due_date"`
	Status        InvoiceStatus   `db:"status"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	TaxAmount     decimal.Decimal `db:"tax_amount"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaidAmount    decimal.Decimal `db:"paid_amount"`
	Balance       decimal.Decimal `db:"balance"`
	CurrencyCode  string          `db:"currency_code"`
	Notes         string          `db:"notes"`
	IsRecurring   bool            `db:"is_recurring"`
	RecurringType *string         `db:"recurring_type"` // Nullable
	NextDueDate   *time.Time      `db:"next_due_date"`  // Nullable
	AuditFields
}

// InvoiceItem represents an invoice_items row.
type InvoiceItem struct {
	ItemID      string          `db:"item_id"`
	InvoiceID   string          `db:"invoice_id"`
	ProductID   string          `db:"product_id"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TaxRate     decimal.Decimal `db:"tax_rate"`
	TaxAmount   decimal.Decimal `db:"tax_amount"`
	LineTotal   decimal.Decimal `db:"line_total"`
	Description string          `db:"description"`
}
