package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of a sales invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "DRAFT"
	InvoiceSent      InvoiceStatus = "SENT"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// IsValid reports whether s is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// RecurringType is the repeat cadence of a recurring invoice.
type RecurringType string

const (
	RecurDaily     RecurringType = "DAILY"
	RecurWeekly    RecurringType = "WEEKLY"
	RecurMonthly   RecurringType = "MONTHLY"
	RecurQuarterly RecurringType = "QUARTERLY"
	RecurYearly    RecurringType = "YEARLY"
)

// NextDueDate computes the next occurrence after now for the cadence.
// Unknown cadences default to 30 days out.
func (t RecurringType) NextDueDate(now time.Time) time.Time {
	switch t {
	case RecurDaily:
		return now.AddDate(0, 0, 1)
	case RecurWeekly:
		return now.AddDate(0, 0, 7)
	case RecurMonthly:
		return now.AddDate(0, 1, 0)
	case RecurQuarterly:
		return now.AddDate(0, 3, 0)
	case RecurYearly:
		return now.AddDate(1, 0, 0)
	default:
		return now.AddDate(0, 0, 30)
	}
}

// Invoice represents a sales invoice. Balance is always TotalAmount minus
// PaidAmount; the three amount fields are recomputed on every write.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`  // Primary Key (UUID)
	BusinessID    string          `json:"businessID"` // FK -> businesses.business_id (NON-NULL)
	CustomerID    string          `json:"customerID"`
	InvoiceNumber string          `json:"invoiceNumber"` // Sequential per business, e.g. "INV-00001"
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       time.Time       `json:"dueDate"`
	Status        InvoiceStatus   `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	Balance       decimal.Decimal `json:"balance"`
	CurrencyCode  string          `json:"currencyCode"`
	Notes         string          `json:"notes"`
	IsRecurring   bool            `json:"isRecurring"`
	RecurringType *RecurringType  `json:"recurringType,omitempty"`
	NextDueDate   *time.Time      `json:"nextDueDate,omitempty"`
	AuditFields
	Items []InvoiceItem `json:"items,omitempty"`
}

// InvoiceItem is a single product line on an invoice.
type InvoiceItem struct {
	ItemID      string          `json:"itemID"`    // Primary Key (UUID)
	InvoiceID   string          `json:"invoiceID"` // FK -> invoices.invoice_id
	ProductID   string          `json:"productID"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"` // Percentage, e.g. 19.25
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	LineTotal   decimal.Decimal `json:"lineTotal"` // Quantity x UnitPrice, before tax
	Description string          `json:"description"`
}
