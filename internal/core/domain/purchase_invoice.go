package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseInvoiceStatus is the lifecycle state of a vendor bill.
type PurchaseInvoiceStatus string

const (
	PurchaseDraft     PurchaseInvoiceStatus = "DRAFT"
	PurchaseReceived  PurchaseInvoiceStatus = "RECEIVED"
	PurchasePaid      PurchaseInvoiceStatus = "PAID"
	PurchaseCancelled PurchaseInvoiceStatus = "CANCELLED"
)

// IsValid reports whether s is a known purchase invoice status.
func (s PurchaseInvoiceStatus) IsValid() bool {
	switch s {
	case PurchaseDraft, PurchaseReceived, PurchasePaid, PurchaseCancelled:
		return true
	}
	return false
}

// PurchaseInvoice represents a vendor bill. Amount fields mirror Invoice:
// Balance is TotalAmount minus PaidAmount, recomputed on every write.
type PurchaseInvoice struct {
	PurchaseInvoiceID string                `json:"purchaseInvoiceID"` // Primary Key (UUID)
	BusinessID        string                `json:"businessID"`        // FK -> businesses.business_id (NON-NULL)
	VendorID          string                `json:"vendorID"`
	InvoiceNumber     string                `json:"invoiceNumber"` // Sequential per business, e.g. "PINV-0001"
	InvoiceDate       time.Time             `json:"invoiceDate"`
	DueDate           time.Time             `json:"dueDate"`
	Status            PurchaseInvoiceStatus `json:"status"`
	Subtotal          decimal.Decimal       `json:"subtotal"`
	TaxAmount         decimal.Decimal       `json:"taxAmount"`
	TotalAmount       decimal.Decimal       `json:"totalAmount"`
	PaidAmount        decimal.Decimal       `json:"paidAmount"`
	Balance           decimal.Decimal       `json:"balance"`
	CurrencyCode      string                `json:"currencyCode"`
	Notes             string                `json:"notes"`
	AuditFields
	Items []PurchaseInvoiceItem `json:"items,omitempty"`
}

// PurchaseInvoiceItem is a single product line on a purchase invoice.
type PurchaseInvoiceItem struct {
	ItemID            string          `json:"itemID"`            // Primary Key (UUID)
	PurchaseInvoiceID string          `json:"purchaseInvoiceID"` // FK -> purchase_invoices.purchase_invoice_id
	ProductID         string          `json:"productID"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitCost          decimal.Decimal `json:"unitCost"`
	TaxRate           decimal.Decimal `json:"taxRate"`
	TaxAmount         decimal.Decimal `json:"taxAmount"`
	LineTotal         decimal.Decimal `json:"lineTotal"`
	Description       string          `json:"description"`
}
