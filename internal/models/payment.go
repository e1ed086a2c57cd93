package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a payments row.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	BusinessID    string          `db:"business_id"`
	PaymentNumber string          `db:"payment_number"`
	PaymentType   string          `db:"payment_type"`
	PaymentMethod string          `db:"payment_method"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentDate   time.Time       `db:"payment_date"`
	CustomerID    string          `db:"customer_id"` // Nullable
	VendorID      string          `db:"vendor_id"`   // Nullable
	InvoiceID     string          `db:"invoice_id"`  // Nullable
	Reference     string          `db:"reference"`
	Notes         string          `db:"notes"`
	AuditFields
}

// MobileMoneyTransaction represents a mobile_money_transactions row.
type MobileMoneyTransaction struct {
	TransactionID string          `db:"transaction_id"`
	PaymentID     string          `db:"payment_id"`
	BusinessID    string          `db:"business_id"`
	Provider      string          `db:"provider"`
	PhoneNumber   string          `db:"phone_number"`
	Amount        decimal.Decimal `db:"amount"`
	Reference     string          `db:"reference"`
	CreatedAt     time.Time       `db:"created_at"`
}
