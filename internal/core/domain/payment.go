package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType distinguishes money coming in from money going out.
type PaymentType string

const (
	PaymentReceipt  PaymentType = "RECEIPT" // Money received from a customer
	PaymentOutgoing PaymentType = "PAYMENT" // Money paid to a vendor
)

// IsValid reports whether t is a known payment type.
func (t PaymentType) IsValid() bool {
	return t == PaymentReceipt || t == PaymentOutgoing
}

// PaymentMethod is the instrument used to move the money.
type PaymentMethod string

const (
	MethodCash        PaymentMethod = "CASH"
	MethodBank        PaymentMethod = "BANK"
	MethodMobileMoney PaymentMethod = "MOBILE_MONEY"
	MethodCheck       PaymentMethod = "CHECK"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodBank, MethodMobileMoney, MethodCheck:
		return true
	}
	return false
}

// Payment represents a money movement, optionally applied against an invoice
// or a purchase invoice.
type Payment struct {
	PaymentID     string          `json:"paymentID"`     // Primary Key (UUID)
	BusinessID    string          `json:"businessID"`    // FK -> businesses.business_id (NON-NULL)
	PaymentNumber string          `json:"paymentNumber"` // Sequential per business, e.g. "PAY-0001"
	PaymentType   PaymentType     `json:"paymentType"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	CustomerID    string          `json:"customerID,omitempty"` // Set for RECEIPT
	VendorID      string          `json:"vendorID,omitempty"`   // Set for PAYMENT
	InvoiceID     string          `json:"invoiceID,omitempty"`
	Reference     string          `json:"reference"`
	Notes         string          `json:"notes"`
	AuditFields
}

// MobileMoneyTransaction records the provider-side details for a payment made
// through a mobile money channel.
type MobileMoneyTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	PaymentID     string          `json:"paymentID"`     // FK -> payments.payment_id
	BusinessID    string          `json:"businessID"`
	Provider      string          `json:"provider"` // e.g. "MTN"
	PhoneNumber   string          `json:"phoneNumber"`
	Amount        decimal.Decimal `json:"amount"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"createdAt"`
}
