package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection classifies an analytics transaction as money in or out.
type TransactionDirection string

const (
	DirectionIncome  TransactionDirection = "INCOME"
	DirectionExpense TransactionDirection = "EXPENSE"
)

// Transaction is a flat, denormalized record of a money movement kept for
// reporting and analytics feeds, written alongside the journal posting.
type Transaction struct {
	TransactionID string               `json:"transactionID"` // Primary Key (UUID)
	BusinessID    string               `json:"businessID"`    // FK -> businesses.business_id (NON-NULL)
	Direction     TransactionDirection `json:"direction"`
	Amount        decimal.Decimal      `json:"amount"`
	Category      string               `json:"category"` // e.g. "SALES", "PURCHASES"
	Description   string               `json:"description"`
	PaymentMethod PaymentMethod        `json:"paymentMethod"`
	ReferenceID   string               `json:"referenceID"` // Source document ID (payment, invoice)
	OccurredAt    time.Time            `json:"occurredAt"`
	AuditFields
}
