package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transactions row, the denormalized analytics feed.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	BusinessID    string          `db:"business_id"`
	Direction     string          `db:"direction"`
	Amount        decimal.Decimal `db:"amount"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	PaymentMethod string          `db:"payment_method"`
	ReferenceID   string          `db:"reference_id"`
	OccurredAt    time.Time       `db:"occurred_at"`
	AuditFields
}
