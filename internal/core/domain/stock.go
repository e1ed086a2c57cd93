package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovementType says which direction inventory moved.
type StockMovementType string

const (
	StockIn         StockMovementType = "IN"
	StockOut        StockMovementType = "OUT"
	StockAdjustment StockMovementType = "ADJUSTMENT"
)

// StockMovement records a change in on-hand quantity for a product, with the
// valuation needed to post it to the ledger.
type StockMovement struct {
	MovementID   string            `json:"movementID"` // Primary Key (UUID)
	BusinessID   string            `json:"businessID"` // FK -> businesses.business_id (NON-NULL)
	ProductID    string            `json:"productID"`
	MovementType StockMovementType `json:"movementType"`
	Quantity     decimal.Decimal   `json:"quantity"`
	UnitCost     decimal.Decimal   `json:"unitCost"`
	TotalValue   decimal.Decimal   `json:"totalValue"` // Quantity x UnitCost; recomputed on every write
	MovementDate time.Time         `json:"movementDate"`
	Reference    string            `json:"reference"`
	Notes        string            `json:"notes"`
	AuditFields
}
