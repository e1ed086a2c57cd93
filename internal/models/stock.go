package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovement represents a stock_movements row.
type StockMovement struct {
	MovementID   string          `db:"movement_id"`
	BusinessID   string          `db:"business_id"`
	ProductID    string          `db:"product_id"`
	MovementType string          `db:"movement_type"`
	Quantity     decimal.Decimal `db:"quantity"`
	UnitCost     decimal.Decimal `db:"unit_cost"`
	TotalValue   decimal.Decimal `db:"total_value"`
	MovementDate time.Time       `db:"movement_date"`
	Reference    string          `db:"reference"`
	Notes        string          `db:"notes"`
	AuditFields
}
