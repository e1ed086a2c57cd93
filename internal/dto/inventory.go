package dto

import (
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStockMovementRequest defines the data needed to record inventory
// received into stock. TotalValue is computed from quantity and unit cost.
type CreateStockMovementRequest struct {
	ProductID    string          `json:"productID" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost     decimal.Decimal `json:"unitCost" binding:"required"`
	MovementDate time.Time       `json:"movementDate" binding:"required"`
	Reference    string          `json:"reference"`
	Notes        string          `json:"notes"`
}

// StockMovementResponse defines the data returned for a stock movement.
type StockMovementResponse struct {
	MovementID   string                   `json:"movementID"`
	BusinessID   string                   `json:"businessID"`
	ProductID    string                   `json:"productID"`
	MovementType domain.StockMovementType `json:"movementType"`
	Quantity     decimal.Decimal          `json:"quantity"`
	UnitCost     decimal.Decimal          `json:"unitCost"`
	TotalValue   decimal.Decimal          `json:"totalValue"`
	MovementDate time.Time                `json:"movementDate"`
	Reference    string                   `json:"reference"`
	Notes        string                   `json:"notes"`
	CreatedAt    time.Time                `json:"createdAt"`
	CreatedBy    string                   `json:"createdBy"`
}

// ToStockMovementResponse converts a domain.StockMovement to its response DTO.
func ToStockMovementResponse(m *domain.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		MovementID:   m.MovementID,
		BusinessID:   m.BusinessID,
		ProductID:    m.ProductID,
		MovementType: m.MovementType,
		Quantity:     m.Quantity,
		UnitCost:     m.UnitCost,
		TotalValue:   m.TotalValue,
		MovementDate: m.MovementDate,
		Reference:    m.Reference,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		CreatedBy:    m.CreatedBy,
	}
}

// ToListStockMovementResponse converts domain movements to response DTOs.
func ToListStockMovementResponse(ms []domain.StockMovement) []StockMovementResponse {
	res := make([]StockMovementResponse, len(ms))
	for i, m := range ms {
		res[i] = ToStockMovementResponse(&m)
	}
	return res
}
