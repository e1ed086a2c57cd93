package services

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/dto"
)

// InventorySvcFacade defines operations for stock movements and their postings.
type InventorySvcFacade interface {
	// ReceiveStock records goods received into inventory and posts the
	// valuation to the ledger in one transaction.
	ReceiveStock(ctx context.Context, businessID string, req dto.CreateStockMovementRequest, userID string) (*domain.StockMovement, error)

	// GetMovementByID retrieves a stock movement by ID.
	GetMovementByID(ctx context.Context, businessID string, movementID string, userID string) (*domain.StockMovement, error)

	// ListMovementsByProduct retrieves a paginated movement history for a product.
	ListMovementsByProduct(ctx context.Context, businessID string, productID string, limit int, offset int) ([]domain.StockMovement, error)
}
