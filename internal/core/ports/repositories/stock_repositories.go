package repositories

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// StockReader defines read operations for stock movement data.
type StockReader interface {
	// FindMovementByID retrieves a stock movement by ID.
	FindMovementByID(ctx context.Context, businessID string, movementID string) (*domain.StockMovement, error)

	// ListMovementsByProduct retrieves a paginated list of movements for a product.
	ListMovementsByProduct(ctx context.Context, businessID string, productID string, limit int, offset int) ([]domain.StockMovement, error)
}

// StockWriter defines write operations for stock movement data.
type StockWriter interface {
	// SaveMovementTx persists a stock movement within an existing transaction.
	SaveMovementTx(ctx context.Context, tx pgx.Tx, movement domain.StockMovement) error
}

// StockRepositoryFacade combines all stock-related repository interfaces
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}

// StockRepositoryWithTx extends StockRepositoryFacade with transaction capabilities
type StockRepositoryWithTx interface {
	StockRepositoryFacade
	TransactionManager
}
