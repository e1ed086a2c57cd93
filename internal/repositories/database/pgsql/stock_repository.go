package pgsql

import (
	"context"
	"errors"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	"github.com/bizledger/biz_ledger_app/internal/models"
	"github.com/bizledger/biz_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const stockMovementColumns = `movement_id, business_id, product_id, movement_type, quantity, unit_cost, total_value, movement_date, reference, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxStockRepository struct {
	BaseRepository
}

// newPgxStockRepository creates a new repository for stock movement data.
func newPgxStockRepository(pool *pgxpool.Pool) portsrepo.StockRepositoryWithTx {
	return &PgxStockRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxStockRepository implements portsrepo.StockRepositoryWithTx
var _ portsrepo.StockRepositoryWithTx = (*PgxStockRepository)(nil)

func scanStockMovement(row pgx.Row) (*models.StockMovement, error) {
	var m models.StockMovement
	err := row.Scan(
		&m.MovementID,
		&m.BusinessID,
		&m.ProductID,
		&m.MovementType,
		&m.Quantity,
		&m.UnitCost,
		&m.TotalValue,
		&m.MovementDate,
		&m.Reference,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveMovementTx persists a stock movement within an existing transaction.
func (r *PgxStockRepository) SaveMovementTx(ctx context.Context, tx pgx.Tx, movement domain.StockMovement) error {
	modelMov := mapping.ToModelStockMovement(movement)
	query := `
		INSERT INTO stock_movements (` + stockMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, query,
		modelMov.MovementID,
		modelMov.BusinessID,
		modelMov.ProductID,
		modelMov.MovementType,
		modelMov.Quantity,
		modelMov.UnitCost,
		modelMov.TotalValue,
		modelMov.MovementDate,
		modelMov.Reference,
		modelMov.Notes,
		modelMov.CreatedAt,
		modelMov.CreatedBy,
		modelMov.LastUpdatedAt,
		modelMov.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert stock movement "+modelMov.MovementID, err)
	}
	return nil
}

// FindMovementByID retrieves a stock movement by ID.
func (r *PgxStockRepository) FindMovementByID(ctx context.Context, businessID string, movementID string) (*domain.StockMovement, error) {
	query := `
		SELECT ` + stockMovementColumns + `
		FROM stock_movements
		WHERE business_id = $1 AND movement_id = $2;
	`
	m, err := scanStockMovement(r.Pool.QueryRow(ctx, query, businessID, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find stock movement by ID "+movementID, err)
	}
	mov := mapping.ToDomainStockMovement(*m)
	return &mov, nil
}

// ListMovementsByProduct retrieves a paginated list of movements for a product.
func (r *PgxStockRepository) ListMovementsByProduct(ctx context.Context, businessID string, productID string, limit int, offset int) ([]domain.StockMovement, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + stockMovementColumns + `
		FROM stock_movements
		WHERE business_id = $1 AND product_id = $2
		ORDER BY movement_date DESC, created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, businessID, productID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list stock movements for product "+productID, err)
	}
	defer rows.Close()

	movements := []models.StockMovement{}
	for rows.Next() {
		m, err := scanStockMovement(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock movement row", err)
		}
		movements = append(movements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock movement rows", err)
	}
	return mapping.ToDomainStockMovementSlice(movements), nil
}
