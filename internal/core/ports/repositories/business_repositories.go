package repositories

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BusinessReader defines read operations for business (tenant) data.
type BusinessReader interface {
	// FindBusinessByID retrieves a business by ID.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// FindUserBusiness retrieves the membership linking a user to a business.
	FindUserBusiness(ctx context.Context, userID string, businessID string) (*domain.UserBusiness, error)

	// ListBusinessesByUser retrieves all businesses a user belongs to.
	ListBusinessesByUser(ctx context.Context, userID string) ([]domain.Business, error)
}

// BusinessWriter defines write operations for business data.
type BusinessWriter interface {
	// SaveBusinessTx persists a business within an existing transaction, so the
	// default chart of accounts can be seeded atomically with it.
	SaveBusinessTx(ctx context.Context, tx pgx.Tx, business domain.Business) error

	// SaveUserBusinessTx persists a membership row within an existing transaction.
	SaveUserBusinessTx(ctx context.Context, tx pgx.Tx, link domain.UserBusiness) error
}

// BusinessRepositoryFacade combines all business-related repository interfaces
type BusinessRepositoryFacade interface {
	BusinessReader
	BusinessWriter
}

// BusinessRepositoryWithTx extends BusinessRepositoryFacade with transaction capabilities
type BusinessRepositoryWithTx interface {
	BusinessRepositoryFacade
	TransactionManager
}
