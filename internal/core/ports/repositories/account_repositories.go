package repositories

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for chart-of-accounts data.
// Every method is scoped to a business; lookups never cross tenants.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, businessID string, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves the non-deleted account with the given code.
	FindAccountByCode(ctx context.Context, businessID string, accountCode string) (*domain.Account, error)

	// FindDeletedAccountByCode retrieves the most recently deleted account with
	// the given code, used to revive it instead of creating a duplicate.
	FindDeletedAccountByCode(ctx context.Context, businessID string, accountCode string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs, keyed by ID.
	FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error)

	// FindAccountsByCodes retrieves multiple non-deleted accounts by code, keyed by code.
	FindAccountsByCodes(ctx context.Context, businessID string, accountCodes []string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of non-deleted accounts for a business.
	ListAccounts(ctx context.Context, businessID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// SaveAccountsTx persists multiple accounts within an existing transaction,
	// used when seeding the default chart of accounts.
	SaveAccountsTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error

	// UpdateAccount updates an existing account's details and status.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
