package services

import (
	"context"
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountReaderSvc defines read operations for chart-of-accounts data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, businessID string, accountID string, userID string) (*domain.Account, error)

	// GetAccountByCode retrieves a non-deleted account by its code.
	GetAccountByCode(ctx context.Context, businessID string, accountCode string, userID string) (*domain.Account, error)

	// GetAccountsByIDs retrieves multiple accounts by their IDs.
	GetAccountsByIDs(ctx context.Context, businessID string, accountIDs []string, userID string) (map[string]domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts for a business.
	ListAccounts(ctx context.Context, businessID string, limit int, offset int) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for chart-of-accounts data
type AccountWriterSvc interface {
	// CreateAccount persists a new account. Creating a code that belongs to a
	// deleted account revives that account instead of inserting a duplicate.
	CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)

	// UpdateAccount updates an existing account's mutable details.
	UpdateAccount(ctx context.Context, businessID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)

	// DeactivateAccount marks an account INACTIVE; it stays visible and keeps
	// its history but rejects new journal lines.
	DeactivateAccount(ctx context.Context, businessID string, accountID string, userID string) error

	// DeleteAccount marks an account DELETED. Fails with a conflict when any
	// journal line references the account.
	DeleteAccount(ctx context.Context, businessID string, accountID string, userID string) error

	// SeedDefaultAccounts creates any missing accounts of the default chart.
	// Idempotent: existing codes are left untouched.
	SeedDefaultAccounts(ctx context.Context, businessID string, userID string) ([]domain.Account, error)
}

// AccountCalculatorSvc defines calculation operations for account data
type AccountCalculatorSvc interface {
	// CalculateAccountBalance computes the account balance from posted journal
	// lines, expressed on the account's normal side. A nil asOf means now.
	CalculateAccountBalance(ctx context.Context, businessID string, accountID string, asOf *time.Time) (decimal.Decimal, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
