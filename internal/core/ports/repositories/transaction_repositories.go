package repositories

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionRepository persists the denormalized analytics feed written
// alongside ledger postings.
type TransactionRepository interface {
	// SaveTransactionTx persists an analytics transaction within an existing transaction.
	SaveTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// ListTransactions retrieves a paginated list of analytics transactions.
	ListTransactions(ctx context.Context, businessID string, limit int, offset int) ([]domain.Transaction, error)
}
