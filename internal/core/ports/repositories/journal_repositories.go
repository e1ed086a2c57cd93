package repositories

import (
	"context"
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// JournalEntryReader defines read operations for journal entry data.
type JournalEntryReader interface {
	// FindEntryByID retrieves a specific journal entry (without lines) by ID.
	FindEntryByID(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves all lines of a single journal entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error)

	// FindLinesByEntryIDs retrieves lines for multiple entries, grouped by entry ID.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalEntryLine, error)

	// ListEntriesByBusiness retrieves a paginated list of entries using token-based
	// pagination ordered by transaction date descending.
	ListEntriesByBusiness(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalBalanceReader defines the aggregate reads the balance calculator needs.
type JournalBalanceReader interface {
	// SumPostedLinesByAccount returns the debit and credit totals over POSTED
	// entry lines hitting the account, optionally bounded by an as-of date
	// (inclusive, on the entry's transaction date).
	SumPostedLinesByAccount(ctx context.Context, businessID string, accountID string, asOf *time.Time) (totalDebit, totalCredit decimal.Decimal, err error)

	// HasLinesForAccount reports whether any journal line references the account.
	HasLinesForAccount(ctx context.Context, businessID string, accountID string) (bool, error)
}

// JournalEntryWriter defines write operations for journal entry data.
type JournalEntryWriter interface {
	// SaveEntry persists an entry and its lines atomically in its own transaction.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// SaveEntryTx persists an entry and its lines within an existing transaction,
	// used by document bridges that post alongside their own writes.
	SaveEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error

	// ReplaceEntry updates a draft entry's header and replaces all its lines.
	ReplaceEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateEntryStatus transitions an entry's status.
	UpdateEntryStatus(ctx context.Context, businessID string, entryID string, status domain.JournalStatus, userID string, now time.Time) error

	// UpdateEntryStatusTx transitions an entry's status within an existing transaction.
	UpdateEntryStatusTx(ctx context.Context, tx pgx.Tx, businessID string, entryID string, status domain.JournalStatus, userID string, now time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalBalanceReader
	JournalEntryWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
