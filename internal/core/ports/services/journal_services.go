package services

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/jackc/pgx/v5"
)

// JournalReaderSvc defines read operations for journal entry data
type JournalReaderSvc interface {
	// GetEntryByID retrieves a journal entry with its lines.
	GetEntryByID(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error)

	// ListEntries retrieves a paginated list of entries for a business.
	ListEntries(ctx context.Context, businessID string, userID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal entry data
type JournalWriterSvc interface {
	// CreateEntry validates, numbers and persists a new POSTED journal entry.
	CreateEntry(ctx context.Context, businessID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// CreateDraftEntry persists a DRAFT entry. Drafts must still balance.
	CreateDraftEntry(ctx context.Context, businessID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// UpdateDraftEntry edits a DRAFT entry; posted entries are immutable.
	UpdateDraftEntry(ctx context.Context, businessID string, entryID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// PostDraftEntry transitions a DRAFT entry to POSTED after revalidation.
	PostDraftEntry(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error)

	// ReverseEntry creates a mirror-image entry dated now, marks the original
	// REVERSED and returns the new entry. Reversing twice is a conflict.
	ReverseEntry(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error)
}

// JournalPosterSvc is used by document bridges to post alongside their own
// writes in a single database transaction.
type JournalPosterSvc interface {
	// PostEntryInTx validates, numbers and persists a POSTED entry within the
	// caller's transaction.
	PostEntryInTx(ctx context.Context, tx pgx.Tx, businessID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalPosterSvc
}
