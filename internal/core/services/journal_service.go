package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/bizledger/biz_ledger_app/internal/middleware"
	"github.com/bizledger/biz_ledger_app/internal/utils/accounting"
	"github.com/jackc/pgx/v5"
)

var (
	ErrEntryUnbalanced   = errors.New("journal entry debits and credits do not balance")
	ErrEntryMinLines     = errors.New("journal entry must have at least two lines")
	ErrEntryMinAccounts  = errors.New("journal entry must affect at least two different accounts")
	ErrAccountNotUsable  = errors.New("account is not active")
	ErrEntryNotDraft     = errors.New("journal entry is not a draft")
	ErrEntryNotPosted    = errors.New("journal entry is not posted")
	ErrAlreadyReversed   = errors.New("journal entry has already been reversed")
	ErrPostedImmutable   = errors.New("posted journal entries cannot be edited")
	ErrReversedImmutable = errors.New("reversed journal entries cannot be edited")
)

// journalService implements the posting engine: validation, numbering,
// persistence and reversal of journal entries.
type journalService struct {
	journalRepo  portsrepo.JournalRepositoryWithTx
	accountRepo  portsrepo.AccountRepositoryFacade
	sequenceRepo portsrepo.SequenceRepository
	auditRepo    portsrepo.AuditRepository
	businessSvc  portssvc.BusinessSvcFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
	sequenceRepo portsrepo.SequenceRepository,
	auditRepo portsrepo.AuditRepository,
	businessSvc portssvc.BusinessSvcFacade,
) portssvc.JournalSvcFacade {
	return &journalService{
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		sequenceRepo: sequenceRepo,
		auditRepo:    auditRepo,
		businessSvc:  businessSvc,
	}
}

// Ensure journalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*journalService)(nil)

func toDomainLines(reqLines []dto.JournalLineRequest) []domain.JournalEntryLine {
	lines := make([]domain.JournalEntryLine, len(reqLines))
	for i, l := range reqLines {
		lines[i] = domain.JournalEntryLine{
			LineID:       uuid.NewString(),
			AccountID:    l.AccountID,
			DebitAmount:  l.DebitAmount,
			CreditAmount: l.CreditAmount,
			Description:  l.Description,
			Reference:    l.Reference,
		}
	}
	return lines
}

// validateLines enforces the balanced-entry invariants and checks that every
// referenced account exists and is ACTIVE within the business.
func (s *journalService) validateLines(ctx context.Context, businessID string, lines []domain.JournalEntryLine) error {
	if err := accounting.ValidateEntryBalance(lines); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	accountIDs := make([]string, 0, len(lines))
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			accountIDs = append(accountIDs, line.AccountID)
		}
	}
	if len(accountIDs) < 2 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEntryMinAccounts.Error())
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, businessID, accountIDs)
	if err != nil {
		return err
	}
	for _, acc := range accounts {
		if acc.Status != domain.AccountActive {
			return fmt.Errorf("%w: account %s (%s)", ErrAccountNotUsable, acc.AccountCode, acc.AccountName)
		}
	}
	return nil
}

// buildEntry assembles a numbered entry from the request, consuming a sequence
// number on the supplied transaction.
func (s *journalService) buildEntry(ctx context.Context, tx pgx.Tx, businessID string, req dto.CreateJournalEntryRequest, status domain.JournalStatus, userID string, now time.Time) (*domain.JournalEntry, error) {
	lines := toDomainLines(req.Lines)
	if err := s.validateLines(ctx, businessID, lines); err != nil {
		return nil, err
	}

	seq, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.DocKindJournalEntry)
	if err != nil {
		return nil, err
	}

	totalDebit, totalCredit := accounting.SumLines(lines)
	entry := &domain.JournalEntry{
		EntryID:         uuid.NewString(),
		BusinessID:      businessID,
		EntryNumber:     domain.DocKindJournalEntry.FormatNumber(seq),
		TransactionDate: req.TransactionDate,
		Description:     req.Description,
		Reference:       req.Reference,
		Status:          status,
		TotalDebit:      totalDebit,
		TotalCredit:     totalCredit,
		AuditFields:     domain.NewAuditFields(userID, now),
		Lines:           lines,
	}
	for i := range entry.Lines {
		entry.Lines[i].EntryID = entry.EntryID
	}
	return entry, nil
}

func (s *journalService) recordEntryAuditTx(ctx context.Context, tx pgx.Tx, entry *domain.JournalEntry, action domain.AuditAction, userID string, now time.Time) error {
	details, _ := json.Marshal(map[string]any{
		"entryNumber": entry.EntryNumber,
		"status":      entry.Status,
		"totalDebit":  entry.TotalDebit,
		"totalCredit": entry.TotalCredit,
	})
	return s.auditRepo.SaveAuditLogTx(ctx, tx, domain.AuditLog{
		AuditID:    uuid.NewString(),
		BusinessID: entry.BusinessID,
		UserID:     userID,
		Action:     action,
		EntityType: "JOURNAL_ENTRY",
		EntityID:   entry.EntryID,
		Details:    details,
		CreatedAt:  now,
	})
}

func (s *journalService) createEntryWithStatus(ctx context.Context, businessID string, req dto.CreateJournalEntryRequest, status domain.JournalStatus, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	now := time.Now()
	entry, err := s.buildEntry(ctx, tx, businessID, req, status, userID, now)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.SaveEntryTx(ctx, tx, *entry); err != nil {
		logger.Error("failed to save journal entry", slog.String("entry_id", entry.EntryID), slog.String("error", err.Error()))
		return nil, err
	}

	action := domain.AuditActionCreate
	if status == domain.Posted {
		action = domain.AuditActionPost
	}
	if err := s.recordEntryAuditTx(ctx, tx, entry, action, userID, now); err != nil {
		return nil, err
	}

	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("status", string(entry.Status)))
	return entry, nil
}

// CreateEntry validates, numbers and persists a new POSTED journal entry.
func (s *journalService) CreateEntry(ctx context.Context, businessID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	return s.createEntryWithStatus(ctx, businessID, req, domain.Posted, userID)
}

// CreateDraftEntry persists a DRAFT entry. Drafts must still balance.
func (s *journalService) CreateDraftEntry(ctx context.Context, businessID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	return s.createEntryWithStatus(ctx, businessID, req, domain.Draft, userID)
}

// PostEntryInTx validates, numbers and persists a POSTED entry within the
// caller's transaction. Used by document bridges so the document and its
// ledger posting commit or roll back together.
func (s *journalService) PostEntryInTx(ctx context.Context, tx pgx.Tx, businessID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	now := time.Now()
	entry, err := s.buildEntry(ctx, tx, businessID, req, domain.Posted, userID, now)
	if err != nil {
		return nil, err
	}
	if err := s.journalRepo.SaveEntryTx(ctx, tx, *entry); err != nil {
		return nil, err
	}
	if err := s.recordEntryAuditTx(ctx, tx, entry, domain.AuditActionPost, userID, now); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateDraftEntry edits a DRAFT entry; posted entries are immutable.
func (s *journalService) UpdateDraftEntry(ctx context.Context, businessID string, entryID string, req dto.UpdateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, businessID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status == domain.Reversed {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrReversedImmutable.Error())
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrPostedImmutable.Error())
	}

	if req.TransactionDate != nil {
		entry.TransactionDate = *req.TransactionDate
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Reference != nil {
		entry.Reference = *req.Reference
	}
	if req.Lines != nil {
		entry.Lines = toDomainLines(req.Lines)
		for i := range entry.Lines {
			entry.Lines[i].EntryID = entry.EntryID
		}
	} else {
		entry.Lines, err = s.journalRepo.FindLinesByEntryID(ctx, entryID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.validateLines(ctx, businessID, entry.Lines); err != nil {
		return nil, err
	}
	entry.TotalDebit, entry.TotalCredit = accounting.SumLines(entry.Lines)
	entry.Touch(userID, time.Now())

	if err := s.journalRepo.ReplaceEntry(ctx, *entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// PostDraftEntry transitions a DRAFT entry to POSTED after revalidation.
func (s *journalService) PostDraftEntry(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, businessID, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Status != domain.Draft {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrEntryNotDraft.Error())
	}

	entry.Lines, err = s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	// Accounts may have been deactivated since the draft was saved.
	if err := s.validateLines(ctx, businessID, entry.Lines); err != nil {
		return nil, err
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	now := time.Now()
	if err := s.journalRepo.UpdateEntryStatusTx(ctx, tx, businessID, entryID, domain.Posted, userID, now); err != nil {
		return nil, err
	}
	entry.Status = domain.Posted
	entry.Touch(userID, now)
	if err := s.recordEntryAuditTx(ctx, tx, entry, domain.AuditActionPost, userID, now); err != nil {
		return nil, err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return entry, nil
}

// ReverseEntry creates a mirror-image entry dated now, marks the original
// REVERSED and returns the new entry.
func (s *journalService) ReverseEntry(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}

	original, err := s.journalRepo.FindEntryByID(ctx, businessID, entryID)
	if err != nil {
		return nil, err
	}
	switch original.Status {
	case domain.Reversed:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrAlreadyReversed.Error())
	case domain.Draft:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrEntryNotPosted.Error())
	}

	originalLines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	now := time.Now()
	seq, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.DocKindJournalEntry)
	if err != nil {
		return nil, err
	}

	reversal := &domain.JournalEntry{
		EntryID:         uuid.NewString(),
		BusinessID:      businessID,
		EntryNumber:     domain.DocKindJournalEntry.FormatNumber(seq),
		TransactionDate: now,
		Description:     "Reversal of " + original.EntryNumber,
		Reference:       "REV-" + original.EntryNumber,
		Status:          domain.Posted,
		TotalDebit:      original.TotalCredit,
		TotalCredit:     original.TotalDebit,
		AuditFields:     domain.NewAuditFields(userID, now),
	}
	reversal.Lines = make([]domain.JournalEntryLine, len(originalLines))
	for i, line := range originalLines {
		desc := line.Description
		if desc != "" {
			desc = "Reversal: " + desc
		} else {
			desc = "Reversal: " + original.EntryNumber
		}
		reversal.Lines[i] = domain.JournalEntryLine{
			LineID:       uuid.NewString(),
			EntryID:      reversal.EntryID,
			AccountID:    line.AccountID,
			DebitAmount:  line.CreditAmount,
			CreditAmount: line.DebitAmount,
			Description:  desc,
			Reference:    line.Reference,
		}
	}

	if err := s.journalRepo.SaveEntryTx(ctx, tx, *reversal); err != nil {
		return nil, err
	}
	if err := s.journalRepo.UpdateEntryStatusTx(ctx, tx, businessID, entryID, domain.Reversed, userID, now); err != nil {
		return nil, err
	}
	if err := s.recordEntryAuditTx(ctx, tx, original, domain.AuditActionReverse, userID, now); err != nil {
		return nil, err
	}
	if err := s.recordEntryAuditTx(ctx, tx, reversal, domain.AuditActionPost, userID, now); err != nil {
		return nil, err
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("journal entry reversed",
		slog.String("original_entry_id", original.EntryID),
		slog.String("reversal_entry_id", reversal.EntryID))
	return reversal, nil
}

// GetEntryByID retrieves a journal entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, businessID string, entryID string, userID string) (*domain.JournalEntry, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	entry, err := s.journalRepo.FindEntryByID(ctx, businessID, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines, err = s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves a paginated list of entries for a business.
func (s *journalService) ListEntries(ctx context.Context, businessID string, userID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	entries, nextToken, err := s.journalRepo.ListEntriesByBusiness(ctx, businessID, params.Limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListJournalEntriesResponse{
		Entries:   dto.ToListJournalEntryResponse(entries),
		NextToken: nextToken,
	}, nil
}
