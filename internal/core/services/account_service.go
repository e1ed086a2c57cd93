package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/bizledger/biz_ledger_app/internal/middleware"
	"github.com/bizledger/biz_ledger_app/internal/utils/accounting"
)

var ErrAccountInUse = errors.New("account has journal lines and cannot be deleted")

// accountService implements chart-of-accounts management and the balance
// calculator.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryWithTx
	journalRepo portsrepo.JournalBalanceReader
	auditRepo   portsrepo.AuditRepository
	businessSvc portssvc.BusinessSvcFacade
}

// NewAccountService creates a new account service.
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryWithTx,
	journalRepo portsrepo.JournalBalanceReader,
	auditRepo portsrepo.AuditRepository,
	businessSvc portssvc.BusinessSvcFacade,
) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		auditRepo:   auditRepo,
		businessSvc: businessSvc,
	}
}

// Ensure accountService implements the portssvc.AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new account. Creating a code that belongs to a
// deleted account revives that account instead of inserting a duplicate, so
// historical journal lines keep resolving to the same row.
func (s *accountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	if !req.AccountType.IsValid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	if req.ParentAccountID != nil && *req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, businessID, *req.ParentAccountID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: parent account %s not found", apperrors.ErrValidation, *req.ParentAccountID)
			}
			return nil, err
		}
		if parent.Status != domain.AccountActive {
			return nil, fmt.Errorf("%w: parent account %s is not active", apperrors.ErrValidation, *req.ParentAccountID)
		}
	}

	existing, err := s.accountRepo.FindAccountByCode(ctx, businessID, req.AccountCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: code %s", apperrors.ErrDuplicate, req.AccountCode)
	}

	deleted, err := s.accountRepo.FindDeletedAccountByCode(ctx, businessID, req.AccountCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	now := time.Now()
	if deleted != nil {
		// Revive the deleted row under the requested definition; the request
		// fully describes the account, the old row just keeps its identity.
		deleted.AccountName = req.AccountName
		deleted.AccountType = req.AccountType
		deleted.Description = req.Description
		if req.ParentAccountID != nil {
			deleted.ParentAccountID = *req.ParentAccountID
		}
		deleted.Status = domain.AccountActive
		deleted.IsDebit = req.AccountType.IsDebitNormal()
		deleted.Touch(userID, now)
		if err := s.accountRepo.UpdateAccount(ctx, *deleted); err != nil {
			return nil, err
		}
		s.recordAccountAudit(ctx, deleted, domain.AuditActionUpdate, userID, now)
		logger.Info("account revived", slog.String("account_id", deleted.AccountID), slog.String("account_code", deleted.AccountCode))
		return deleted, nil
	}

	account := &domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  businessID,
		AccountCode: req.AccountCode,
		AccountName: req.AccountName,
		AccountType: req.AccountType,
		Description: req.Description,
		IsDebit:     req.AccountType.IsDebitNormal(),
		Status:      domain.AccountActive,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if req.ParentAccountID != nil {
		account.ParentAccountID = *req.ParentAccountID
	}
	if err := s.accountRepo.SaveAccount(ctx, *account); err != nil {
		return nil, err
	}
	s.recordAccountAudit(ctx, account, domain.AuditActionCreate, userID, now)
	logger.Info("account created", slog.String("account_id", account.AccountID), slog.String("account_code", account.AccountCode))
	return account, nil
}

// UpdateAccount updates an existing account's mutable details. Code and type
// are immutable after creation.
func (s *accountService) UpdateAccount(ctx context.Context, businessID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return nil, err
	}
	if account.Status == domain.AccountDeleted {
		return nil, apperrors.ErrNotFound
	}

	if req.AccountName != nil {
		account.AccountName = *req.AccountName
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.Status != nil {
		if *req.Status != domain.AccountActive && *req.Status != domain.AccountInactive {
			return nil, fmt.Errorf("%w: status must be ACTIVE or INACTIVE", apperrors.ErrValidation)
		}
		account.Status = *req.Status
	}
	account.IsDebit = account.AccountType.IsDebitNormal()
	now := time.Now()
	account.Touch(userID, now)

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}
	s.recordAccountAudit(ctx, account, domain.AuditActionUpdate, userID, now)
	return account, nil
}

// DeactivateAccount marks an account INACTIVE. It keeps its history and stays
// visible but rejects new journal lines.
func (s *accountService) DeactivateAccount(ctx context.Context, businessID string, accountID string, userID string) error {
	inactive := domain.AccountInactive
	_, err := s.UpdateAccount(ctx, businessID, accountID, dto.UpdateAccountRequest{Status: &inactive}, userID)
	return err
}

// DeleteAccount marks an account DELETED. Accounts referenced by any journal
// line cannot be deleted; deactivate them instead.
func (s *accountService) DeleteAccount(ctx context.Context, businessID string, accountID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return err
	}
	if account.Status == domain.AccountDeleted {
		return apperrors.ErrNotFound
	}

	inUse, err := s.journalRepo.HasLinesForAccount(ctx, businessID, accountID)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrAccountInUse.Error())
	}

	account.Status = domain.AccountDeleted
	now := time.Now()
	account.Touch(userID, now)
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return err
	}
	s.recordAccountAudit(ctx, account, domain.AuditActionDelete, userID, now)
	logger.Info("account deleted", slog.String("account_id", accountID), slog.String("account_code", account.AccountCode))
	return nil
}

// SeedDefaultAccounts creates any missing accounts of the default chart.
// Idempotent: existing codes are left untouched, whatever their status.
func (s *accountService) SeedDefaultAccounts(ctx context.Context, businessID string, userID string) ([]domain.Account, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}

	codes := make([]string, len(domain.DefaultChartOfAccounts))
	for i, seed := range domain.DefaultChartOfAccounts {
		codes[i] = seed.Code
	}
	existing, err := s.accountRepo.FindAccountsByCodes(ctx, businessID, codes)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	missing := BuildDefaultAccounts(businessID, userID, now, existing)
	if len(missing) == 0 {
		return []domain.Account{}, nil
	}

	tx, err := s.accountRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.accountRepo.Rollback(ctx, tx)
	if err := s.accountRepo.SaveAccountsTx(ctx, tx, missing); err != nil {
		return nil, err
	}
	if err := s.accountRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return missing, nil
}

// BuildDefaultAccounts materializes the default chart of accounts for a
// business, skipping any code already present in existing.
func BuildDefaultAccounts(businessID string, userID string, now time.Time, existing map[string]domain.Account) []domain.Account {
	accounts := make([]domain.Account, 0, len(domain.DefaultChartOfAccounts))
	for _, seed := range domain.DefaultChartOfAccounts {
		if _, ok := existing[seed.Code]; ok {
			continue
		}
		accounts = append(accounts, domain.Account{
			AccountID:   uuid.NewString(),
			BusinessID:  businessID,
			AccountCode: seed.Code,
			AccountName: seed.Name,
			AccountType: seed.Type,
			Description: seed.Description,
			IsDebit:     seed.Type.IsDebitNormal(),
			Status:      domain.AccountActive,
			AuditFields: domain.NewAuditFields(userID, now),
		})
	}
	return accounts
}

// CalculateAccountBalance computes the account balance from posted journal
// lines, expressed on the account's normal side. A nil asOf means now.
// Balances are never cached on the account row.
func (s *accountService) CalculateAccountBalance(ctx context.Context, businessID string, accountID string, asOf *time.Time) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, businessID, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	totalDebit, totalCredit, err := s.journalRepo.SumPostedLinesByAccount(ctx, businessID, accountID, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.NormalBalance(account.AccountType, totalDebit, totalCredit)
}

// GetAccountByID retrieves a specific account by its unique identifier.
func (s *accountService) GetAccountByID(ctx context.Context, businessID string, accountID string, userID string) (*domain.Account, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByID(ctx, businessID, accountID)
}

// GetAccountByCode retrieves a non-deleted account by its code.
func (s *accountService) GetAccountByCode(ctx context.Context, businessID string, accountCode string, userID string) (*domain.Account, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByCode(ctx, businessID, accountCode)
}

// GetAccountsByIDs retrieves multiple accounts by their IDs.
func (s *accountService) GetAccountsByIDs(ctx context.Context, businessID string, accountIDs []string, userID string) (map[string]domain.Account, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountsByIDs(ctx, businessID, accountIDs)
}

// ListAccounts retrieves a paginated list of accounts for a business.
func (s *accountService) ListAccounts(ctx context.Context, businessID string, limit int, offset int) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, businessID, limit, offset)
}

// recordAccountAudit writes a best-effort audit record after the change has
// been persisted. Failures are logged, not surfaced.
func (s *accountService) recordAccountAudit(ctx context.Context, account *domain.Account, action domain.AuditAction, userID string, now time.Time) {
	details, _ := json.Marshal(map[string]any{
		"accountCode": account.AccountCode,
		"accountName": account.AccountName,
		"status":      account.Status,
	})
	err := s.auditRepo.SaveAuditLog(ctx, domain.AuditLog{
		AuditID:    uuid.NewString(),
		BusinessID: account.BusinessID,
		UserID:     userID,
		Action:     action,
		EntityType: "ACCOUNT",
		EntityID:   account.AccountID,
		Details:    details,
		CreatedAt:  now,
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to write audit log",
			slog.String("entity_id", account.AccountID), slog.String("error", err.Error()))
	}
}
