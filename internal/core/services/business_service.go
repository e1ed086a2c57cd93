package services

import (
	"context"
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
)

// businessService implements tenant management. Creating a business seeds the
// default chart of accounts in the same transaction, so no business ever
// exists without the accounts the document bridges post against.
type businessService struct {
	businessRepo portsrepo.BusinessRepositoryWithTx
	accountRepo  portsrepo.AccountRepositoryFacade
}

// NewBusinessService creates a new business service.
func NewBusinessService(
	businessRepo portsrepo.BusinessRepositoryWithTx,
	accountRepo portsrepo.AccountRepositoryFacade,
) portssvc.BusinessSvcFacade {
	return &businessService{
		businessRepo: businessRepo,
		accountRepo:  accountRepo,
	}
}

// Ensure businessService implements the portssvc.BusinessSvcFacade interface
var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

// CreateBusiness persists a business, links the creator as OWNER and seeds
// the default chart of accounts, all in one transaction.
func (s *businessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, userID string) (*domain.Business, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	business := &domain.Business{
		BusinessID:   uuid.NewString(),
		BusinessName: req.BusinessName,
		CurrencyCode: req.CurrencyCode,
		TaxID:        req.TaxID,
		AuditFields:  domain.NewAuditFields(userID, now),
	}
	link := domain.UserBusiness{
		UserID:      userID,
		BusinessID:  business.BusinessID,
		Role:        domain.RoleOwner,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	accounts := BuildDefaultAccounts(business.BusinessID, userID, now, nil)

	tx, err := s.businessRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.businessRepo.Rollback(ctx, tx)

	if err := s.businessRepo.SaveBusinessTx(ctx, tx, *business); err != nil {
		return nil, err
	}
	if err := s.businessRepo.SaveUserBusinessTx(ctx, tx, link); err != nil {
		return nil, err
	}
	if err := s.accountRepo.SaveAccountsTx(ctx, tx, accounts); err != nil {
		return nil, err
	}
	if err := s.businessRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("business created",
		slog.String("business_id", business.BusinessID),
		slog.Int("seeded_accounts", len(accounts)))
	return business, nil
}

// GetBusinessByID retrieves a business the user belongs to.
func (s *businessService) GetBusinessByID(ctx context.Context, businessID string, userID string) (*domain.Business, error) {
	if err := s.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	return s.businessRepo.FindBusinessByID(ctx, businessID)
}

// ListBusinessesByUser retrieves all businesses the user belongs to.
func (s *businessService) ListBusinessesByUser(ctx context.Context, userID string) ([]domain.Business, error) {
	return s.businessRepo.ListBusinessesByUser(ctx, userID)
}

// AuthorizeUserForBusiness returns ErrForbidden when the user is not a member
// of the business.
func (s *businessService) AuthorizeUserForBusiness(ctx context.Context, userID string, businessID string) error {
	_, err := s.businessRepo.FindUserBusiness(ctx, userID, businessID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s is not a member of business %s", apperrors.ErrForbidden, userID, businessID)
		}
		return err
	}
	return nil
}
