package services

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/dto"
)

// BusinessSvcFacade defines operations for businesses (tenants).
type BusinessSvcFacade interface {
	// CreateBusiness persists a business, links the creator as OWNER and seeds
	// the default chart of accounts, all in one transaction.
	CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, userID string) (*domain.Business, error)

	// GetBusinessByID retrieves a business the user belongs to.
	GetBusinessByID(ctx context.Context, businessID string, userID string) (*domain.Business, error)

	// ListBusinessesByUser retrieves all businesses the user belongs to.
	ListBusinessesByUser(ctx context.Context, userID string) ([]domain.Business, error)

	// AuthorizeUserForBusiness returns ErrForbidden when the user is not a
	// member of the business.
	AuthorizeUserForBusiness(ctx context.Context, userID string, businessID string) error
}
