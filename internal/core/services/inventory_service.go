package services

import (
	"context"
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

// inventoryService implements stock movements and their valuation bridge.
// Goods received debit the inventory account and credit cost of goods sold
// for quantity times unit cost.
type inventoryService struct {
	stockRepo   portsrepo.StockRepositoryWithTx
	accountRepo portsrepo.AccountReader
	journalSvc  portssvc.JournalPosterSvc
	businessSvc portssvc.BusinessSvcFacade
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(
	stockRepo portsrepo.StockRepositoryWithTx,
	accountRepo portsrepo.AccountReader,
	journalSvc portssvc.JournalPosterSvc,
	businessSvc portssvc.BusinessSvcFacade,
) portssvc.InventorySvcFacade {
	return &inventoryService{
		stockRepo:   stockRepo,
		accountRepo: accountRepo,
		journalSvc:  journalSvc,
		businessSvc: businessSvc,
	}
}

// Ensure inventoryService implements the portssvc.InventorySvcFacade interface
var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// ReceiveStock records goods received into inventory and posts the valuation
// to the ledger in one transaction.
func (s *inventoryService) ReceiveStock(ctx context.Context, businessID string, req dto.CreateStockMovementRequest, userID string) (*domain.StockMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	if !req.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if req.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: unit cost cannot be negative", apperrors.ErrValidation)
	}

	accounts, err := resolveAccountsByCodes(ctx, s.accountRepo, businessID,
		domain.CodeInventory, domain.CodeCostOfGoodsSold)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	movement := &domain.StockMovement{
		MovementID:   uuid.NewString(),
		BusinessID:   businessID,
		ProductID:    req.ProductID,
		MovementType: domain.StockIn,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		TotalValue:   req.Quantity.Mul(req.UnitCost),
		MovementDate: req.MovementDate,
		Reference:    req.Reference,
		Notes:        req.Notes,
		AuditFields:  domain.NewAuditFields(userID, now),
	}

	tx, err := s.stockRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.stockRepo.Rollback(ctx, tx)

	if err := s.stockRepo.SaveMovementTx(ctx, tx, *movement); err != nil {
		return nil, err
	}

	desc := "Stock received for product " + req.ProductID
	_, err = s.journalSvc.PostEntryInTx(ctx, tx, businessID, dto.CreateJournalEntryRequest{
		TransactionDate: req.MovementDate,
		Description:     desc,
		Reference:       req.Reference,
		Lines: []dto.JournalLineRequest{
			{AccountID: accounts[domain.CodeInventory].AccountID, DebitAmount: movement.TotalValue, Description: desc},
			{AccountID: accounts[domain.CodeCostOfGoodsSold].AccountID, CreditAmount: movement.TotalValue, Description: desc},
		},
	}, userID)
	if err != nil {
		return nil, err
	}

	if err := s.stockRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("stock received",
		slog.String("movement_id", movement.MovementID),
		slog.String("product_id", movement.ProductID),
		slog.String("total_value", movement.TotalValue.String()))
	return movement, nil
}

// GetMovementByID retrieves a stock movement by ID.
func (s *inventoryService) GetMovementByID(ctx context.Context, businessID string, movementID string, userID string) (*domain.StockMovement, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	return s.stockRepo.FindMovementByID(ctx, businessID, movementID)
}

// ListMovementsByProduct retrieves a paginated movement history for a product.
func (s *inventoryService) ListMovementsByProduct(ctx context.Context, businessID string, productID string, limit int, offset int) ([]domain.StockMovement, error) {
	return s.stockRepo.ListMovementsByProduct(ctx, businessID, productID, limit, offset)
}
