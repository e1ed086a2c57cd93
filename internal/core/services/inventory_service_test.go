package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/core/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
)

type InventoryServiceTestSuite struct {
	suite.Suite
	mockStockRepo    *MockStockRepository
	mockAccountRepo  *MockAccountRepository
	mockPoster       *MockJournalPoster
	mockBusinessSvc  *MockBusinessService
	service          portssvc.InventorySvcFacade
	inventoryAccount domain.Account
	cogsAccount      domain.Account
	businessID       string
	userID           string
	productID        string
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockStockRepo = new(MockStockRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockPoster = new(MockJournalPoster)
	suite.mockBusinessSvc = new(MockBusinessService)
	suite.service = services.NewInventoryService(
		suite.mockStockRepo,
		suite.mockAccountRepo,
		suite.mockPoster,
		suite.mockBusinessSvc,
	)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.productID = uuid.NewString()

	suite.inventoryAccount = domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: domain.CodeInventory,
		AccountType: domain.Asset,
		Status:      domain.AccountActive,
	}
	suite.cogsAccount = domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: domain.CodeCostOfGoodsSold,
		AccountType: domain.Expense,
		Status:      domain.AccountActive,
	}
}

func (suite *InventoryServiceTestSuite) expectAuthorized(ctx context.Context) {
	suite.mockBusinessSvc.On("AuthorizeUserForBusiness", ctx, suite.userID, suite.businessID).Return(nil).Once()
}

func (suite *InventoryServiceTestSuite) TestReceiveStock_Success() {
	ctx := context.Background()
	movementDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreateStockMovementRequest{
		ProductID:    suite.productID,
		Quantity:     decimal.NewFromInt(12),
		UnitCost:     decimal.NewFromFloat(2.5),
		MovementDate: movementDate,
		Reference:    "GRN-77",
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, suite.businessID, mock.Anything).Return(map[string]domain.Account{
		domain.CodeInventory:       suite.inventoryAccount,
		domain.CodeCostOfGoodsSold: suite.cogsAccount,
	}, nil).Once()
	suite.mockStockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockStockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()
	suite.mockStockRepo.On("SaveMovementTx", ctx, mock.Anything, mock.AnythingOfType("domain.StockMovement")).Return(nil).Once()

	var postedReq dto.CreateJournalEntryRequest
	suite.mockPoster.On("PostEntryInTx", ctx, mock.Anything, suite.businessID, mock.AnythingOfType("dto.CreateJournalEntryRequest"), suite.userID).
		Run(func(args mock.Arguments) { postedReq = args.Get(3).(dto.CreateJournalEntryRequest) }).
		Return(&domain.JournalEntry{EntryID: uuid.NewString()}, nil).Once()
	suite.mockStockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	movement, err := suite.service.ReceiveStock(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StockIn, movement.MovementType)
	suite.True(movement.TotalValue.Equal(decimal.NewFromInt(30)))
	suite.Equal(movementDate, movement.MovementDate)

	suite.Require().Len(postedReq.Lines, 2)
	suite.Equal(suite.inventoryAccount.AccountID, postedReq.Lines[0].AccountID)
	suite.True(postedReq.Lines[0].DebitAmount.Equal(movement.TotalValue))
	suite.Equal(suite.cogsAccount.AccountID, postedReq.Lines[1].AccountID)
	suite.True(postedReq.Lines[1].CreditAmount.Equal(movement.TotalValue))
	suite.Equal("GRN-77", postedReq.Reference)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestReceiveStock_NonPositiveQuantity() {
	ctx := context.Background()
	suite.expectAuthorized(ctx)

	_, err := suite.service.ReceiveStock(ctx, suite.businessID, dto.CreateStockMovementRequest{
		ProductID:    suite.productID,
		Quantity:     decimal.Zero,
		UnitCost:     decimal.NewFromInt(5),
		MovementDate: time.Now(),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestReceiveStock_NegativeUnitCost() {
	ctx := context.Background()
	suite.expectAuthorized(ctx)

	_, err := suite.service.ReceiveStock(ctx, suite.businessID, dto.CreateStockMovementRequest{
		ProductID:    suite.productID,
		Quantity:     decimal.NewFromInt(1),
		UnitCost:     decimal.NewFromInt(-3),
		MovementDate: time.Now(),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InventoryServiceTestSuite) TestReceiveStock_MissingInventoryAccount() {
	ctx := context.Background()
	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, suite.businessID, mock.Anything).Return(map[string]domain.Account{
		domain.CodeCostOfGoodsSold: suite.cogsAccount,
	}, nil).Once()

	_, err := suite.service.ReceiveStock(ctx, suite.businessID, dto.CreateStockMovementRequest{
		ProductID:    suite.productID,
		Quantity:     decimal.NewFromInt(1),
		UnitCost:     decimal.NewFromInt(3),
		MovementDate: time.Now(),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConfiguration)
}

func (suite *InventoryServiceTestSuite) TestReceiveStock_PostingFailureRollsBack() {
	ctx := context.Background()
	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, suite.businessID, mock.Anything).Return(map[string]domain.Account{
		domain.CodeInventory:       suite.inventoryAccount,
		domain.CodeCostOfGoodsSold: suite.cogsAccount,
	}, nil).Once()
	suite.mockStockRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockStockRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()
	suite.mockStockRepo.On("SaveMovementTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockPoster.On("PostEntryInTx", ctx, mock.Anything, suite.businessID, mock.Anything, suite.userID).
		Return(nil, assert.AnError).Once()

	_, err := suite.service.ReceiveStock(ctx, suite.businessID, dto.CreateStockMovementRequest{
		ProductID:    suite.productID,
		Quantity:     decimal.NewFromInt(2),
		UnitCost:     decimal.NewFromInt(4),
		MovementDate: time.Now(),
	}, suite.userID)

	suite.Require().Error(err)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *InventoryServiceTestSuite) TestListMovementsByProduct() {
	ctx := context.Background()
	movements := []domain.StockMovement{
		{MovementID: uuid.NewString(), BusinessID: suite.businessID, ProductID: suite.productID, MovementType: domain.StockIn},
	}
	suite.mockStockRepo.On("ListMovementsByProduct", ctx, suite.businessID, suite.productID, 20, 0).Return(movements, nil).Once()

	result, err := suite.service.ListMovementsByProduct(ctx, suite.businessID, suite.productID, 20, 0)

	suite.Require().NoError(err)
	suite.Len(result, 1)
}

func TestInventoryService(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
