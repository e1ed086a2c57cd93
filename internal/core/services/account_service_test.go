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

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	mockAudit       *MockAuditRepository
	mockBusinessSvc *MockBusinessService
	service         portssvc.AccountSvcFacade
	businessID      string
	userID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAudit = new(MockAuditRepository)
	suite.mockBusinessSvc = new(MockBusinessService)
	suite.service = services.NewAccountService(
		suite.mockAccountRepo,
		suite.mockJournalRepo,
		suite.mockAudit,
		suite.mockBusinessSvc,
	)
	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) expectAuthorized(ctx context.Context) {
	suite.mockBusinessSvc.On("AuthorizeUserForBusiness", ctx, suite.userID, suite.businessID).Return(nil).Once()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		AccountCode: "110",
		AccountName: "Petty Cash",
		AccountType: domain.Asset,
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.businessID, "110").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("FindDeletedAccountByCode", ctx, suite.businessID, "110").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	suite.mockAudit.On("SaveAuditLog", ctx, mock.MatchedBy(func(l domain.AuditLog) bool {
		return l.Action == domain.AuditActionCreate && l.EntityType == "ACCOUNT"
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("110", account.AccountCode)
	suite.Equal(domain.AccountActive, account.Status)
	suite.True(account.IsDebit)
	suite.NotEmpty(account.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	existing := &domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: "110",
		Status:      domain.AccountActive,
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.businessID, "110").Return(existing, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.businessID, dto.CreateAccountRequest{
		AccountCode: "110",
		AccountName: "Petty Cash",
		AccountType: domain.Asset,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidType() {
	ctx := context.Background()
	suite.expectAuthorized(ctx)

	_, err := suite.service.CreateAccount(ctx, suite.businessID, dto.CreateAccountRequest{
		AccountCode: "110",
		AccountName: "Petty Cash",
		AccountType: domain.AccountType("WEIRD"),
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RevivesDeletedWithNewDefinition() {
	ctx := context.Background()
	deleted := &domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: "401",
		AccountName: "Old Sales",
		AccountType: domain.Income,
		IsDebit:     false,
		Status:      domain.AccountDeleted,
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountByCode", ctx, suite.businessID, "401").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("FindDeletedAccountByCode", ctx, suite.businessID, "401").Return(deleted, nil).Once()

	var updated domain.Account
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Account) }).
		Return(nil).Once()
	suite.mockAudit.On("SaveAuditLog", ctx, mock.MatchedBy(func(l domain.AuditLog) bool {
		return l.Action == domain.AuditActionUpdate
	})).Return(nil).Once()

	// The row keeps its identity, but name, type and normal-balance side
	// all come from the create request.
	account, err := suite.service.CreateAccount(ctx, suite.businessID, dto.CreateAccountRequest{
		AccountCode: "401",
		AccountName: "Prepaid Expenses",
		AccountType: domain.Asset,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(deleted.AccountID, account.AccountID)
	suite.Equal(domain.Asset, account.AccountType)
	suite.Equal("Prepaid Expenses", account.AccountName)
	suite.Equal(domain.AccountActive, account.Status)
	suite.Equal(domain.Asset, updated.AccountType)
	suite.True(updated.IsDebit)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_InvalidStatus() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: "110",
		AccountType: domain.Asset,
		Status:      domain.AccountActive,
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.businessID, account.AccountID).Return(account, nil).Once()

	badStatus := domain.AccountDeleted
	_, err := suite.service.UpdateAccount(ctx, suite.businessID, account.AccountID, dto.UpdateAccountRequest{Status: &badStatus}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_DeletedNotFound() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:  uuid.NewString(),
		BusinessID: suite.businessID,
		Status:     domain.AccountDeleted,
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.businessID, account.AccountID).Return(account, nil).Once()

	name := "Renamed"
	_, err := suite.service.UpdateAccount(ctx, suite.businessID, account.AccountID, dto.UpdateAccountRequest{AccountName: &name}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_InUse() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: "110",
		Status:      domain.AccountActive,
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.businessID, account.AccountID).Return(account, nil).Once()
	suite.mockJournalRepo.On("HasLinesForAccount", ctx, suite.businessID, account.AccountID).Return(true, nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.businessID, account.AccountID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), services.ErrAccountInUse.Error())
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: "110",
		Status:      domain.AccountActive,
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.businessID, account.AccountID).Return(account, nil).Once()
	suite.mockJournalRepo.On("HasLinesForAccount", ctx, suite.businessID, account.AccountID).Return(false, nil).Once()

	var updated domain.Account
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Account) }).
		Return(nil).Once()
	suite.mockAudit.On("SaveAuditLog", ctx, mock.MatchedBy(func(l domain.AuditLog) bool {
		return l.Action == domain.AuditActionDelete
	})).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, suite.businessID, account.AccountID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.AccountDeleted, updated.Status)
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_AuditFailureIgnored() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: "110",
		Status:      domain.AccountActive,
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.businessID, account.AccountID).Return(account, nil).Once()
	suite.mockJournalRepo.On("HasLinesForAccount", ctx, suite.businessID, account.AccountID).Return(false, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.Anything).Return(nil).Once()
	suite.mockAudit.On("SaveAuditLog", ctx, mock.Anything).Return(assert.AnError).Once()

	err := suite.service.DeleteAccount(ctx, suite.businessID, account.AccountID, suite.userID)

	suite.Require().NoError(err)
}

func (suite *AccountServiceTestSuite) TestSeedDefaultAccounts_AllMissing() {
	ctx := context.Background()

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, suite.businessID, mock.Anything).Return(map[string]domain.Account{}, nil).Once()
	suite.mockAccountRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockAccountRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()

	var saved []domain.Account
	suite.mockAccountRepo.On("SaveAccountsTx", ctx, mock.Anything, mock.AnythingOfType("[]domain.Account")).
		Run(func(args mock.Arguments) { saved = args.Get(2).([]domain.Account) }).
		Return(nil).Once()
	suite.mockAccountRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	created, err := suite.service.SeedDefaultAccounts(ctx, suite.businessID, suite.userID)

	suite.Require().NoError(err)
	suite.Len(created, len(domain.DefaultChartOfAccounts))
	suite.Len(saved, len(domain.DefaultChartOfAccounts))
	for _, acc := range created {
		suite.Equal(domain.AccountActive, acc.Status)
		suite.Equal(suite.businessID, acc.BusinessID)
	}
}

func (suite *AccountServiceTestSuite) TestSeedDefaultAccounts_Idempotent() {
	ctx := context.Background()
	existing := make(map[string]domain.Account, len(domain.DefaultChartOfAccounts))
	for _, seed := range domain.DefaultChartOfAccounts {
		existing[seed.Code] = domain.Account{
			AccountID:   uuid.NewString(),
			BusinessID:  suite.businessID,
			AccountCode: seed.Code,
			AccountType: seed.Type,
			Status:      domain.AccountActive,
		}
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountsByCodes", ctx, suite.businessID, mock.Anything).Return(existing, nil).Once()

	created, err := suite.service.SeedDefaultAccounts(ctx, suite.businessID, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(created)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccountsTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCalculateAccountBalance_DebitNormal() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountType: domain.Asset,
		Status:      domain.AccountActive,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.businessID, account.AccountID).Return(account, nil).Once()
	suite.mockJournalRepo.On("SumPostedLinesByAccount", ctx, suite.businessID, account.AccountID, (*time.Time)(nil)).
		Return(decimal.NewFromInt(500), decimal.NewFromInt(120), nil).Once()

	balance, err := suite.service.CalculateAccountBalance(ctx, suite.businessID, account.AccountID, nil)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(380)))
}

func (suite *AccountServiceTestSuite) TestCalculateAccountBalance_CreditNormal() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountType: domain.Liability,
		Status:      domain.AccountActive,
	}
	asOf := time.Now().Add(-time.Hour)

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.businessID, account.AccountID).Return(account, nil).Once()
	suite.mockJournalRepo.On("SumPostedLinesByAccount", ctx, suite.businessID, account.AccountID, &asOf).
		Return(decimal.NewFromInt(40), decimal.NewFromInt(300), nil).Once()

	balance, err := suite.service.CalculateAccountBalance(ctx, suite.businessID, account.AccountID, &asOf)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.NewFromInt(260)))
}

func (suite *AccountServiceTestSuite) TestCreateAccount_ParentValidated() {
	ctx := context.Background()
	parentID := uuid.NewString()
	req := dto.CreateAccountRequest{
		AccountCode:     "111",
		AccountName:     "Till Float",
		AccountType:     domain.Asset,
		ParentAccountID: &parentID,
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.businessID, parentID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateAccount(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "parent account")
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InactiveParentRejected() {
	ctx := context.Background()
	parent := &domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: "100",
		AccountType: domain.Asset,
		Status:      domain.AccountInactive,
	}
	req := dto.CreateAccountRequest{
		AccountCode:     "112",
		AccountName:     "Cash Drawer",
		AccountType:     domain.Asset,
		ParentAccountID: &parent.AccountID,
	}

	suite.expectAuthorized(ctx)
	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.businessID, parent.AccountID).Return(parent, nil).Once()

	_, err := suite.service.CreateAccount(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "not active")
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
