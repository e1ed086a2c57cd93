package services_test

import (
	"context"
	"strings"
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

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	mockSequence    *MockSequenceRepository
	mockAudit       *MockAuditRepository
	mockBusinessSvc *MockBusinessService
	service         portssvc.JournalSvcFacade
	cashAccount     domain.Account
	salesAccount    domain.Account
	vatAccount      domain.Account
	businessID      string
	userID          string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockSequence = new(MockSequenceRepository)
	suite.mockAudit = new(MockAuditRepository)
	suite.mockBusinessSvc = new(MockBusinessService)
	suite.service = services.NewJournalService(
		suite.mockJournalRepo,
		suite.mockAccountRepo,
		suite.mockSequence,
		suite.mockAudit,
		suite.mockBusinessSvc,
	)

	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: "101",
		AccountName: "Cash",
		AccountType: domain.Asset,
		IsDebit:     true,
		Status:      domain.AccountActive,
	}
	suite.salesAccount = domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: "401",
		AccountName: "Sales Revenue",
		AccountType: domain.Income,
		Status:      domain.AccountActive,
	}
	suite.vatAccount = domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: "202",
		AccountName: "VAT Collected",
		AccountType: domain.Liability,
		Status:      domain.AccountActive,
	}
}

func (suite *JournalServiceTestSuite) expectAuthorized(ctx context.Context) {
	suite.mockBusinessSvc.On("AuthorizeUserForBusiness", ctx, suite.userID, suite.businessID).Return(nil).Once()
}

func (suite *JournalServiceTestSuite) expectTx(ctx context.Context) {
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockJournalRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockJournalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Maybe()
}

func (suite *JournalServiceTestSuite) balancedRequest(amount decimal.Decimal) dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		TransactionDate: time.Now(),
		Description:     "Cash sale",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, DebitAmount: amount},
			{AccountID: suite.salesAccount.AccountID, CreditAmount: amount},
		},
	}
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	amount := decimal.NewFromInt(150)
	req := suite.balancedRequest(amount)

	suite.expectAuthorized(ctx)
	suite.expectTx(ctx)
	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, mock.Anything).Return(accountsMap, nil).Once()
	suite.mockSequence.On("NextNumberTx", ctx, mock.Anything, suite.businessID, domain.DocKindJournalEntry).Return(int64(1), nil).Once()
	suite.mockJournalRepo.On("SaveEntryTx", ctx, mock.Anything, mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()
	suite.mockAudit.On("SaveAuditLogTx", ctx, mock.Anything, mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("JE-00001", entry.EntryNumber)
	suite.Equal(domain.Posted, entry.Status)
	suite.True(entry.TotalDebit.Equal(amount))
	suite.True(entry.TotalCredit.Equal(amount))
	suite.Equal(suite.userID, entry.CreatedBy)
	suite.Len(entry.Lines, 2)
	for _, line := range entry.Lines {
		suite.Equal(entry.EntryID, line.EntryID)
	}
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_AuthorizationFail() {
	ctx := context.Background()
	suite.mockBusinessSvc.On("AuthorizeUserForBusiness", ctx, suite.userID, suite.businessID).Return(apperrors.ErrForbidden).Once()

	_, err := suite.service.CreateEntry(ctx, suite.businessID, suite.balancedRequest(decimal.NewFromInt(10)), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntryTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		TransactionDate: time.Now(),
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromInt(100)},
			{AccountID: suite.salesAccount.AccountID, CreditAmount: decimal.NewFromInt(90)},
		},
	}
	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockJournalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntryTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_WithinTolerance() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		TransactionDate: time.Now(),
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromFloat(100.00)},
			{AccountID: suite.salesAccount.AccountID, CreditAmount: decimal.NewFromFloat(99.99)},
		},
	}
	suite.expectAuthorized(ctx)
	suite.expectTx(ctx)
	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, mock.Anything).Return(accountsMap, nil).Once()
	suite.mockSequence.On("NextNumberTx", ctx, mock.Anything, suite.businessID, domain.DocKindJournalEntry).Return(int64(7), nil).Once()
	suite.mockJournalRepo.On("SaveEntryTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockAudit.On("SaveAuditLogTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("JE-00007", entry.EntryNumber)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SingleLine() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		TransactionDate: time.Now(),
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromInt(100)},
		},
	}
	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockJournalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SameAccountBothSides() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		TransactionDate: time.Now(),
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromInt(100)},
			{AccountID: suite.cashAccount.AccountID, CreditAmount: decimal.NewFromInt(100)},
		},
	}
	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockJournalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), services.ErrEntryMinAccounts.Error())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_BothSidesSetOnLine() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		TransactionDate: time.Now(),
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromInt(50), CreditAmount: decimal.NewFromInt(50)},
			{AccountID: suite.salesAccount.AccountID, CreditAmount: decimal.NewFromInt(50)},
		},
	}
	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockJournalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_InactiveAccount() {
	ctx := context.Background()
	inactive := suite.salesAccount
	inactive.Status = domain.AccountInactive
	req := suite.balancedRequest(decimal.NewFromInt(25))

	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockJournalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()
	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
		inactive.AccountID:          inactive,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, mock.Anything).Return(accountsMap, nil).Once()

	_, err := suite.service.CreateEntry(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotUsable)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntryTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateDraftEntry_StatusDraft() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(60))

	suite.expectAuthorized(ctx)
	suite.expectTx(ctx)
	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, mock.Anything).Return(accountsMap, nil).Once()
	suite.mockSequence.On("NextNumberTx", ctx, mock.Anything, suite.businessID, domain.DocKindJournalEntry).Return(int64(2), nil).Once()
	suite.mockJournalRepo.On("SaveEntryTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	var audited domain.AuditLog
	suite.mockAudit.On("SaveAuditLogTx", ctx, mock.Anything, mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) { audited = args.Get(2).(domain.AuditLog) }).
		Return(nil).Once()

	entry, err := suite.service.CreateDraftEntry(ctx, suite.businessID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Draft, entry.Status)
	suite.Equal(domain.AuditActionCreate, audited.Action)
	suite.Equal("JOURNAL_ENTRY", audited.EntityType)
}

func (suite *JournalServiceTestSuite) TestPostDraftEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	draft := &domain.JournalEntry{
		EntryID:    entryID,
		BusinessID: suite.businessID,
		Status:     domain.Draft,
	}
	lines := []domain.JournalEntryLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromInt(40)},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.salesAccount.AccountID, CreditAmount: decimal.NewFromInt(40)},
	}

	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.businessID, entryID).Return(draft, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()
	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, mock.Anything).Return(accountsMap, nil).Once()
	suite.expectTx(ctx)
	suite.mockJournalRepo.On("UpdateEntryStatusTx", ctx, mock.Anything, suite.businessID, entryID, domain.Posted, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAudit.On("SaveAuditLogTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	posted, err := suite.service.PostDraftEntry(ctx, suite.businessID, entryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, posted.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestPostDraftEntry_AlreadyPosted() {
	ctx := context.Background()
	entryID := uuid.NewString()
	posted := &domain.JournalEntry{EntryID: entryID, BusinessID: suite.businessID, Status: domain.Posted}

	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.businessID, entryID).Return(posted, nil).Once()

	_, err := suite.service.PostDraftEntry(ctx, suite.businessID, entryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JournalServiceTestSuite) TestUpdateDraftEntry_PostedImmutable() {
	ctx := context.Background()
	entryID := uuid.NewString()
	posted := &domain.JournalEntry{EntryID: entryID, BusinessID: suite.businessID, Status: domain.Posted}

	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.businessID, entryID).Return(posted, nil).Once()

	newDesc := "should not apply"
	_, err := suite.service.UpdateDraftEntry(ctx, suite.businessID, entryID, dto.UpdateJournalEntryRequest{Description: &newDesc}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), services.ErrPostedImmutable.Error())
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ReplaceEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestUpdateDraftEntry_ReversedImmutable() {
	ctx := context.Background()
	entryID := uuid.NewString()
	reversed := &domain.JournalEntry{EntryID: entryID, BusinessID: suite.businessID, Status: domain.Reversed}

	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.businessID, entryID).Return(reversed, nil).Once()

	newDesc := "should not apply"
	_, err := suite.service.UpdateDraftEntry(ctx, suite.businessID, entryID, dto.UpdateJournalEntryRequest{Description: &newDesc}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), services.ErrReversedImmutable.Error())
	suite.NotContains(err.Error(), services.ErrPostedImmutable.Error())
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ReplaceEntry", mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestUpdateDraftEntry_ReplacesLinesAndTotals() {
	ctx := context.Background()
	entryID := uuid.NewString()
	draft := &domain.JournalEntry{
		EntryID:     entryID,
		BusinessID:  suite.businessID,
		Status:      domain.Draft,
		TotalDebit:  decimal.NewFromInt(10),
		TotalCredit: decimal.NewFromInt(10),
	}
	amount := decimal.NewFromInt(75)

	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.businessID, entryID).Return(draft, nil).Once()
	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
		suite.vatAccount.AccountID:  suite.vatAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, mock.Anything).Return(accountsMap, nil).Once()

	var replaced domain.JournalEntry
	suite.mockJournalRepo.On("ReplaceEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) { replaced = args.Get(1).(domain.JournalEntry) }).
		Return(nil).Once()

	updated, err := suite.service.UpdateDraftEntry(ctx, suite.businessID, entryID, dto.UpdateJournalEntryRequest{
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, DebitAmount: amount},
			{AccountID: suite.vatAccount.AccountID, CreditAmount: amount},
		},
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.TotalDebit.Equal(amount))
	suite.True(updated.TotalCredit.Equal(amount))
	suite.Len(replaced.Lines, 2)
	suite.Equal(entryID, replaced.Lines[0].EntryID)
}

func (suite *JournalServiceTestSuite) TestReverseEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	original := &domain.JournalEntry{
		EntryID:     entryID,
		BusinessID:  suite.businessID,
		EntryNumber: "JE-00003",
		Status:      domain.Posted,
		TotalDebit:  decimal.NewFromInt(80),
		TotalCredit: decimal.NewFromInt(80),
	}
	originalLines := []domain.JournalEntryLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.cashAccount.AccountID, DebitAmount: decimal.NewFromInt(80), Description: "Cash in"},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.salesAccount.AccountID, CreditAmount: decimal.NewFromInt(80)},
	}

	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.businessID, entryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(originalLines, nil).Once()
	suite.expectTx(ctx)
	suite.mockSequence.On("NextNumberTx", ctx, mock.Anything, suite.businessID, domain.DocKindJournalEntry).Return(int64(9), nil).Once()

	var saved domain.JournalEntry
	suite.mockJournalRepo.On("SaveEntryTx", ctx, mock.Anything, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) { saved = args.Get(2).(domain.JournalEntry) }).
		Return(nil).Once()
	suite.mockJournalRepo.On("UpdateEntryStatusTx", ctx, mock.Anything, suite.businessID, entryID, domain.Reversed, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockAudit.On("SaveAuditLogTx", ctx, mock.Anything, mock.Anything).Return(nil).Twice()

	reversal, err := suite.service.ReverseEntry(ctx, suite.businessID, entryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("JE-00009", reversal.EntryNumber)
	suite.Equal("REV-JE-00003", reversal.Reference)
	suite.Equal(domain.Posted, reversal.Status)
	suite.Require().Len(saved.Lines, 2)
	// Debit and credit sides are swapped line by line.
	suite.True(saved.Lines[0].CreditAmount.Equal(originalLines[0].DebitAmount))
	suite.True(saved.Lines[0].DebitAmount.IsZero())
	suite.True(saved.Lines[1].DebitAmount.Equal(originalLines[1].CreditAmount))
	suite.True(strings.HasPrefix(saved.Lines[0].Description, "Reversal: "))
	suite.Equal("Reversal: JE-00003", saved.Lines[1].Description)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAudit.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestReverseEntry_AlreadyReversed() {
	ctx := context.Background()
	entryID := uuid.NewString()
	reversed := &domain.JournalEntry{EntryID: entryID, BusinessID: suite.businessID, Status: domain.Reversed}

	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.businessID, entryID).Return(reversed, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, suite.businessID, entryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), services.ErrAlreadyReversed.Error())
}

func (suite *JournalServiceTestSuite) TestReverseEntry_DraftRejected() {
	ctx := context.Background()
	entryID := uuid.NewString()
	draft := &domain.JournalEntry{EntryID: entryID, BusinessID: suite.businessID, Status: domain.Draft}

	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.businessID, entryID).Return(draft, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, suite.businessID, entryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Contains(err.Error(), services.ErrEntryNotPosted.Error())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_SaveError() {
	ctx := context.Background()
	req := suite.balancedRequest(decimal.NewFromInt(30))

	suite.expectAuthorized(ctx)
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockJournalRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()
	accountsMap := map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.businessID, mock.Anything).Return(accountsMap, nil).Once()
	suite.mockSequence.On("NextNumberTx", ctx, mock.Anything, suite.businessID, domain.DocKindJournalEntry).Return(int64(4), nil).Once()
	suite.mockJournalRepo.On("SaveEntryTx", ctx, mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := suite.service.CreateEntry(ctx, suite.businessID, req, suite.userID)

	suite.Require().Error(err)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func TestJournalService(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
