package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/bizledger/biz_ledger_app/internal/handlers"
	"github.com/bizledger/biz_ledger_app/internal/middleware"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, businessID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, businessID string, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeactivateAccount(ctx context.Context, businessID string, accountID string, userID string) error {
	args := m.Called(ctx, businessID, accountID, userID)
	return args.Error(0)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, businessID string, accountID string, userID string) error {
	args := m.Called(ctx, businessID, accountID, userID)
	return args.Error(0)
}
func (m *MockAccountService) SeedDefaultAccounts(ctx context.Context, businessID string, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, businessID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, businessID string, accountID string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByCode(ctx context.Context, businessID string, accountCode string, userID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountCode, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, businessID string, accountIDs []string, userID string) (map[string]domain.Account, error) {
	args := m.Called(ctx, businessID, accountIDs, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, businessID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CalculateAccountBalance(ctx context.Context, businessID string, accountID string, asOf *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, businessID, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	jwtSecret          string
	businessID         string
	userID             string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *AccountHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "bla-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.businessID = uuid.NewString()
	suite.userID = uuid.NewString()

	// Use the actual AuthMiddleware so the handlers see a real user context
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockAccountService = new(MockAccountService)

	// Mimic the real route grouping
	business := suite.router.Group("/api/v1/businesses/:businessID")
	handlers.RegisterAccountRoutes(business, suite.mockAccountService)
}

// doRequest performs an authenticated request against the test router.
func (suite *AccountHandlerTestSuite) doRequest(method, url, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	expected := &domain.Account{
		AccountID:   uuid.NewString(),
		BusinessID:  suite.businessID,
		AccountCode: "101",
		AccountName: "Cash",
		AccountType: domain.Asset,
		IsDebit:     true,
		Status:      domain.AccountActive,
	}

	suite.mockAccountService.On("CreateAccount",
		mock.AnythingOfType("*context.valueCtx"),
		suite.businessID,
		mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.AccountCode == "101" && req.AccountType == domain.Asset
		}),
		suite.userID,
	).Return(expected, nil).Once()

	body := `{"accountCode":"101","accountName":"Cash","accountType":"ASSET"}`
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/businesses/%s/accounts", suite.businessID), body)

	suite.Equal(http.StatusCreated, w.Code)

	var responseBody struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Data    dto.AccountResponse `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseBody)
	suite.Require().NoError(err, "Failed to unmarshal response body")
	suite.True(responseBody.Success)
	suite.Equal(expected.AccountID, responseBody.Data.AccountID)
	suite.Equal("101", responseBody.Data.AccountCode)
	suite.True(responseBody.Data.IsDebit)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateCode() {
	suite.mockAccountService.On("CreateAccount",
		mock.AnythingOfType("*context.valueCtx"),
		suite.businessID,
		mock.AnythingOfType("dto.CreateAccountRequest"),
		suite.userID,
	).Return(nil, fmt.Errorf("account code 101: %w", apperrors.ErrDuplicate)).Once()

	body := `{"accountCode":"101","accountName":"Cash","accountType":"ASSET"}`
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/businesses/%s/accounts", suite.businessID), body)

	suite.Equal(http.StatusConflict, w.Code)

	var responseBody dto.Envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.False(responseBody.Success)
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidBody() {
	// accountType fails the oneof binding
	body := `{"accountCode":"101","accountName":"Cash","accountType":"BOGUS"}`
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/businesses/%s/accounts", suite.businessID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_MissingToken() {
	body := `{"accountCode":"101","accountName":"Cash","accountType":"ASSET"}`
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/businesses/%s/accounts", suite.businessID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount")
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("GetAccountByID",
		mock.AnythingOfType("*context.valueCtx"),
		suite.businessID,
		accountID,
		suite.userID,
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/businesses/%s/accounts/%s", suite.businessID, accountID), "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_WithAsOf() {
	accountID := uuid.NewString()
	asOf := time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC)
	account := &domain.Account{
		AccountID:   accountID,
		BusinessID:  suite.businessID,
		AccountCode: "101",
		AccountType: domain.Asset,
		Status:      domain.AccountActive,
	}

	suite.mockAccountService.On("GetAccountByID",
		mock.AnythingOfType("*context.valueCtx"),
		suite.businessID,
		accountID,
		suite.userID,
	).Return(account, nil).Once()
	suite.mockAccountService.On("CalculateAccountBalance",
		mock.AnythingOfType("*context.valueCtx"),
		suite.businessID,
		accountID,
		mock.MatchedBy(func(t *time.Time) bool { return t != nil && t.Equal(asOf) }),
	).Return(decimal.NewFromFloat(1234.56), nil).Once()

	url := fmt.Sprintf("/api/v1/businesses/%s/accounts/%s/balance?asOf=%s",
		suite.businessID, accountID, asOf.Format(time.RFC3339))
	w := suite.doRequest(http.MethodGet, url, "")

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Equal(accountID, responseBody.AccountID)
	suite.Equal("101", responseBody.AccountCode)
	suite.True(responseBody.Balance.Equal(decimal.NewFromFloat(1234.56)))
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccountBalance_BadAsOf() {
	accountID := uuid.NewString()

	url := fmt.Sprintf("/api/v1/businesses/%s/accounts/%s/balance?asOf=yesterday", suite.businessID, accountID)
	w := suite.doRequest(http.MethodGet, url, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CalculateAccountBalance")
}

func (suite *AccountHandlerTestSuite) TestListAccounts_DefaultPaging() {
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), BusinessID: suite.businessID, AccountCode: "101", AccountType: domain.Asset},
		{AccountID: uuid.NewString(), BusinessID: suite.businessID, AccountCode: "401", AccountType: domain.Income},
	}

	suite.mockAccountService.On("ListAccounts",
		mock.AnythingOfType("*context.valueCtx"),
		suite.businessID,
		50, // default limit
		0,
	).Return(accounts, nil).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/businesses/%s/accounts", suite.businessID), "")

	suite.Equal(http.StatusOK, w.Code)

	var responseBody dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.Len(responseBody.Accounts, 2)
	suite.Equal("101", responseBody.Accounts[0].AccountCode)
}

func (suite *AccountHandlerTestSuite) TestSeedDefaults_Success() {
	created := []domain.Account{
		{AccountID: uuid.NewString(), BusinessID: suite.businessID, AccountCode: "101", AccountType: domain.Asset},
	}
	suite.mockAccountService.On("SeedDefaultAccounts",
		mock.AnythingOfType("*context.valueCtx"),
		suite.businessID,
		suite.userID,
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/businesses/%s/accounts/defaults", suite.businessID), "")

	suite.Equal(http.StatusOK, w.Code)

	var responseBody struct {
		Success bool                  `json:"success"`
		Data    []dto.AccountResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &responseBody))
	suite.True(responseBody.Success)
	suite.Len(responseBody.Data, 1)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_InUse() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("DeleteAccount",
		mock.AnythingOfType("*context.valueCtx"),
		suite.businessID,
		accountID,
		suite.userID,
	).Return(fmt.Errorf("%w: account has journal lines", apperrors.ErrConflict)).Once()

	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/v1/businesses/%s/accounts/%s", suite.businessID, accountID), "")

	suite.Equal(http.StatusConflict, w.Code)
}

// --- Run Test Suite ---
func TestAccountHandler(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
