package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
)

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, businessID string, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, businessID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryLine), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalEntryLine, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.JournalEntryLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntriesByBusiness(ctx context.Context, businessID string, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, businessID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) SumPostedLinesByAccount(ctx context.Context, businessID string, accountID string, asOf *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, businessID, accountID, asOf)
	if args.Get(0) == nil {
		return decimal.Zero, decimal.Zero, args.Error(2)
	}
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockJournalRepository) HasLinesForAccount(ctx context.Context, businessID string, accountID string) (bool, error) {
	args := m.Called(ctx, businessID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockJournalRepository) SaveEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	return m.Called(ctx, tx, entry).Error(0)
}

func (m *MockJournalRepository) ReplaceEntry(ctx context.Context, entry domain.JournalEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockJournalRepository) UpdateEntryStatus(ctx context.Context, businessID string, entryID string, status domain.JournalStatus, userID string, now time.Time) error {
	return m.Called(ctx, businessID, entryID, status, userID, now).Error(0)
}

func (m *MockJournalRepository) UpdateEntryStatusTx(ctx context.Context, tx pgx.Tx, businessID string, entryID string, status domain.JournalStatus, userID string, now time.Time) error {
	return m.Called(ctx, tx, businessID, entryID, status, userID, now).Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryWithTx = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockAccountRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockAccountRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, businessID string, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, businessID string, accountCode string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindDeletedAccountByCode(ctx context.Context, businessID string, accountCode string) (*domain.Account, error) {
	args := m.Called(ctx, businessID, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, businessID string, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, businessID, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByCodes(ctx context.Context, businessID string, accountCodes []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, businessID, accountCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, businessID string, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) SaveAccountsTx(ctx context.Context, tx pgx.Tx, accounts []domain.Account) error {
	return m.Called(ctx, tx, accounts).Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

// --- Mock SequenceRepository ---

type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextNumber(ctx context.Context, businessID string, kind domain.DocumentKind) (int64, error) {
	args := m.Called(ctx, businessID, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSequenceRepository) NextNumberTx(ctx context.Context, tx pgx.Tx, businessID string, kind domain.DocumentKind) (int64, error) {
	args := m.Called(ctx, tx, businessID, kind)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepository = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *MockAuditRepository) SaveAuditLogTx(ctx context.Context, tx pgx.Tx, log domain.AuditLog) error {
	return m.Called(ctx, tx, log).Error(0)
}

func (m *MockAuditRepository) ListAuditLogs(ctx context.Context, businessID string, entityType string, entityID string, limit int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, businessID, entityType, entityID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

// --- Mock BusinessService ---

type MockBusinessService struct {
	mock.Mock
}

var _ portssvc.BusinessSvcFacade = (*MockBusinessService)(nil)

func (m *MockBusinessService) CreateBusiness(ctx context.Context, req dto.CreateBusinessRequest, userID string) (*domain.Business, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessService) GetBusinessByID(ctx context.Context, businessID string, userID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessService) ListBusinessesByUser(ctx context.Context, userID string) ([]domain.Business, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Business), args.Error(1)
}

func (m *MockBusinessService) AuthorizeUserForBusiness(ctx context.Context, userID string, businessID string) error {
	return m.Called(ctx, userID, businessID).Error(0)
}

// --- Mock JournalPosterSvc (as used by the document bridges) ---

type MockJournalPoster struct {
	mock.Mock
}

var _ portssvc.JournalPosterSvc = (*MockJournalPoster)(nil)

func (m *MockJournalPoster) PostEntryInTx(ctx context.Context, tx pgx.Tx, businessID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tx, businessID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryWithTx = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockInvoiceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockInvoiceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, businessID string, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, businessID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceItem), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, businessID string, limit int, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListDueRecurringInvoices(ctx context.Context, businessID string, asOf time.Time) ([]domain.Invoice, error) {
	args := m.Called(ctx, businessID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListOpenInvoicesByCustomer(ctx context.Context, businessID string, customerID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, businessID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockInvoiceRepository) SaveInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	return m.Called(ctx, tx, invoice).Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	return m.Called(ctx, tx, invoice).Error(0)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryWithTx = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockPaymentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPaymentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, businessID string, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, businessID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, businessID string, limit int, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByInvoice(ctx context.Context, businessID string, invoiceID string) ([]domain.Payment, error) {
	args := m.Called(ctx, businessID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePaymentTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	return m.Called(ctx, tx, payment).Error(0)
}

func (m *MockPaymentRepository) SaveMobileMoneyTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.MobileMoneyTransaction) error {
	return m.Called(ctx, tx, txn).Error(0)
}

// --- Mock StockRepository ---

type MockStockRepository struct {
	mock.Mock
}

var _ portsrepo.StockRepositoryWithTx = (*MockStockRepository)(nil)

func (m *MockStockRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockStockRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockStockRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockStockRepository) FindMovementByID(ctx context.Context, businessID string, movementID string) (*domain.StockMovement, error) {
	args := m.Called(ctx, businessID, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}

func (m *MockStockRepository) ListMovementsByProduct(ctx context.Context, businessID string, productID string, limit int, offset int) ([]domain.StockMovement, error) {
	args := m.Called(ctx, businessID, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockStockRepository) SaveMovementTx(ctx context.Context, tx pgx.Tx, movement domain.StockMovement) error {
	return m.Called(ctx, tx, movement).Error(0)
}

// --- Mock PurchaseInvoiceRepository ---

type MockPurchaseInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.PurchaseInvoiceRepositoryWithTx = (*MockPurchaseInvoiceRepository)(nil)

func (m *MockPurchaseInvoiceRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockPurchaseInvoiceRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPurchaseInvoiceRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPurchaseInvoiceRepository) FindPurchaseInvoiceByID(ctx context.Context, businessID string, purchaseInvoiceID string) (*domain.PurchaseInvoice, error) {
	args := m.Called(ctx, businessID, purchaseInvoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseInvoice), args.Error(1)
}

func (m *MockPurchaseInvoiceRepository) FindItemsByPurchaseInvoiceID(ctx context.Context, purchaseInvoiceID string) ([]domain.PurchaseInvoiceItem, error) {
	args := m.Called(ctx, purchaseInvoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseInvoiceItem), args.Error(1)
}

func (m *MockPurchaseInvoiceRepository) ListPurchaseInvoices(ctx context.Context, businessID string, limit int, offset int) ([]domain.PurchaseInvoice, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseInvoice), args.Error(1)
}

func (m *MockPurchaseInvoiceRepository) SavePurchaseInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.PurchaseInvoice) error {
	return m.Called(ctx, tx, invoice).Error(0)
}

func (m *MockPurchaseInvoiceRepository) UpdatePurchaseInvoice(ctx context.Context, invoice domain.PurchaseInvoice) error {
	return m.Called(ctx, invoice).Error(0)
}

func (m *MockPurchaseInvoiceRepository) UpdatePurchaseInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.PurchaseInvoice) error {
	return m.Called(ctx, tx, invoice).Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepository = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) SaveTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	return m.Called(ctx, tx, txn).Error(0)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, businessID string, limit int, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, businessID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
