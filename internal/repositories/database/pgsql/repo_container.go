package pgsql

import (
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	sequenceRepo := newPgxSequenceRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	purchaseInvoiceRepo := newPgxPurchaseInvoiceRepository(dbPool)
	stockRepo := newPgxStockRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)
	businessRepo := newPgxBusinessRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:         accountRepo,
		JournalRepo:         journalRepo,
		SequenceRepo:        sequenceRepo,
		InvoiceRepo:         invoiceRepo,
		PaymentRepo:         paymentRepo,
		PurchaseInvoiceRepo: purchaseInvoiceRepo,
		StockRepo:           stockRepo,
		TransactionRepo:     transactionRepo,
		AuditRepo:           auditRepo,
		BusinessRepo:        businessRepo,
		UserRepo:            userRepo,
	}
}
