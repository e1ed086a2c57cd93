package repositories

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentReader defines read operations for payment data.
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by ID.
	FindPaymentByID(ctx context.Context, businessID string, paymentID string) (*domain.Payment, error)

	// ListPayments retrieves a paginated list of payments for a business.
	ListPayments(ctx context.Context, businessID string, limit int, offset int) ([]domain.Payment, error)

	// ListPaymentsByInvoice retrieves all payments applied to an invoice.
	ListPaymentsByInvoice(ctx context.Context, businessID string, invoiceID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data.
type PaymentWriter interface {
	// SavePaymentTx persists a payment within an existing transaction.
	SavePaymentTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error

	// SaveMobileMoneyTransactionTx persists the provider-side record of a
	// mobile money payment within the same transaction as the payment.
	SaveMobileMoneyTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.MobileMoneyTransaction) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
