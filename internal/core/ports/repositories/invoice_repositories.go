package repositories

import (
	"context"
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// InvoiceReader defines read operations for invoice data.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice (without items) by ID.
	FindInvoiceByID(ctx context.Context, businessID string, invoiceID string) (*domain.Invoice, error)

	// FindItemsByInvoiceID retrieves all items of an invoice.
	FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error)

	// ListInvoices retrieves a paginated list of invoices for a business.
	ListInvoices(ctx context.Context, businessID string, limit int, offset int) ([]domain.Invoice, error)

	// ListDueRecurringInvoices retrieves recurring invoice templates whose next
	// due date is at or before asOf.
	ListDueRecurringInvoices(ctx context.Context, businessID string, asOf time.Time) ([]domain.Invoice, error)

	// ListOpenInvoicesByCustomer retrieves a customer's invoices that still
	// carry an open balance.
	ListOpenInvoicesByCustomer(ctx context.Context, businessID string, customerID string) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data.
type InvoiceWriter interface {
	// SaveInvoice persists an invoice and its items in its own transaction.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// SaveInvoiceTx persists an invoice and its items within an existing transaction.
	SaveInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error

	// UpdateInvoice updates an invoice's header fields (not items).
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoiceTx updates an invoice's header fields within an existing transaction.
	UpdateInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
