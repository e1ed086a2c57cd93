package repositories

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PurchaseInvoiceReader defines read operations for vendor bill data.
type PurchaseInvoiceReader interface {
	// FindPurchaseInvoiceByID retrieves a purchase invoice (without items) by ID.
	FindPurchaseInvoiceByID(ctx context.Context, businessID string, purchaseInvoiceID string) (*domain.PurchaseInvoice, error)

	// FindItemsByPurchaseInvoiceID retrieves all items of a purchase invoice.
	FindItemsByPurchaseInvoiceID(ctx context.Context, purchaseInvoiceID string) ([]domain.PurchaseInvoiceItem, error)

	// ListPurchaseInvoices retrieves a paginated list for a business.
	ListPurchaseInvoices(ctx context.Context, businessID string, limit int, offset int) ([]domain.PurchaseInvoice, error)
}

// PurchaseInvoiceWriter defines write operations for vendor bill data.
type PurchaseInvoiceWriter interface {
	// SavePurchaseInvoiceTx persists a purchase invoice and its items within an
	// existing transaction.
	SavePurchaseInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.PurchaseInvoice) error

	// UpdatePurchaseInvoice updates a purchase invoice's header fields.
	UpdatePurchaseInvoice(ctx context.Context, invoice domain.PurchaseInvoice) error

	// UpdatePurchaseInvoiceTx updates a purchase invoice's header fields within
	// an existing transaction.
	UpdatePurchaseInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.PurchaseInvoice) error
}

// PurchaseInvoiceRepositoryFacade combines all purchase-invoice repository interfaces
type PurchaseInvoiceRepositoryFacade interface {
	PurchaseInvoiceReader
	PurchaseInvoiceWriter
}

// PurchaseInvoiceRepositoryWithTx extends the facade with transaction capabilities
type PurchaseInvoiceRepositoryWithTx interface {
	PurchaseInvoiceRepositoryFacade
	TransactionManager
}
