package services

import (
	"context"
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice with its items.
	GetInvoiceByID(ctx context.Context, businessID string, invoiceID string, userID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of invoices for a business.
	ListInvoices(ctx context.Context, businessID string, limit int, offset int) ([]domain.Invoice, error)

	// ListInvoicesForCustomer retrieves a customer's invoices with an open
	// balance, oldest due first.
	ListInvoicesForCustomer(ctx context.Context, businessID string, customerID string, userID string) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice computes totals, numbers the invoice, persists it and
	// posts the matching journal entry in one transaction.
	CreateInvoice(ctx context.Context, businessID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)

	// UpdateInvoiceStatus transitions an invoice through its lifecycle.
	UpdateInvoiceStatus(ctx context.Context, businessID string, invoiceID string, status domain.InvoiceStatus, userID string) (*domain.Invoice, error)

	// GenerateRecurringInvoices creates invoices from recurring templates due
	// at or before asOf, advancing each template's next due date.
	GenerateRecurringInvoices(ctx context.Context, businessID string, asOf time.Time, userID string) ([]domain.Invoice, error)

	// UpdateRecurringStatus turns an invoice into a recurring template or
	// stops an existing one.
	UpdateRecurringStatus(ctx context.Context, businessID string, invoiceID string, req dto.UpdateRecurringStatusRequest, userID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
