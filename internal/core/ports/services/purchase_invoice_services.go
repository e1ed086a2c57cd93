package services

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/dto"
)

// PurchaseInvoiceSvcFacade defines operations for vendor bills.
type PurchaseInvoiceSvcFacade interface {
	// CreatePurchaseInvoice computes totals, numbers the bill, persists it and
	// posts the matching journal entry in one transaction.
	CreatePurchaseInvoice(ctx context.Context, businessID string, req dto.CreatePurchaseInvoiceRequest, userID string) (*domain.PurchaseInvoice, error)

	// GetPurchaseInvoiceByID retrieves a purchase invoice with its items.
	GetPurchaseInvoiceByID(ctx context.Context, businessID string, purchaseInvoiceID string, userID string) (*domain.PurchaseInvoice, error)

	// ListPurchaseInvoices retrieves a paginated list for a business.
	ListPurchaseInvoices(ctx context.Context, businessID string, limit int, offset int) ([]domain.PurchaseInvoice, error)
}
