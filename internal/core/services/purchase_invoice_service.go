package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/bizledger/biz_ledger_app/internal/middleware"
)

// purchaseInvoiceService implements vendor bills and their ledger bridge.
// Recording a bill debits inventory for the goods value and VAT collected for
// the recoverable tax, crediting accounts payable for the total.
type purchaseInvoiceService struct {
	purchaseRepo portsrepo.PurchaseInvoiceRepositoryWithTx
	accountRepo  portsrepo.AccountReader
	sequenceRepo portsrepo.SequenceRepository
	auditRepo    portsrepo.AuditRepository
	journalSvc   portssvc.JournalPosterSvc
	businessSvc  portssvc.BusinessSvcFacade
}

// NewPurchaseInvoiceService creates a new purchase invoice service.
func NewPurchaseInvoiceService(
	purchaseRepo portsrepo.PurchaseInvoiceRepositoryWithTx,
	accountRepo portsrepo.AccountReader,
	sequenceRepo portsrepo.SequenceRepository,
	auditRepo portsrepo.AuditRepository,
	journalSvc portssvc.JournalPosterSvc,
	businessSvc portssvc.BusinessSvcFacade,
) portssvc.PurchaseInvoiceSvcFacade {
	return &purchaseInvoiceService{
		purchaseRepo: purchaseRepo,
		accountRepo:  accountRepo,
		sequenceRepo: sequenceRepo,
		auditRepo:    auditRepo,
		journalSvc:   journalSvc,
		businessSvc:  businessSvc,
	}
}

// Ensure purchaseInvoiceService implements portssvc.PurchaseInvoiceSvcFacade
var _ portssvc.PurchaseInvoiceSvcFacade = (*purchaseInvoiceService)(nil)

func buildPurchaseInvoiceItems(purchaseInvoiceID string, reqItems []dto.PurchaseInvoiceItemRequest) ([]domain.PurchaseInvoiceItem, decimal.Decimal, decimal.Decimal, error) {
	items := make([]domain.PurchaseInvoiceItem, len(reqItems))
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	for i, it := range reqItems {
		if it.Quantity.IsNegative() || it.Quantity.IsZero() {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: item %d quantity must be positive", apperrors.ErrValidation, i)
		}
		if it.UnitCost.IsNegative() {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: item %d unit cost cannot be negative", apperrors.ErrValidation, i)
		}
		if it.TaxRate.IsNegative() {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: item %d tax rate cannot be negative", apperrors.ErrValidation, i)
		}
		lineTotal := it.Quantity.Mul(it.UnitCost)
		taxAmount := lineTotal.Mul(it.TaxRate).Div(oneHundred).Round(2)
		items[i] = domain.PurchaseInvoiceItem{
			ItemID:            uuid.NewString(),
			PurchaseInvoiceID: purchaseInvoiceID,
			ProductID:         it.ProductID,
			Quantity:          it.Quantity,
			UnitCost:          it.UnitCost,
			TaxRate:           it.TaxRate,
			TaxAmount:         taxAmount,
			LineTotal:         lineTotal,
			Description:       it.Description,
		}
		subtotal = subtotal.Add(lineTotal)
		taxTotal = taxTotal.Add(taxAmount)
	}
	return items, subtotal, taxTotal, nil
}

// CreatePurchaseInvoice computes totals, numbers the bill, persists it and
// posts the matching journal entry in one transaction.
func (s *purchaseInvoiceService) CreatePurchaseInvoice(ctx context.Context, businessID string, req dto.CreatePurchaseInvoiceRequest, userID string) (*domain.PurchaseInvoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}

	business, err := s.businessSvc.GetBusinessByID(ctx, businessID, userID)
	if err != nil {
		return nil, err
	}
	accounts, err := resolveAccountsByCodes(ctx, s.accountRepo, businessID,
		domain.CodeInventory, domain.CodeVATCollected, domain.CodeAccountsPayable)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	bill := &domain.PurchaseInvoice{
		PurchaseInvoiceID: uuid.NewString(),
		BusinessID:        businessID,
		VendorID:          req.VendorID,
		InvoiceDate:       req.InvoiceDate,
		DueDate:           req.DueDate,
		Status:            domain.PurchaseReceived,
		PaidAmount:        decimal.Zero,
		CurrencyCode:      business.CurrencyCode,
		Notes:             req.Notes,
		AuditFields:       domain.NewAuditFields(userID, now),
	}
	bill.Items, bill.Subtotal, bill.TaxAmount, err = buildPurchaseInvoiceItems(bill.PurchaseInvoiceID, req.Items)
	if err != nil {
		return nil, err
	}
	bill.TotalAmount = bill.Subtotal.Add(bill.TaxAmount)
	bill.Balance = bill.TotalAmount

	tx, err := s.purchaseRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.purchaseRepo.Rollback(ctx, tx)

	seq, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.DocKindPurchaseInvoice)
	if err != nil {
		return nil, err
	}
	bill.InvoiceNumber = domain.DocKindPurchaseInvoice.FormatNumber(seq)

	if err := s.purchaseRepo.SavePurchaseInvoiceTx(ctx, tx, *bill); err != nil {
		return nil, err
	}

	lines := []dto.JournalLineRequest{
		{AccountID: accounts[domain.CodeInventory].AccountID, DebitAmount: bill.Subtotal, Description: "Goods on bill " + bill.InvoiceNumber},
	}
	if bill.TaxAmount.IsPositive() {
		lines = append(lines, dto.JournalLineRequest{
			AccountID:   accounts[domain.CodeVATCollected].AccountID,
			DebitAmount: bill.TaxAmount,
			Description: "VAT on bill " + bill.InvoiceNumber,
		})
	}
	lines = append(lines, dto.JournalLineRequest{
		AccountID:    accounts[domain.CodeAccountsPayable].AccountID,
		CreditAmount: bill.TotalAmount,
		Description:  "Bill " + bill.InvoiceNumber,
	})
	_, err = s.journalSvc.PostEntryInTx(ctx, tx, businessID, dto.CreateJournalEntryRequest{
		TransactionDate: req.InvoiceDate,
		Description:     "Purchase invoice " + bill.InvoiceNumber,
		Reference:       bill.InvoiceNumber,
		Lines:           lines,
	}, userID)
	if err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.recordPurchaseInvoiceAudit(ctx, bill, userID, now)
	logger.Info("purchase invoice created",
		slog.String("purchase_invoice_id", bill.PurchaseInvoiceID),
		slog.String("invoice_number", bill.InvoiceNumber),
		slog.String("total", bill.TotalAmount.String()))
	return bill, nil
}

// GetPurchaseInvoiceByID retrieves a purchase invoice with its items.
func (s *purchaseInvoiceService) GetPurchaseInvoiceByID(ctx context.Context, businessID string, purchaseInvoiceID string, userID string) (*domain.PurchaseInvoice, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	bill, err := s.purchaseRepo.FindPurchaseInvoiceByID(ctx, businessID, purchaseInvoiceID)
	if err != nil {
		return nil, err
	}
	bill.Items, err = s.purchaseRepo.FindItemsByPurchaseInvoiceID(ctx, purchaseInvoiceID)
	if err != nil {
		return nil, err
	}
	return bill, nil
}

// ListPurchaseInvoices retrieves a paginated list for a business.
func (s *purchaseInvoiceService) ListPurchaseInvoices(ctx context.Context, businessID string, limit int, offset int) ([]domain.PurchaseInvoice, error) {
	return s.purchaseRepo.ListPurchaseInvoices(ctx, businessID, limit, offset)
}

// recordPurchaseInvoiceAudit writes a best-effort audit record after commit.
func (s *purchaseInvoiceService) recordPurchaseInvoiceAudit(ctx context.Context, bill *domain.PurchaseInvoice, userID string, now time.Time) {
	details, _ := json.Marshal(map[string]any{
		"invoiceNumber": bill.InvoiceNumber,
		"status":        bill.Status,
		"totalAmount":   bill.TotalAmount,
	})
	err := s.auditRepo.SaveAuditLog(ctx, domain.AuditLog{
		AuditID:    uuid.NewString(),
		BusinessID: bill.BusinessID,
		UserID:     userID,
		Action:     domain.AuditActionCreate,
		EntityType: "PURCHASE_INVOICE",
		EntityID:   bill.PurchaseInvoiceID,
		Details:    details,
		CreatedAt:  now,
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to write audit log",
			slog.String("entity_id", bill.PurchaseInvoiceID), slog.String("error", err.Error()))
	}
}
