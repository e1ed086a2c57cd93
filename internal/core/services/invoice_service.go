package services

import (
	"context"
	"encoding/json"
	"errors"
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

var (
	ErrInvoicePaidImmutable = errors.New("a paid invoice cannot change status")
	ErrInvoiceNotYetDue     = errors.New("invoice cannot be overdue before its due date")
	ErrInvoiceNotFullyPaid  = errors.New("payments recorded against the invoice do not cover its total")
	ErrRecurringTypeMissing = errors.New("recurring invoices require a recurring type")
)

var oneHundred = decimal.NewFromInt(100)

// invoiceService implements the sales invoice lifecycle and its ledger bridge.
// Creating an invoice debits accounts receivable for the total and credits
// sales revenue and VAT collected, in the same transaction as the invoice row.
type invoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepositoryWithTx
	paymentRepo  portsrepo.PaymentReader
	accountRepo  portsrepo.AccountReader
	sequenceRepo portsrepo.SequenceRepository
	auditRepo    portsrepo.AuditRepository
	journalSvc   portssvc.JournalPosterSvc
	businessSvc  portssvc.BusinessSvcFacade
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryWithTx,
	paymentRepo portsrepo.PaymentReader,
	accountRepo portsrepo.AccountReader,
	sequenceRepo portsrepo.SequenceRepository,
	auditRepo portsrepo.AuditRepository,
	journalSvc portssvc.JournalPosterSvc,
	businessSvc portssvc.BusinessSvcFacade,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		accountRepo:  accountRepo,
		sequenceRepo: sequenceRepo,
		auditRepo:    auditRepo,
		journalSvc:   journalSvc,
		businessSvc:  businessSvc,
	}
}

// Ensure invoiceService implements the portssvc.InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// resolveAccountsByCodes looks up well-known accounts, failing with a
// configuration error when any are missing from the business's chart.
func resolveAccountsByCodes(ctx context.Context, accountRepo portsrepo.AccountReader, businessID string, codes ...string) (map[string]domain.Account, error) {
	accounts, err := accountRepo.FindAccountsByCodes(ctx, businessID, codes)
	if err != nil {
		return nil, err
	}
	for _, code := range codes {
		if _, ok := accounts[code]; !ok {
			return nil, fmt.Errorf("%w: account with code %s is missing from the chart of accounts", apperrors.ErrConfiguration, code)
		}
	}
	return accounts, nil
}

func buildInvoiceItems(invoiceID string, reqItems []dto.InvoiceItemRequest) ([]domain.InvoiceItem, decimal.Decimal, decimal.Decimal, error) {
	items := make([]domain.InvoiceItem, len(reqItems))
	subtotal := decimal.Zero
	taxTotal := decimal.Zero
	for i, it := range reqItems {
		if it.Quantity.IsNegative() || it.Quantity.IsZero() {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: item %d quantity must be positive", apperrors.ErrValidation, i)
		}
		if it.UnitPrice.IsNegative() {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: item %d unit price cannot be negative", apperrors.ErrValidation, i)
		}
		if it.TaxRate.IsNegative() {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: item %d tax rate cannot be negative", apperrors.ErrValidation, i)
		}
		lineTotal := it.Quantity.Mul(it.UnitPrice)
		taxAmount := lineTotal.Mul(it.TaxRate).Div(oneHundred).Round(2)
		items[i] = domain.InvoiceItem{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoiceID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TaxRate:     it.TaxRate,
			TaxAmount:   taxAmount,
			LineTotal:   lineTotal,
			Description: it.Description,
		}
		subtotal = subtotal.Add(lineTotal)
		taxTotal = taxTotal.Add(taxAmount)
	}
	return items, subtotal, taxTotal, nil
}

// CreateInvoice computes totals, numbers the invoice, persists it and posts
// the matching journal entry in one transaction.
func (s *invoiceService) CreateInvoice(ctx context.Context, businessID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	if req.IsRecurring && req.RecurringType == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrRecurringTypeMissing.Error())
	}

	business, err := s.businessSvc.GetBusinessByID(ctx, businessID, userID)
	if err != nil {
		return nil, err
	}
	accounts, err := resolveAccountsByCodes(ctx, s.accountRepo, businessID,
		domain.CodeAccountsReceivable, domain.CodeSalesRevenue, domain.CodeVATCollected)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.InvoiceDraft
	}

	now := time.Now()
	invoice := &domain.Invoice{
		InvoiceID:    uuid.NewString(),
		BusinessID:   businessID,
		CustomerID:   req.CustomerID,
		InvoiceDate:  req.InvoiceDate,
		DueDate:      req.DueDate,
		Status:       status,
		PaidAmount:   decimal.Zero,
		CurrencyCode: business.CurrencyCode,
		Notes:        req.Notes,
		IsRecurring:  req.IsRecurring,
		AuditFields:  domain.NewAuditFields(userID, now),
	}
	invoice.Items, invoice.Subtotal, invoice.TaxAmount, err = buildInvoiceItems(invoice.InvoiceID, req.Items)
	if err != nil {
		return nil, err
	}
	invoice.TotalAmount = invoice.Subtotal.Add(invoice.TaxAmount)
	invoice.Balance = invoice.TotalAmount
	if req.IsRecurring {
		invoice.RecurringType = req.RecurringType
		next := req.RecurringType.NextDueDate(req.InvoiceDate)
		invoice.NextDueDate = &next
	}

	tx, err := s.invoiceRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.invoiceRepo.Rollback(ctx, tx)

	seq, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.DocKindInvoice)
	if err != nil {
		return nil, err
	}
	invoice.InvoiceNumber = domain.DocKindInvoice.FormatNumber(seq)

	if err := s.invoiceRepo.SaveInvoiceTx(ctx, tx, *invoice); err != nil {
		return nil, err
	}

	lines := []dto.JournalLineRequest{
		{AccountID: accounts[domain.CodeAccountsReceivable].AccountID, DebitAmount: invoice.TotalAmount, Description: "Invoice " + invoice.InvoiceNumber},
		{AccountID: accounts[domain.CodeSalesRevenue].AccountID, CreditAmount: invoice.Subtotal, Description: "Sales for invoice " + invoice.InvoiceNumber},
	}
	if invoice.TaxAmount.IsPositive() {
		lines = append(lines, dto.JournalLineRequest{
			AccountID:    accounts[domain.CodeVATCollected].AccountID,
			CreditAmount: invoice.TaxAmount,
			Description:  "VAT for invoice " + invoice.InvoiceNumber,
		})
	}
	_, err = s.journalSvc.PostEntryInTx(ctx, tx, businessID, dto.CreateJournalEntryRequest{
		TransactionDate: req.InvoiceDate,
		Description:     "Invoice " + invoice.InvoiceNumber,
		Reference:       invoice.InvoiceNumber,
		Lines:           lines,
	}, userID)
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.recordInvoiceAudit(ctx, invoice, domain.AuditActionCreate, userID, now)
	logger.Info("invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("total", invoice.TotalAmount.String()))
	return invoice, nil
}

// UpdateInvoiceStatus transitions an invoice through its lifecycle. Marking
// an invoice PAID requires recorded payments covering the total; any open
// balance then settles with a posted entry. Paid invoices are immutable.
func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, businessID string, invoiceID string, status domain.InvoiceStatus, userID string) (*domain.Invoice, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, status)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, businessID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoicePaid {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrInvoicePaidImmutable.Error())
	}

	now := time.Now()
	switch status {
	case domain.InvoiceOverdue:
		if invoice.DueDate.After(now) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvoiceNotYetDue.Error())
		}
	case domain.InvoicePaid:
		payments, err := s.paymentRepo.ListPaymentsByInvoice(ctx, businessID, invoiceID)
		if err != nil {
			return nil, err
		}
		totalPaid := decimal.Zero
		for _, p := range payments {
			totalPaid = totalPaid.Add(p.Amount)
		}
		if totalPaid.LessThan(invoice.TotalAmount) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrInvoiceNotFullyPaid.Error())
		}
		return s.settleInvoice(ctx, invoice, userID, now)
	}

	invoice.Status = status
	invoice.Touch(userID, now)
	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		return nil, err
	}
	s.recordInvoiceAudit(ctx, invoice, domain.AuditActionUpdate, userID, now)
	return invoice, nil
}

// settleInvoice marks an invoice PAID. Any open balance is settled against the
// mobile money account and posted in the same transaction as the status change.
func (s *invoiceService) settleInvoice(ctx context.Context, invoice *domain.Invoice, userID string, now time.Time) (*domain.Invoice, error) {
	remaining := invoice.Balance

	tx, err := s.invoiceRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.invoiceRepo.Rollback(ctx, tx)

	if remaining.IsPositive() {
		settlementCode := domain.SettlementCodeForMethod(domain.MethodMobileMoney)
		accounts, err := resolveAccountsByCodes(ctx, s.accountRepo, invoice.BusinessID,
			settlementCode, domain.CodeAccountsReceivable)
		if err != nil {
			return nil, err
		}
		_, err = s.journalSvc.PostEntryInTx(ctx, tx, invoice.BusinessID, dto.CreateJournalEntryRequest{
			TransactionDate: now,
			Description:     "Settlement of invoice " + invoice.InvoiceNumber,
			Reference:       invoice.InvoiceNumber,
			Lines: []dto.JournalLineRequest{
				{AccountID: accounts[settlementCode].AccountID, DebitAmount: remaining, Description: "Settlement of invoice " + invoice.InvoiceNumber},
				{AccountID: accounts[domain.CodeAccountsReceivable].AccountID, CreditAmount: remaining, Description: "Settlement of invoice " + invoice.InvoiceNumber},
			},
		}, userID)
		if err != nil {
			return nil, err
		}
	}

	invoice.PaidAmount = invoice.TotalAmount
	invoice.Balance = decimal.Zero
	invoice.Status = domain.InvoicePaid
	invoice.Touch(userID, now)
	if err := s.invoiceRepo.UpdateInvoiceTx(ctx, tx, *invoice); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	s.recordInvoiceAudit(ctx, invoice, domain.AuditActionUpdate, userID, now)
	return invoice, nil
}

// GenerateRecurringInvoices creates invoices from recurring templates due at
// or before asOf, advancing each template's next due date. A failing template
// does not stop the run.
func (s *invoiceService) GenerateRecurringInvoices(ctx context.Context, businessID string, asOf time.Time, userID string) ([]domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}

	templates, err := s.invoiceRepo.ListDueRecurringInvoices(ctx, businessID, asOf)
	if err != nil {
		return nil, err
	}

	generated := []domain.Invoice{}
	for _, tpl := range templates {
		items, err := s.invoiceRepo.FindItemsByInvoiceID(ctx, tpl.InvoiceID)
		if err != nil {
			logger.Warn("skipping recurring template", slog.String("invoice_id", tpl.InvoiceID), slog.String("error", err.Error()))
			continue
		}
		reqItems := make([]dto.InvoiceItemRequest, len(items))
		for i, it := range items {
			reqItems[i] = dto.InvoiceItemRequest{
				ProductID:   it.ProductID,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				TaxRate:     it.TaxRate,
				Description: it.Description,
			}
		}
		term := tpl.DueDate.Sub(tpl.InvoiceDate)
		invoice, err := s.CreateInvoice(ctx, businessID, dto.CreateInvoiceRequest{
			CustomerID:  tpl.CustomerID,
			InvoiceDate: asOf,
			DueDate:     asOf.Add(term),
			Notes:       tpl.Notes,
			Items:       reqItems,
		}, userID)
		if err != nil {
			logger.Warn("failed to generate recurring invoice", slog.String("template_id", tpl.InvoiceID), slog.String("error", err.Error()))
			continue
		}
		generated = append(generated, *invoice)

		next := tpl.RecurringType.NextDueDate(asOf)
		tpl.NextDueDate = &next
		tpl.Touch(userID, asOf)
		if err := s.invoiceRepo.UpdateInvoice(ctx, tpl); err != nil {
			logger.Warn("failed to advance recurring template", slog.String("template_id", tpl.InvoiceID), slog.String("error", err.Error()))
		}
	}
	return generated, nil
}

// UpdateRecurringStatus turns an invoice into a recurring template or stops
// an existing one. Enabling requires a cadence; the next due date is scheduled
// one cadence ahead of now.
func (s *invoiceService) UpdateRecurringStatus(ctx context.Context, businessID string, invoiceID string, req dto.UpdateRecurringStatusRequest, userID string) (*domain.Invoice, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	if req.IsRecurring && req.RecurringType == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrRecurringTypeMissing.Error())
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, businessID, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == domain.InvoiceCancelled {
		return nil, fmt.Errorf("%w: a cancelled invoice cannot be a recurring template", apperrors.ErrConflict)
	}

	now := time.Now()
	invoice.IsRecurring = req.IsRecurring
	if req.IsRecurring {
		invoice.RecurringType = req.RecurringType
		next := req.RecurringType.NextDueDate(now)
		invoice.NextDueDate = &next
	} else {
		invoice.RecurringType = nil
		invoice.NextDueDate = nil
	}
	invoice.Touch(userID, now)

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		return nil, err
	}
	s.recordInvoiceAudit(ctx, invoice, domain.AuditActionUpdate, userID, now)
	return invoice, nil
}

// ListInvoicesForCustomer retrieves a customer's invoices with an open
// balance, oldest due first.
func (s *invoiceService) ListInvoicesForCustomer(ctx context.Context, businessID string, customerID string, userID string) ([]domain.Invoice, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListOpenInvoicesByCustomer(ctx, businessID, customerID)
}

// GetInvoiceByID retrieves an invoice with its items.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, businessID string, invoiceID string, userID string) (*domain.Invoice, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, businessID, invoiceID)
	if err != nil {
		return nil, err
	}
	invoice.Items, err = s.invoiceRepo.FindItemsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// ListInvoices retrieves a paginated list of invoices for a business.
func (s *invoiceService) ListInvoices(ctx context.Context, businessID string, limit int, offset int) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListInvoices(ctx, businessID, limit, offset)
}

// recordInvoiceAudit writes a best-effort audit record after commit.
func (s *invoiceService) recordInvoiceAudit(ctx context.Context, invoice *domain.Invoice, action domain.AuditAction, userID string, now time.Time) {
	details, _ := json.Marshal(map[string]any{
		"invoiceNumber": invoice.InvoiceNumber,
		"status":        invoice.Status,
		"totalAmount":   invoice.TotalAmount,
		"balance":       invoice.Balance,
	})
	err := s.auditRepo.SaveAuditLog(ctx, domain.AuditLog{
		AuditID:    uuid.NewString(),
		BusinessID: invoice.BusinessID,
		UserID:     userID,
		Action:     action,
		EntityType: "INVOICE",
		EntityID:   invoice.InvoiceID,
		Details:    details,
		CreatedAt:  now,
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to write audit log",
			slog.String("entity_id", invoice.InvoiceID), slog.String("error", err.Error()))
	}
}
