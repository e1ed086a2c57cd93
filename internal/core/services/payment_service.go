package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/bizledger/biz_ledger_app/internal/apperrors"
	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	portsrepo "github.com/bizledger/biz_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/bizledger/biz_ledger_app/internal/middleware"
	"github.com/bizledger/biz_ledger_app/internal/utils"
)

var (
	ErrPaymentAmountNotPositive = errors.New("payment amount must be positive")
	ErrReceiptNeedsCustomer     = errors.New("receipts require a customer")
	ErrPaymentNeedsVendor       = errors.New("vendor payments require a vendor")
	ErrMobileMoneyNeedsPhone    = errors.New("mobile money payments require a phone number")
)

const mobileMoneyProvider = "MTN"

// paymentService implements money movements and their ledger bridge. Receipts
// debit the settlement account and credit accounts receivable; vendor payments
// debit accounts payable and credit the settlement account.
type paymentService struct {
	paymentRepo     portsrepo.PaymentRepositoryWithTx
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	accountRepo     portsrepo.AccountReader
	sequenceRepo    portsrepo.SequenceRepository
	transactionRepo portsrepo.TransactionRepository
	auditRepo       portsrepo.AuditRepository
	journalSvc      portssvc.JournalPosterSvc
	businessSvc     portssvc.BusinessSvcFacade
	posthogClient   *utils.PosthogClientWrapper
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryWithTx,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	accountRepo portsrepo.AccountReader,
	sequenceRepo portsrepo.SequenceRepository,
	transactionRepo portsrepo.TransactionRepository,
	auditRepo portsrepo.AuditRepository,
	journalSvc portssvc.JournalPosterSvc,
	businessSvc portssvc.BusinessSvcFacade,
	posthogClient *utils.PosthogClientWrapper,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:     paymentRepo,
		invoiceRepo:     invoiceRepo,
		accountRepo:     accountRepo,
		sequenceRepo:    sequenceRepo,
		transactionRepo: transactionRepo,
		auditRepo:       auditRepo,
		journalSvc:      journalSvc,
		businessSvc:     businessSvc,
		posthogClient:   posthogClient,
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func validatePaymentRequest(req dto.CreatePaymentRequest) error {
	if !req.PaymentType.IsValid() {
		return fmt.Errorf("%w: unknown payment type %q", apperrors.ErrValidation, req.PaymentType)
	}
	if !req.PaymentMethod.IsValid() {
		return fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPaymentAmountNotPositive.Error())
	}
	if req.PaymentType == domain.PaymentReceipt && req.CustomerID == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrReceiptNeedsCustomer.Error())
	}
	if req.PaymentType == domain.PaymentOutgoing && req.VendorID == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPaymentNeedsVendor.Error())
	}
	if req.PaymentMethod == domain.MethodMobileMoney && req.PhoneNumber == "" {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrMobileMoneyNeedsPhone.Error())
	}
	return nil
}

// paymentLines builds the two-sided posting for a payment.
func (s *paymentService) paymentLines(ctx context.Context, businessID string, payment *domain.Payment) ([]dto.JournalLineRequest, error) {
	settlementCode := domain.SettlementCodeForMethod(payment.PaymentMethod)
	desc := "Payment " + payment.PaymentNumber

	if payment.PaymentType == domain.PaymentReceipt {
		accounts, err := resolveAccountsByCodes(ctx, s.accountRepo, businessID, settlementCode, domain.CodeAccountsReceivable)
		if err != nil {
			return nil, err
		}
		return []dto.JournalLineRequest{
			{AccountID: accounts[settlementCode].AccountID, DebitAmount: payment.Amount, Description: desc},
			{AccountID: accounts[domain.CodeAccountsReceivable].AccountID, CreditAmount: payment.Amount, Description: desc},
		}, nil
	}

	accounts, err := resolveAccountsByCodes(ctx, s.accountRepo, businessID, settlementCode, domain.CodeAccountsPayable)
	if err != nil {
		return nil, err
	}
	return []dto.JournalLineRequest{
		{AccountID: accounts[domain.CodeAccountsPayable].AccountID, DebitAmount: payment.Amount, Description: desc},
		{AccountID: accounts[settlementCode].AccountID, CreditAmount: payment.Amount, Description: desc},
	}, nil
}

// CreatePayment numbers the payment, persists it, posts the matching journal
// entry and applies it to the referenced invoice, all in one transaction.
func (s *paymentService) CreatePayment(ctx context.Context, businessID string, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	if err := validatePaymentRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	payment := &domain.Payment{
		PaymentID:     uuid.NewString(),
		BusinessID:    businessID,
		PaymentType:   req.PaymentType,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		CustomerID:    req.CustomerID,
		VendorID:      req.VendorID,
		InvoiceID:     req.InvoiceID,
		Reference:     req.Reference,
		Notes:         req.Notes,
		AuditFields:   domain.NewAuditFields(userID, now),
	}

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.paymentRepo.Rollback(ctx, tx)

	seq, err := s.sequenceRepo.NextNumberTx(ctx, tx, businessID, domain.DocKindPayment)
	if err != nil {
		return nil, err
	}
	payment.PaymentNumber = domain.DocKindPayment.FormatNumber(seq)

	if err := s.paymentRepo.SavePaymentTx(ctx, tx, *payment); err != nil {
		return nil, err
	}

	lines, err := s.paymentLines(ctx, businessID, payment)
	if err != nil {
		return nil, err
	}
	_, err = s.journalSvc.PostEntryInTx(ctx, tx, businessID, dto.CreateJournalEntryRequest{
		TransactionDate: req.PaymentDate,
		Description:     "Payment " + payment.PaymentNumber,
		Reference:       payment.PaymentNumber,
		Lines:           lines,
	}, userID)
	if err != nil {
		return nil, err
	}

	if req.PaymentMethod == domain.MethodMobileMoney {
		err = s.paymentRepo.SaveMobileMoneyTransactionTx(ctx, tx, domain.MobileMoneyTransaction{
			TransactionID: uuid.NewString(),
			PaymentID:     payment.PaymentID,
			BusinessID:    businessID,
			Provider:      mobileMoneyProvider,
			PhoneNumber:   req.PhoneNumber,
			Amount:        req.Amount,
			Reference:     payment.PaymentNumber,
			CreatedAt:     now,
		})
		if err != nil {
			return nil, err
		}
	}

	if req.InvoiceID != "" && req.PaymentType == domain.PaymentReceipt {
		if err := s.applyToInvoice(ctx, tx, businessID, req.InvoiceID, req.Amount, userID, now); err != nil {
			return nil, err
		}
	}

	if err := s.transactionRepo.SaveTransactionTx(ctx, tx, buildAnalyticsTransaction(payment, userID, now)); err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.recordPaymentAudit(ctx, payment, userID, now)
	s.posthogClient.Enqueue(userID, "payment_created", map[string]any{
		"business_id":    businessID,
		"payment_type":   string(payment.PaymentType),
		"payment_method": string(payment.PaymentMethod),
	})
	logger.Info("payment created",
		slog.String("payment_id", payment.PaymentID),
		slog.String("payment_number", payment.PaymentNumber),
		slog.String("amount", payment.Amount.String()))
	return payment, nil
}

// applyToInvoice adds the receipt amount to the invoice's paid total and
// flips it to PAID once fully covered. The applied amount is clamped to the
// open balance so the balance never goes negative.
func (s *paymentService) applyToInvoice(ctx context.Context, tx pgx.Tx, businessID string, invoiceID string, amount decimal.Decimal, userID string, now time.Time) error {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, businessID, invoiceID)
	if err != nil {
		return err
	}
	if invoice.Status == domain.InvoiceCancelled {
		return fmt.Errorf("%w: cannot apply a payment to a cancelled invoice", apperrors.ErrConflict)
	}

	applied := decimal.Min(amount, invoice.Balance)
	invoice.PaidAmount = invoice.PaidAmount.Add(applied)
	invoice.Balance = invoice.TotalAmount.Sub(invoice.PaidAmount)
	if invoice.PaidAmount.GreaterThanOrEqual(invoice.TotalAmount) {
		invoice.Status = domain.InvoicePaid
	} else if invoice.Status == domain.InvoiceSent && invoice.DueDate.Before(now) {
		invoice.Status = domain.InvoiceOverdue
	}
	invoice.Touch(userID, now)
	return s.invoiceRepo.UpdateInvoiceTx(ctx, tx, *invoice)
}

func buildAnalyticsTransaction(payment *domain.Payment, userID string, now time.Time) domain.Transaction {
	direction := domain.DirectionIncome
	category := "SALES"
	if payment.PaymentType == domain.PaymentOutgoing {
		direction = domain.DirectionExpense
		category = "PURCHASES"
	}
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		BusinessID:    payment.BusinessID,
		Direction:     direction,
		Amount:        payment.Amount,
		Category:      category,
		Description:   "Payment " + payment.PaymentNumber,
		PaymentMethod: payment.PaymentMethod,
		ReferenceID:   payment.PaymentID,
		OccurredAt:    payment.PaymentDate,
		AuditFields:   domain.NewAuditFields(userID, now),
	}
}

// BulkCreatePayments applies several payments; items succeed or fail
// independently and the response reports each outcome.
func (s *paymentService) BulkCreatePayments(ctx context.Context, businessID string, req dto.BulkPaymentRequest, userID string) (*dto.BulkPaymentResponse, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}

	resp := &dto.BulkPaymentResponse{
		Results: make([]dto.BulkPaymentItemResult, len(req.Payments)),
	}
	for i, item := range req.Payments {
		// Receipts against an invoice are clamped to the open balance so a
		// bulk run never overpays an invoice.
		if item.InvoiceID != "" && item.PaymentType == domain.PaymentReceipt {
			invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, businessID, item.InvoiceID)
			if err != nil {
				resp.Failed++
				resp.Results[i] = dto.BulkPaymentItemResult{Index: i, Success: false, Error: err.Error()}
				continue
			}
			item.Amount = decimal.Min(item.Amount, invoice.Balance)
			if !item.Amount.IsPositive() {
				resp.Failed++
				resp.Results[i] = dto.BulkPaymentItemResult{
					Index:   i,
					Success: false,
					Error:   fmt.Errorf("%w: invoice %s has no open balance", apperrors.ErrConflict, item.InvoiceID).Error(),
				}
				continue
			}
		}
		payment, err := s.CreatePayment(ctx, businessID, item, userID)
		if err != nil {
			resp.Failed++
			resp.Results[i] = dto.BulkPaymentItemResult{Index: i, Success: false, Error: err.Error()}
			continue
		}
		resp.Applied++
		paymentResp := dto.ToPaymentResponse(payment)
		resp.Results[i] = dto.BulkPaymentItemResult{Index: i, Success: true, Payment: &paymentResp}
	}
	return resp, nil
}

// GetPaymentByID retrieves a payment by ID.
func (s *paymentService) GetPaymentByID(ctx context.Context, businessID string, paymentID string, userID string) (*domain.Payment, error) {
	if err := s.businessSvc.AuthorizeUserForBusiness(ctx, userID, businessID); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindPaymentByID(ctx, businessID, paymentID)
}

// ListPayments retrieves a paginated list of payments for a business.
func (s *paymentService) ListPayments(ctx context.Context, businessID string, limit int, offset int) ([]domain.Payment, error) {
	return s.paymentRepo.ListPayments(ctx, businessID, limit, offset)
}

// recordPaymentAudit writes a best-effort audit record after commit.
func (s *paymentService) recordPaymentAudit(ctx context.Context, payment *domain.Payment, userID string, now time.Time) {
	details, _ := json.Marshal(map[string]any{
		"paymentNumber": payment.PaymentNumber,
		"paymentType":   payment.PaymentType,
		"amount":        payment.Amount,
	})
	err := s.auditRepo.SaveAuditLog(ctx, domain.AuditLog{
		AuditID:    uuid.NewString(),
		BusinessID: payment.BusinessID,
		UserID:     userID,
		Action:     domain.AuditActionCreate,
		EntityType: "PAYMENT",
		EntityID:   payment.PaymentID,
		Details:    details,
		CreatedAt:  now,
	})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("failed to write audit log",
			slog.String("entity_id", payment.PaymentID), slog.String("error", err.Error()))
	}
}
