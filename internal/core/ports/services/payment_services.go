package services

import (
	"context"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/bizledger/biz_ledger_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment by ID.
	GetPaymentByID(ctx context.Context, businessID string, paymentID string, userID string) (*domain.Payment, error)

	// ListPayments retrieves a paginated list of payments for a business.
	ListPayments(ctx context.Context, businessID string, limit int, offset int) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// CreatePayment numbers the payment, persists it, posts the matching
	// journal entry and applies it to the referenced invoice, all in one
	// transaction.
	CreatePayment(ctx context.Context, businessID string, req dto.CreatePaymentRequest, userID string) (*domain.Payment, error)

	// BulkCreatePayments applies several payments; items succeed or fail
	// independently and the response reports each outcome.
	BulkCreatePayments(ctx context.Context, businessID string, req dto.BulkPaymentRequest, userID string) (*dto.BulkPaymentResponse, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
