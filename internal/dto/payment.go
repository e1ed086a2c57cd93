package dto

import (
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the data needed to record a payment.
type CreatePaymentRequest struct {
	PaymentType   domain.PaymentType   `json:"paymentType" binding:"required,oneof=RECEIPT PAYMENT"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH BANK MOBILE_MONEY CHECK"`
	Amount        decimal.Decimal      `json:"amount" binding:"required"`
	PaymentDate   time.Time            `json:"paymentDate" binding:"required"`
	CustomerID    string               `json:"customerID"`  // Required for RECEIPT
	VendorID      string               `json:"vendorID"`    // Required for PAYMENT
	InvoiceID     string               `json:"invoiceID"`   // Optional: invoice to apply against
	PhoneNumber   string               `json:"phoneNumber"` // Required for MOBILE_MONEY
	Reference     string               `json:"reference"`
	Notes         string               `json:"notes"`
}

// BulkPaymentRequest applies several payments in one call. Items succeed or
// fail independently.
type BulkPaymentRequest struct {
	Payments []CreatePaymentRequest `json:"payments" binding:"required,min=1,dive"`
}

// BulkPaymentItemResult reports the outcome of one item of a bulk request.
type BulkPaymentItemResult struct {
	Index   int              `json:"index"`
	Success bool             `json:"success"`
	Error   string           `json:"error,omitempty"`
	Payment *PaymentResponse `json:"payment,omitempty"`
}

// BulkPaymentResponse summarizes a bulk payment run.
type BulkPaymentResponse struct {
	Applied int                     `json:"applied"`
	Failed  int                     `json:"failed"`
	Results []BulkPaymentItemResult `json:"results"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string               `json:"paymentID"`
	BusinessID    string               `json:"businessID"`
	PaymentNumber string               `json:"paymentNumber"`
	PaymentType   domain.PaymentType   `json:"paymentType"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentDate   time.Time            `json:"paymentDate"`
	CustomerID    string               `json:"customerID,omitempty"`
	VendorID      string               `json:"vendorID,omitempty"`
	InvoiceID     string               `json:"invoiceID,omitempty"`
	Reference     string               `json:"reference"`
	Notes         string               `json:"notes"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		BusinessID:    p.BusinessID,
		PaymentNumber: p.PaymentNumber,
		PaymentType:   p.PaymentType,
		PaymentMethod: p.PaymentMethod,
		Amount:        p.Amount,
		PaymentDate:   p.PaymentDate,
		CustomerID:    p.CustomerID,
		VendorID:      p.VendorID,
		InvoiceID:     p.InvoiceID,
		Reference:     p.Reference,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// ToListPaymentResponse converts domain payments to response DTOs.
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return res
}

// ListPaymentsResponse wraps the list of payments.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}
