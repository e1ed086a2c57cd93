package dto

import (
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest defines one product line of an invoice to be created.
// Tax and line totals are computed server-side from quantity, price and rate.
type InvoiceItemRequest struct {
	ProductID   string          `json:"productID" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Description string          `json:"description"`
}

// CreateInvoiceRequest defines the data needed to create an invoice.
// Status defaults to DRAFT when not given.
type CreateInvoiceRequest struct {
	CustomerID    string                `json:"customerID" binding:"required"`
	InvoiceDate   time.Time             `json:"invoiceDate" binding:"required"`
	DueDate       time.Time             `json:"dueDate" binding:"required"`
	Status        domain.InvoiceStatus  `json:"status" binding:"omitempty,oneof=DRAFT SENT"`
	Notes         string                `json:"notes"`
	IsRecurring   bool                  `json:"isRecurring"`
	RecurringType *domain.RecurringType `json:"recurringType" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY QUARTERLY YEARLY"`
	Items         []InvoiceItemRequest  `json:"items" binding:"required,min=1,dive"`
}

// UpdateRecurringStatusRequest turns an invoice into a recurring template or
// stops an existing one. RecurringType is required when enabling.
type UpdateRecurringStatusRequest struct {
	IsRecurring   bool                  `json:"isRecurring"`
	RecurringType *domain.RecurringType `json:"recurringType" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY QUARTERLY YEARLY"`
}

// UpdateInvoiceStatusRequest defines a lifecycle transition request.
type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required,oneof=DRAFT SENT PAID OVERDUE CANCELLED"`
}

// InvoiceItemResponse defines the data returned for an invoice item.
type InvoiceItemResponse struct {
	ItemID      string          `json:"itemID"`
	ProductID   string          `json:"productID"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
	Description string          `json:"description"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string                `json:"invoiceID"`
	BusinessID    string                `json:"businessID"`
	CustomerID    string                `json:"customerID"`
	InvoiceNumber string                `json:"invoiceNumber"`
	InvoiceDate   time.Time             `json:"invoiceDate"`
	DueDate       time.Time             `json:"dueDate"`
	Status        domain.InvoiceStatus  `json:"status"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TaxAmount     decimal.Decimal       `json:"taxAmount"`
	TotalAmount   decimal.Decimal       `json:"totalAmount"`
	PaidAmount    decimal.Decimal       `json:"paidAmount"`
	Balance       decimal.Decimal       `json:"balance"`
	CurrencyCode  string                `json:"currencyCode"`
	Notes         string                `json:"notes"`
	IsRecurring   bool                  `json:"isRecurring"`
	RecurringType *domain.RecurringType `json:"recurringType,omitempty"`
	NextDueDate   *time.Time            `json:"nextDueDate,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
	Items         []InvoiceItemResponse `json:"items,omitempty"`
}

// ToInvoiceItemResponse converts a domain invoice item to its response DTO.
func ToInvoiceItemResponse(it *domain.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		ItemID:      it.ItemID,
		ProductID:   it.ProductID,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		TaxRate:     it.TaxRate,
		TaxAmount:   it.TaxAmount,
		LineTotal:   it.LineTotal,
		Description: it.Description,
	}
}

// ToInvoiceResponse converts a domain.Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = ToInvoiceItemResponse(&it)
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		BusinessID:    inv.BusinessID,
		CustomerID:    inv.CustomerID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		DueDate:       inv.DueDate,
		Status:        inv.Status,
		Subtotal:      inv.Subtotal,
		TaxAmount:     inv.TaxAmount,
		TotalAmount:   inv.TotalAmount,
		PaidAmount:    inv.PaidAmount,
		Balance:       inv.Balance,
		CurrencyCode:  inv.CurrencyCode,
		Notes:         inv.Notes,
		IsRecurring:   inv.IsRecurring,
		RecurringType: inv.RecurringType,
		NextDueDate:   inv.NextDueDate,
		CreatedAt:     inv.CreatedAt,
		CreatedBy:     inv.CreatedBy,
		Items:         items,
	}
}

// ToListInvoiceResponse converts domain invoices to response DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv)
	}
	return res
}

// ListInvoicesResponse wraps the list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}
