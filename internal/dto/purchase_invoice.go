package dto

import (
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseInvoiceItemRequest defines one product line of a vendor bill.
type PurchaseInvoiceItemRequest struct {
	ProductID   string          `json:"productID" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost    decimal.Decimal `json:"unitCost" binding:"required"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Description string          `json:"description"`
}

// CreatePurchaseInvoiceRequest defines the data needed to record a vendor bill.
type CreatePurchaseInvoiceRequest struct {
	VendorID    string                       `json:"vendorID" binding:"required"`
	InvoiceDate time.Time                    `json:"invoiceDate" binding:"required"`
	DueDate     time.Time                    `json:"dueDate" binding:"required"`
	Notes       string                       `json:"notes"`
	Items       []PurchaseInvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseInvoiceItemResponse defines the data returned for a vendor bill item.
type PurchaseInvoiceItemResponse struct {
	ItemID      string          `json:"itemID"`
	ProductID   string          `json:"productID"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
	Description string          `json:"description"`
}

// PurchaseInvoiceResponse defines the data returned for a vendor bill.
type PurchaseInvoiceResponse struct {
	PurchaseInvoiceID string                        `json:"purchaseInvoiceID"`
	BusinessID        string                        `json:"businessID"`
	VendorID          string                        `json:"vendorID"`
	InvoiceNumber     string                        `json:"invoiceNumber"`
	InvoiceDate       time.Time                     `json:"invoiceDate"`
	DueDate           time.Time                     `json:"dueDate"`
	Status            domain.PurchaseInvoiceStatus  `json:"status"`
	Subtotal          decimal.Decimal               `json:"subtotal"`
	TaxAmount         decimal.Decimal               `json:"taxAmount"`
	TotalAmount       decimal.Decimal               `json:"totalAmount"`
	PaidAmount        decimal.Decimal               `json:"paidAmount"`
	Balance           decimal.Decimal               `json:"balance"`
	CurrencyCode      string                        `json:"currencyCode"`
	Notes             string                        `json:"notes"`
	CreatedAt         time.Time                     `json:"createdAt"`
	CreatedBy         string                        `json:"createdBy"`
	Items             []PurchaseInvoiceItemResponse `json:"items,omitempty"`
}

// ToPurchaseInvoiceItemResponse converts a domain item to its response DTO.
func ToPurchaseInvoiceItemResponse(it *domain.PurchaseInvoiceItem) PurchaseInvoiceItemResponse {
	return PurchaseInvoiceItemResponse{
		ItemID:      it.ItemID,
		ProductID:   it.ProductID,
		Quantity:    it.Quantity,
		UnitCost:    it.UnitCost,
		TaxRate:     it.TaxRate,
		TaxAmount:   it.TaxAmount,
		LineTotal:   it.LineTotal,
		Description: it.Description,
	}
}

// ToPurchaseInvoiceResponse converts a domain.PurchaseInvoice to its response DTO.
func ToPurchaseInvoiceResponse(pi *domain.PurchaseInvoice) PurchaseInvoiceResponse {
	items := make([]PurchaseInvoiceItemResponse, len(pi.Items))
	for i, it := range pi.Items {
		items[i] = ToPurchaseInvoiceItemResponse(&it)
	}
	return PurchaseInvoiceResponse{
		PurchaseInvoiceID: pi.PurchaseInvoiceID,
		BusinessID:        pi.BusinessID,
		VendorID:          pi.VendorID,
		InvoiceNumber:     pi.InvoiceNumber,
		InvoiceDate:       pi.InvoiceDate,
		DueDate:           pi.DueDate,
		Status:            pi.Status,
		Subtotal:          pi.Subtotal,
		TaxAmount:         pi.TaxAmount,
		TotalAmount:       pi.TotalAmount,
		PaidAmount:        pi.PaidAmount,
		Balance:           pi.Balance,
		CurrencyCode:      pi.CurrencyCode,
		Notes:             pi.Notes,
		CreatedAt:         pi.CreatedAt,
		CreatedBy:         pi.CreatedBy,
		Items:             items,
	}
}

// ToListPurchaseInvoiceResponse converts domain purchase invoices to DTOs.
func ToListPurchaseInvoiceResponse(pis []domain.PurchaseInvoice) []PurchaseInvoiceResponse {
	res := make([]PurchaseInvoiceResponse, len(pis))
	for i, pi := range pis {
		res[i] = ToPurchaseInvoiceResponse(&pi)
	}
	return res
}

// ListPurchaseInvoicesResponse wraps the list of purchase invoices.
type ListPurchaseInvoicesResponse struct {
	PurchaseInvoices []PurchaseInvoiceResponse `json:"purchaseInvoices"`
}
