package dto

import (
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
)

// CreateBusinessRequest defines the data needed to create a business.
// The default chart of accounts is seeded atomically with the business.
type CreateBusinessRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"required,len=3"`
	TaxID        string `json:"taxID"`
}

// BusinessResponse defines the data returned for a business.
type BusinessResponse struct {
	BusinessID   string    `json:"businessID"`
	BusinessName string    `json:"businessName"`
	CurrencyCode string    `json:"currencyCode"`
	TaxID        string    `json:"taxID,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`
}

// ToBusinessResponse converts a domain.Business to its response DTO.
func ToBusinessResponse(b *domain.Business) BusinessResponse {
	return BusinessResponse{
		BusinessID:   b.BusinessID,
		BusinessName: b.BusinessName,
		CurrencyCode: b.CurrencyCode,
		TaxID:        b.TaxID,
		CreatedAt:    b.CreatedAt,
		CreatedBy:    b.CreatedBy,
	}
}

// ToListBusinessResponse converts domain businesses to response DTOs.
func ToListBusinessResponse(bs []domain.Business) []BusinessResponse {
	res := make([]BusinessResponse, len(bs))
	for i, b := range bs {
		res[i] = ToBusinessResponse(&b)
	}
	return res
}
