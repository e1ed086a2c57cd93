package dto

import (
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	AccountCode     string             `json:"accountCode" binding:"required"`
	AccountName     string             `json:"accountName" binding:"required"`
	AccountType     domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	ParentAccountID *string            `json:"parentAccountID"` // Optional, use pointer for nullability
	Description     string             `json:"description"`     // Optional
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
// AccountCode and AccountType are immutable after creation.
type UpdateAccountRequest struct {
	AccountName *string               `json:"accountName"`
	Description *string               `json:"description"`
	Status      *domain.AccountStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string               `json:"accountID"`
	BusinessID      string               `json:"businessID"`
	AccountCode     string               `json:"accountCode"`
	AccountName     string               `json:"accountName"`
	AccountType     domain.AccountType   `json:"accountType"`
	ParentAccountID string               `json:"parentAccountID"` // Empty string if null in DB
	Description     string               `json:"description"`
	IsDebit         bool                 `json:"isDebit"`
	Status          domain.AccountStatus `json:"status"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy   string               `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		BusinessID:      acc.BusinessID,
		AccountCode:     acc.AccountCode,
		AccountName:     acc.AccountName,
		AccountType:     acc.AccountType,
		ParentAccountID: acc.ParentAccountID,
		Description:     acc.Description,
		IsDebit:         acc.IsDebit,
		Status:          acc.Status,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// AccountBalanceResponse defines the data returned for an account balance query.
// Balance is expressed on the account's normal side.
type AccountBalanceResponse struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	Balance     decimal.Decimal `json:"balance"`
	AsOf        *time.Time      `json:"asOf,omitempty"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
