package dto

import (
	"time"

	"github.com/bizledger/biz_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JournalLineRequest defines one line of a journal entry to be created.
// Exactly one of debitAmount/creditAmount must be positive.
type JournalLineRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
	Reference    string          `json:"reference"`
}

// CreateJournalEntryRequest defines the data needed to create a journal entry.
// Totals are computed from the lines, never accepted from the caller.
type CreateJournalEntryRequest struct {
	TransactionDate time.Time            `json:"transactionDate" binding:"required"`
	Description     string               `json:"description"`
	Reference       string               `json:"reference"`
	Lines           []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateJournalEntryRequest defines edits to a DRAFT entry. Replacing lines
// wholesale keeps the balanced invariant checkable in one place.
type UpdateJournalEntryRequest struct {
	TransactionDate *time.Time           `json:"transactionDate"`
	Description     *string              `json:"description"`
	Reference       *string              `json:"reference"`
	Lines           []JournalLineRequest `json:"lines" binding:"omitempty,min=2,dive"`
}

// JournalLineResponse defines the data returned for a journal entry line.
type JournalLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
	Reference    string          `json:"reference"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID         string                `json:"entryID"`
	BusinessID      string                `json:"businessID"`
	EntryNumber     string                `json:"entryNumber"`
	TransactionDate time.Time             `json:"transactionDate"`
	Description     string                `json:"description"`
	Reference       string                `json:"reference"`
	Status          domain.JournalStatus  `json:"status"`
	TotalDebit      decimal.Decimal       `json:"totalDebit"`
	TotalCredit     decimal.Decimal       `json:"totalCredit"`
	CreatedAt       time.Time             `json:"createdAt"`
	CreatedBy       string                `json:"createdBy"`
	Lines           []JournalLineResponse `json:"lines,omitempty"`
}

// ToJournalLineResponse converts a domain line to its response DTO.
func ToJournalLineResponse(l *domain.JournalEntryLine) JournalLineResponse {
	return JournalLineResponse{
		LineID:       l.LineID,
		AccountID:    l.AccountID,
		DebitAmount:  l.DebitAmount,
		CreditAmount: l.CreditAmount,
		Description:  l.Description,
		Reference:    l.Reference,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = ToJournalLineResponse(&l)
	}
	return JournalEntryResponse{
		EntryID:         e.EntryID,
		BusinessID:      e.BusinessID,
		EntryNumber:     e.EntryNumber,
		TransactionDate: e.TransactionDate,
		Description:     e.Description,
		Reference:       e.Reference,
		Status:          e.Status,
		TotalDebit:      e.TotalDebit,
		TotalCredit:     e.TotalCredit,
		CreatedAt:       e.CreatedAt,
		CreatedBy:       e.CreatedBy,
		Lines:           lines,
	}
}

// ToListJournalEntryResponse converts domain entries to response DTOs.
func ToListJournalEntryResponse(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToJournalEntryResponse(&e)
	}
	return res
}

// ListJournalEntriesParams defines query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListJournalEntriesResponse wraps a page of journal entries with the token
// for the next page.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}
