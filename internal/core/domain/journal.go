package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Draft    JournalStatus = "DRAFT"
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// JournalEntry represents a single balanced financial event composed of
// multiple lines. TotalDebit and TotalCredit are cached sums of the lines,
// recomputed on every write and never accepted from callers.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`     // Primary Key (UUID)
	BusinessID      string          `json:"businessID"`  // FK -> businesses.business_id (NON-NULL)
	EntryNumber     string          `json:"entryNumber"` // Sequential per business, e.g. "JE-00001"
	TransactionDate time.Time       `json:"transactionDate"`
	Description     string          `json:"description"`
	Reference       string          `json:"reference"`
	Status          JournalStatus   `json:"status"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	AuditFields
	Lines []JournalEntryLine `json:"lines,omitempty"`
}

// JournalEntryLine is a single line within a journal entry, affecting one
// account. Exactly one of DebitAmount/CreditAmount is positive; the other is zero.
type JournalEntryLine struct {
	LineID       string          `json:"lineID"`  // Primary Key (UUID)
	EntryID      string          `json:"entryID"` // FK -> journal_entries.entry_id
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
	Description  string          `json:"description"`
	Reference    string          `json:"reference"`
}
