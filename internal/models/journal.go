package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus mirrors domain.JournalStatus at the persistence layer.
type JournalStatus string

// JournalEntry represents a journal_entries row.
type JournalEntry struct {
	EntryID         string          `db:"entry_id"`
	BusinessID      string          `db:"business_id"`
	EntryNumber     string          `db:"entry_number"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	Reference       string          `db:"reference"`
	Status          JournalStatus   `db:"status"`
	TotalDebit      decimal.Decimal `db:"total_debit"`
	TotalCredit     decimal.Decimal `db:"total_credit"`
	AuditFields
}

// JournalEntryLine represents a journal_entry_lines row.
type JournalEntryLine struct {
	LineID       string          `db:"line_id"`
	EntryID      string          `db:"entry_id"`
	AccountID    string          `db:"account_id"`
	DebitAmount  decimal.Decimal `db:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount"`
	Description  string          `db:"description"`
	Reference    string          `db:"reference"`
}
