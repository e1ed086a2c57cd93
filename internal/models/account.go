package models

// AccountType mirrors domain.AccountType at the persistence layer.
type AccountType string

// AccountStatus mirrors domain.AccountStatus at the persistence layer.
type AccountStatus string

// Account represents a chart-of-accounts row.
// Note: there is no balance column; balances are always computed from posted
// journal lines.
type Account struct {
	AccountID       string        `db:"account_id"`
	BusinessID      string        `db:"business_id"`
	AccountCode     string        `db:"account_code"`
	AccountName     string        `db:"account_name"`
	AccountType     AccountType   `db:"account_type"`
	ParentAccountID string        `db:"parent_account_id"` // Nullable
	Description     string        `db:"description"`
	IsDebit         bool          `db:"is_debit"`
	Status          AccountStatus `db:"status"`
	AuditFields
}
