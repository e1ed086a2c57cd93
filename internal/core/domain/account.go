package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists all valid account types in display order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Income, Expense}

// IsValid reports whether t is one of the five known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Income, Expense:
		return true
	}
	return false
}

// AccountStatus is the lifecycle state of a chart-of-accounts entry.
// Exactly one of the three states holds at a time; there is no separate
// active/deleted boolean pair.
type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
	AccountDeleted  AccountStatus = "DELETED"
)

// Account represents a chart-of-accounts entry within a business.
// AccountCode is unique among non-deleted accounts of the business; a deleted
// account is revived (not duplicated) when the same code is created again, so
// historical journal lines keep pointing at the same row.
type Account struct {
	AccountID       string        `json:"accountID"`       // Primary Key (UUID)
	BusinessID      string        `json:"businessID"`      // FK -> businesses.business_id (NON-NULL)
	AccountCode     string        `json:"accountCode"`     // Human code, e.g. "105"
	AccountName     string        `json:"accountName"`     // User-defined name
	AccountType     AccountType   `json:"accountType"`     // ASSET, LIABILITY, etc.
	ParentAccountID string        `json:"parentAccountID"` // Nullable FK -> accounts.account_id (self-referencing)
	Description     string        `json:"description"`
	IsDebit         bool          `json:"isDebit"` // Cached: AccountType in {ASSET, EXPENSE}; recomputed on every write
	Status          AccountStatus `json:"status"`
	AuditFields
}

// IsDebitNormal reports whether the account type increases on the debit side.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}
