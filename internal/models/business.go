package models

// Business represents a businesses row, the tenant boundary.
type Business struct {
	BusinessID   string `db:"business_id"`
	BusinessName string `db:"business_name"`
	CurrencyCode string `db:"currency_code"`
	TaxID        string `db:"tax_id"`
	AuditFields
}

// UserBusiness represents a user_businesses membership row.
type UserBusiness struct {
	UserID     string `db:"user_id"`
	BusinessID string `db:"business_id"`
	Role       string `db:"role"`
	AuditFields
}
