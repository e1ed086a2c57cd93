package domain

// Business is the tenant boundary. Every ledger row carries a BusinessID and
// queries never cross it.
type Business struct {
	BusinessID   string `json:"businessID"` // Primary Key (UUID)
	BusinessName string `json:"businessName"`
	CurrencyCode string `json:"currencyCode"` // Default currency for documents, e.g. "XAF"
	TaxID        string `json:"taxID,omitempty"`
	AuditFields
}

// UserBusinessRole is the role a user holds within a business.
type UserBusinessRole string

const (
	RoleOwner  UserBusinessRole = "OWNER"
	RoleAdmin  UserBusinessRole = "ADMIN"
	RoleMember UserBusinessRole = "MEMBER"
)

// UserBusiness links a user to a business with a role.
type UserBusiness struct {
	UserID     string           `json:"userID"`
	BusinessID string           `json:"businessID"`
	Role       UserBusinessRole `json:"role"`
	AuditFields
}
