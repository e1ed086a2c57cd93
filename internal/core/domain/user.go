package domain

// User represents an authenticated actor. Passwords are stored as bcrypt
// hashes and never leave the repository layer.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	AuditFields
}
