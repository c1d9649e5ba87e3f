package domain

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User is an authenticated principal. Tenant membership is modeled
// separately via TenantMember.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	Email        string       `json:"email"`  // unique login identifier
	Name         string       `json:"name"`
	PasswordHash string       `json:"-"` // empty for external providers
	AuthProvider AuthProvider `json:"authProvider"`
	ProviderID   string       `json:"-"` // subject claim for external providers
	IsActive     bool         `json:"isActive"`
	AuditFields
}
