package domain

import "time"

// Tenant is the top-level isolation boundary. Every company, and everything
// hanging off a company, belongs to exactly one tenant.
type Tenant struct {
	TenantID string `json:"tenantID"` // Primary Key (UUID)
	Slug     string `json:"slug"`     // URL-safe identifier, unique
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// Company is a legal entity kept inside a tenant. All ledger data is scoped
// by CompanyID and the company's tenant must match the authenticated tenant.
type Company struct {
	CompanyID int64  `json:"companyID"` // Primary Key
	TenantID  string `json:"tenantID"`  // FK -> tenants.tenant_id
	Name      string `json:"name"`
	NIT       string `json:"nit"` // tax identification number
	IsActive  bool   `json:"isActive"`
	AuditFields
}

// TenantRole defines the possible roles a user can hold within a tenant.
type TenantRole string

const (
	RoleAdmin    TenantRole = "ADMIN"
	RoleMember   TenantRole = "MEMBER"
	RoleReadOnly TenantRole = "READONLY"
)

// Meets reports whether the role grants at least the given required role.
func (r TenantRole) Meets(required TenantRole) bool {
	rank := map[TenantRole]int{RoleReadOnly: 1, RoleMember: 2, RoleAdmin: 3}
	return rank[r] >= rank[required]
}

// TenantMember represents the membership of a user in a tenant.
type TenantMember struct {
	UserID   string     `json:"userID"`
	TenantID string     `json:"tenantID"`
	Role     TenantRole `json:"role"`
	JoinedAt time.Time  `json:"joinedAt"`
}

// AuthorizedContext is the proof of a completed tenant/company check. Every
// ledger operation receives one instead of re-running its own tenant lookup.
type AuthorizedContext struct {
	TenantID  string     `json:"tenantID"`
	CompanyID int64      `json:"companyID"`
	UserID    string     `json:"userID"`
	Role      TenantRole `json:"role"`
}
