package services

import (
	"context"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// AccessSvcFacade is the tenant/company access guard. Every ledger operation
// goes through Authorize exactly once; components behind it trust the
// returned context and perform no tenant checks of their own.
type AccessSvcFacade interface {
	// Authorize resolves the tenant by slug, verifies the user's membership
	// meets requiredRole, resolves the company and verifies it belongs to the
	// tenant. Pure read. Fails with UNAUTHENTICATED, TENANT_NOT_FOUND,
	// FORBIDDEN or COMPANY_NOT_FOUND AppErrors.
	Authorize(ctx context.Context, tenantSlug string, companyID int64, userID string, requiredRole domain.TenantRole) (*domain.AuthorizedContext, error)

	// AuthorizeTenant performs the tenant/membership half only, for
	// operations that are not scoped to a single company (company creation,
	// company listing).
	AuthorizeTenant(ctx context.Context, tenantSlug string, userID string, requiredRole domain.TenantRole) (*domain.Tenant, *domain.TenantMember, error)
}
