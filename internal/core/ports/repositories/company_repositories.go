package repositories

import (
	"context"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// TenantRepositoryFacade provides read access to tenants and memberships.
type TenantRepositoryFacade interface {
	// FindTenantBySlug returns the tenant for a slug or apperrors.ErrNotFound.
	FindTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error)

	// FindMembership returns the membership row linking a user to a tenant,
	// or apperrors.ErrNotFound when the user is not a member.
	FindMembership(ctx context.Context, tenantID, userID string) (*domain.TenantMember, error)
}

// CompanyRepositoryFacade provides persistence for companies.
type CompanyRepositoryFacade interface {
	// FindCompanyByID returns the company or apperrors.ErrNotFound.
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)

	SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error)

	ListCompaniesByTenant(ctx context.Context, tenantID string) ([]domain.Company, error)
}
