package services

import (
	"context"

	"github.com/contasys/contasys-backend/internal/core/domain"
	"github.com/contasys/contasys-backend/internal/dto"
)

// CompanySvcFacade manages companies inside a tenant.
type CompanySvcFacade interface {
	// CreateCompany registers a company under the tenant; requires ADMIN.
	CreateCompany(ctx context.Context, tenantSlug string, userID string, req dto.CreateCompanyRequest) (*domain.Company, error)

	// ListCompanies returns the tenant's companies; requires READONLY.
	ListCompanies(ctx context.Context, tenantSlug string, userID string) ([]domain.Company, error)
}
