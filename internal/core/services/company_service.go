package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/dto"
	"github.com/contasys/contasys-backend/internal/middleware"
)

// companyService manages companies inside a tenant.
type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
	accessSvc   portssvc.AccessSvcFacade
}

// NewCompanyService creates the company administration service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, accessSvc portssvc.AccessSvcFacade) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
		accessSvc:   accessSvc,
	}
}

// Ensure companyService implements the portssvc.CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany registers a company under the tenant. Admin only.
func (s *companyService) CreateCompany(ctx context.Context, tenantSlug string, userID string, req dto.CreateCompanyRequest) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tenant, _, err := s.accessSvc.AuthorizeTenant(ctx, tenantSlug, userID, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	company := domain.Company{
		TenantID: tenant.TenantID,
		Name:     req.Name,
		NIT:      req.NIT,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	saved, err := s.companyRepo.SaveCompany(ctx, company)
	if err != nil {
		logger.Error("Failed to create company", slog.String("tenant_slug", tenantSlug), slog.String("name", req.Name), slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Company created", slog.String("tenant_slug", tenantSlug), slog.Int64("company_id", saved.CompanyID))
	return saved, nil
}

// ListCompanies returns the tenant's active companies.
func (s *companyService) ListCompanies(ctx context.Context, tenantSlug string, userID string) ([]domain.Company, error) {
	tenant, _, err := s.accessSvc.AuthorizeTenant(ctx, tenantSlug, userID, domain.RoleReadOnly)
	if err != nil {
		return nil, err
	}
	return s.companyRepo.ListCompaniesByTenant(ctx, tenant.TenantID)
}
