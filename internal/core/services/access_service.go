package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/middleware"
)

// accessService is the tenant/company access guard.
type accessService struct {
	tenantRepo  portsrepo.TenantRepositoryFacade
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewAccessService creates the access guard.
func NewAccessService(tenantRepo portsrepo.TenantRepositoryFacade, companyRepo portsrepo.CompanyRepositoryFacade) portssvc.AccessSvcFacade {
	return &accessService{
		tenantRepo:  tenantRepo,
		companyRepo: companyRepo,
	}
}

// Ensure accessService implements the portssvc.AccessSvcFacade interface
var _ portssvc.AccessSvcFacade = (*accessService)(nil)

// Authorize performs the full guard chain: tenant by slug, membership with
// sufficient role, company existence and company-tenant ownership. The checks
// run in this order so a cross-tenant company id answers COMPANY_NOT_FOUND,
// never FORBIDDEN, and does not reveal the company exists elsewhere.
func (s *accessService) Authorize(ctx context.Context, tenantSlug string, companyID int64, userID string, requiredRole domain.TenantRole) (*domain.AuthorizedContext, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tenant, member, err := s.AuthorizeTenant(ctx, tenantSlug, userID, requiredRole)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		logger.Warn("Company lookup failed during authorization", slog.Int64("company_id", companyID), slog.String("tenant_slug", tenantSlug), slog.String("error", err.Error()))
		return nil, err
	}
	if company.TenantID != tenant.TenantID || !company.IsActive {
		logger.Warn("Company does not belong to tenant", slog.Int64("company_id", companyID), slog.String("tenant_slug", tenantSlug))
		return nil, apperrors.NewNotFoundError(apperrors.CodeCompanyNotFound, fmt.Sprintf("company %d not found", companyID))
	}

	return &domain.AuthorizedContext{
		TenantID:  tenant.TenantID,
		CompanyID: company.CompanyID,
		UserID:    userID,
		Role:      member.Role,
	}, nil
}

// AuthorizeTenant performs the tenant and membership half of the guard.
func (s *accessService) AuthorizeTenant(ctx context.Context, tenantSlug string, userID string, requiredRole domain.TenantRole) (*domain.Tenant, *domain.TenantMember, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == "" {
		return nil, nil, apperrors.NewUnauthenticated("missing authenticated user")
	}

	tenant, err := s.tenantRepo.FindTenantBySlug(ctx, tenantSlug)
	if err != nil {
		logger.Warn("Tenant lookup failed during authorization", slog.String("tenant_slug", tenantSlug), slog.String("error", err.Error()))
		return nil, nil, err
	}
	if !tenant.IsActive {
		return nil, nil, apperrors.NewNotFoundError(apperrors.CodeTenantNotFound, fmt.Sprintf("tenant %s not found", tenantSlug))
	}

	member, err := s.tenantRepo.FindMembership(ctx, tenant.TenantID, userID)
	if err != nil {
		logger.Warn("Membership check failed during authorization", slog.String("tenant_slug", tenantSlug), slog.String("user_id", userID), slog.String("error", err.Error()))
		return nil, nil, err
	}
	if !member.Role.Meets(requiredRole) {
		logger.Warn("Role below required for operation", slog.String("tenant_slug", tenantSlug), slog.String("user_id", userID), slog.String("role", string(member.Role)), slog.String("required", string(requiredRole)))
		return nil, nil, apperrors.NewForbidden("insufficient role for this operation")
	}

	return tenant, member, nil
}
