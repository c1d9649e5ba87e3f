package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for tenants, memberships
// and companies. The three live together because the access guard always
// reads them as one unit.
func newPgxCompanyRepository(pool *pgxpool.Pool) *PgxCompanyRepository {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCompanyRepository implements both facades
var (
	_ portsrepo.TenantRepositoryFacade  = (*PgxCompanyRepository)(nil)
	_ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)
)

// FindTenantBySlug returns the tenant addressed by a URL slug.
func (r *PgxCompanyRepository) FindTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	query := `SELECT tenant_id, slug, name, is_active FROM tenants WHERE slug = $1;`
	var t domain.Tenant
	err := r.Pool.QueryRow(ctx, query, slug).Scan(&t.TenantID, &t.Slug, &t.Name, &t.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeTenantNotFound, fmt.Sprintf("tenant %s not found", slug))
		}
		return nil, apperrors.NewInternalError("failed to find tenant", err)
	}
	return &t, nil
}

// FindMembership returns the membership linking a user to a tenant.
func (r *PgxCompanyRepository) FindMembership(ctx context.Context, tenantID, userID string) (*domain.TenantMember, error) {
	query := `SELECT tenant_id, user_id, role, joined_at FROM tenant_members WHERE tenant_id = $1 AND user_id = $2;`
	var m domain.TenantMember
	var role string
	err := r.Pool.QueryRow(ctx, query, tenantID, userID).Scan(&m.TenantID, &m.UserID, &role, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewForbidden("user is not a member of this tenant")
		}
		return nil, apperrors.NewInternalError("failed to find tenant membership", err)
	}
	m.Role = domain.TenantRole(role)
	return &m, nil
}

const companyColumns = `company_id, tenant_id, name, nit, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxCompanyRepository) scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.CompanyID,
		&c.TenantID,
		&c.Name,
		&c.NIT,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindCompanyByID returns the company regardless of tenant; the access guard
// compares the tenant id itself so it can distinguish a dangling id from a
// cross-tenant probe.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies WHERE company_id = $1;`, companyColumns)
	company, err := r.scanCompany(r.Pool.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeCompanyNotFound, fmt.Sprintf("company %d not found", companyID))
		}
		return nil, apperrors.NewInternalError("failed to find company", err)
	}
	return company, nil
}

// SaveCompany inserts a new company and returns it with its generated id.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	query := fmt.Sprintf(`
		INSERT INTO companies (tenant_id, name, nit, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s;
	`, companyColumns)
	saved, err := r.scanCompany(r.Pool.QueryRow(ctx, query,
		company.TenantID,
		company.Name,
		company.NIT,
		company.IsActive,
		company.CreatedAt,
		company.CreatedBy,
		company.LastUpdatedAt,
		company.LastUpdatedBy,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewAppError(409, apperrors.CodeValidation, fmt.Sprintf("company with NIT %s already exists", company.NIT), apperrors.ErrDuplicate)
		}
		return nil, apperrors.NewInternalError("failed to save company", err)
	}
	return saved, nil
}

// ListCompaniesByTenant returns the active companies of a tenant.
func (r *PgxCompanyRepository) ListCompaniesByTenant(ctx context.Context, tenantID string) ([]domain.Company, error) {
	query := fmt.Sprintf(`SELECT %s FROM companies WHERE tenant_id = $1 AND is_active = TRUE ORDER BY company_id;`, companyColumns)
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to query companies", err)
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		company, err := r.scanCompany(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan company", err)
		}
		companies = append(companies, *company)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read companies", err)
	}
	return companies, nil
}
