package dto

import (
	"github.com/contasys/contasys-backend/internal/core/domain"
)

// CreateCompanyRequest registers a new company under a tenant.
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required,min=2"`
	NIT  string `json:"nit" binding:"required,nit"`
}

// CompanyResponse is the public shape of a company.
type CompanyResponse struct {
	CompanyID int64  `json:"companyID"`
	TenantID  string `json:"tenantID"`
	Name      string `json:"name"`
	NIT       string `json:"nit"`
	IsActive  bool   `json:"isActive"`
}

// ToCompanyResponse converts a domain company to its response shape.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID: c.CompanyID,
		TenantID:  c.TenantID,
		Name:      c.Name,
		NIT:       c.NIT,
		IsActive:  c.IsActive,
	}
}

// ToCompanyResponses converts a slice of domain companies.
func ToCompanyResponses(companies []domain.Company) []CompanyResponse {
	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = ToCompanyResponse(&companies[i])
	}
	return responses
}
