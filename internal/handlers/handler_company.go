package handlers

import (
	"log/slog"
	"net/http"

	"github.com/contasys/contasys-backend/internal/apperrors"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/dto"
	"github.com/contasys/contasys-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles company administration inside a tenant.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(companyService portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: companyService}
}

func registerCompanyRoutes(rg *gin.RouterGroup, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)
	rg.POST("/tenants/:tenantSlug/companies", h.createCompany)
	rg.GET("/tenants/:tenantSlug/companies", h.listCompanies)
}

// createCompany godoc
// @Summary Register a company under a tenant
// @Tags companies
// @Accept json
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param company body dto.CreateCompanyRequest true "Company data"
// @Success 201 {object} dto.CompanyResponse
// @Failure 403 {object} map[string]string "Requires admin role"
// @Router /tenants/{tenantSlug}/companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind company creation request", slog.String("error", err.Error()))
		respondError(c, apperrors.NewValidationError("invalid request format"))
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthenticated("missing authenticated user"))
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), c.Param("tenantSlug"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List the tenant's companies
// @Tags companies
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Success 200 {array} dto.CompanyResponse
// @Router /tenants/{tenantSlug}/companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthenticated("missing authenticated user"))
		return
	}

	companies, err := h.companyService.ListCompanies(c.Request.Context(), c.Param("tenantSlug"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponses(companies))
}
