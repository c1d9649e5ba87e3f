package handlers

import (
	"net/http"
	"strconv"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// periodHandler handles period lock reads and administration.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
	accessService portssvc.AccessSvcFacade
}

func newPeriodHandler(periodService portssvc.PeriodSvcFacade, accessService portssvc.AccessSvcFacade) *periodHandler {
	return &periodHandler{
		periodService: periodService,
		accessService: accessService,
	}
}

func registerPeriodRoutes(rg *gin.RouterGroup, periodService portssvc.PeriodSvcFacade, accessService portssvc.AccessSvcFacade) {
	h := newPeriodHandler(periodService, accessService)
	rg.GET("/periods/:year/:month", h.status)
	rg.POST("/periods/:year/:month/close", h.close)
	rg.POST("/periods/:year/:month/reopen", h.reopen)
}

func periodParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("year must be an integer"))
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		respondError(c, apperrors.NewValidationError("month must be an integer"))
		return 0, 0, false
	}
	return year, month, true
}

// status godoc
// @Summary Get the lock state of an accounting month
// @Tags periods
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param companyID path int true "Company ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.PeriodResponse
// @Router /tenants/{tenantSlug}/companies/{companyID}/periods/{year}/{month} [get]
func (h *periodHandler) status(c *gin.Context) {
	auth, ok := authorizeCompany(c, h.accessService, domain.RoleReadOnly)
	if !ok {
		return
	}
	year, month, ok := periodParams(c)
	if !ok {
		return
	}

	lock, err := h.periodService.Status(c.Request.Context(), *auth, year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(lock))
}

// close godoc
// @Summary Close an accounting month
// @Description Closed months reject any new posting whose work date falls inside them. Idempotent.
// @Tags periods
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param companyID path int true "Company ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.PeriodResponse
// @Failure 403 {object} map[string]string "Requires admin role"
// @Router /tenants/{tenantSlug}/companies/{companyID}/periods/{year}/{month}/close [post]
func (h *periodHandler) close(c *gin.Context) {
	auth, ok := authorizeCompany(c, h.accessService, domain.RoleAdmin)
	if !ok {
		return
	}
	year, month, ok := periodParams(c)
	if !ok {
		return
	}

	lock, err := h.periodService.Close(c.Request.Context(), *auth, year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(lock))
}

// reopen godoc
// @Summary Reopen a closed accounting month
// @Description Records who reopened the month and when. Reopening an open month is a conflict.
// @Tags periods
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param companyID path int true "Company ID"
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} dto.PeriodResponse
// @Failure 409 {object} map[string]string "Period is not closed"
// @Router /tenants/{tenantSlug}/companies/{companyID}/periods/{year}/{month}/reopen [post]
func (h *periodHandler) reopen(c *gin.Context) {
	auth, ok := authorizeCompany(c, h.accessService, domain.RoleAdmin)
	if !ok {
		return
	}
	year, month, ok := periodParams(c)
	if !ok {
		return
	}

	lock, err := h.periodService.Reopen(c.Request.Context(), *auth, year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPeriodResponse(lock))
}
