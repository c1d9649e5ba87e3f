package handlers

import (
	"net/http"

	"github.com/contasys/contasys-backend/internal/core/domain"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// agingHandler serves the pending-balances view.
type agingHandler struct {
	agingService  portssvc.AgingSvcFacade
	accessService portssvc.AccessSvcFacade
}

func newAgingHandler(agingService portssvc.AgingSvcFacade, accessService portssvc.AccessSvcFacade) *agingHandler {
	return &agingHandler{
		agingService:  agingService,
		accessService: accessService,
	}
}

func registerAgingRoutes(rg *gin.RouterGroup, agingService portssvc.AgingSvcFacade, accessService portssvc.AccessSvcFacade) {
	h := newAgingHandler(agingService, accessService)
	rg.GET("/aging", h.pendingBalances)
}

// pendingBalances godoc
// @Summary Pending balances by document (CxC / CxP)
// @Description Nets outstanding credit documents against their payment applications. Fully applied documents are excluded.
// @Tags aging
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param companyID path int true "Company ID"
// @Success 200 {object} dto.AgingResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Router /tenants/{tenantSlug}/companies/{companyID}/aging [get]
func (h *agingHandler) pendingBalances(c *gin.Context) {
	auth, ok := authorizeCompany(c, h.accessService, domain.RoleReadOnly)
	if !ok {
		return
	}

	report, err := h.agingService.PendingBalances(c.Request.Context(), *auth)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAgingResponse(report))
}
