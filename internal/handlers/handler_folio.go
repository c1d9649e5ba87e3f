package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/dto"
	"github.com/contasys/contasys-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// folioHandler handles folio counter reads, allocation and top-up.
type folioHandler struct {
	folioService  portssvc.FolioSvcFacade
	accessService portssvc.AccessSvcFacade
}

func newFolioHandler(folioService portssvc.FolioSvcFacade, accessService portssvc.AccessSvcFacade) *folioHandler {
	return &folioHandler{
		folioService:  folioService,
		accessService: accessService,
	}
}

func registerFolioRoutes(rg *gin.RouterGroup, folioService portssvc.FolioSvcFacade, accessService portssvc.AccessSvcFacade) {
	h := newFolioHandler(folioService, accessService)
	rg.GET("/books/:bookID/folios", h.getCounter)
	rg.POST("/books/:bookID/folios/allocate", h.allocate)
	rg.POST("/books/:bookID/folios/topup", h.topUp)
}

func bookIDParam(c *gin.Context) (int64, bool) {
	bookID, err := strconv.ParseInt(c.Param("bookID"), 10, 64)
	if err != nil {
		respondError(c, apperrors.NewValidationError("bookID must be an integer"))
		return 0, false
	}
	return bookID, true
}

// getCounter godoc
// @Summary Get the folio counter of a statutory book
// @Tags folios
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param companyID path int true "Company ID"
// @Param bookID path int true "Statutory book ID"
// @Success 200 {object} dto.FolioCounterResponse
// @Failure 404 {object} map[string]string "Counter not found"
// @Router /tenants/{tenantSlug}/companies/{companyID}/books/{bookID}/folios [get]
func (h *folioHandler) getCounter(c *gin.Context) {
	auth, ok := authorizeCompany(c, h.accessService, domain.RoleReadOnly)
	if !ok {
		return
	}
	bookID, ok := bookIDParam(c)
	if !ok {
		return
	}

	counter, err := h.folioService.GetCounter(c.Request.Context(), *auth, bookID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFolioCounterResponse(counter))
}

// allocate godoc
// @Summary Consume folios from a book's counter
// @Description Atomically consumes folios_used folios. Fails with INSUFFICIENT_FOLIOS when capacity is short; nothing is partially granted.
// @Tags folios
// @Accept json
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param companyID path int true "Company ID"
// @Param bookID path int true "Statutory book ID"
// @Param allocation body dto.AllocateFoliosRequest true "Folios to consume"
// @Success 200 {object} dto.FolioCounterResponse
// @Failure 409 {object} map[string]string "Insufficient folios"
// @Router /tenants/{tenantSlug}/companies/{companyID}/books/{bookID}/folios/allocate [post]
func (h *folioHandler) allocate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AllocateFoliosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind folio allocation request", slog.String("error", err.Error()))
		respondError(c, apperrors.NewValidationError("folios_used must be a positive integer"))
		return
	}

	auth, ok := authorizeCompany(c, h.accessService, domain.RoleMember)
	if !ok {
		return
	}
	bookID, ok := bookIDParam(c)
	if !ok {
		return
	}

	counter, err := h.folioService.Allocate(c.Request.Context(), *auth, bookID, req.FoliosUsed)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFolioCounterResponse(counter))
}

// topUp godoc
// @Summary Replenish a book's folio capacity
// @Tags folios
// @Accept json
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param companyID path int true "Company ID"
// @Param bookID path int true "Statutory book ID"
// @Param topup body dto.TopUpFoliosRequest true "Folios to add"
// @Success 200 {object} dto.FolioCounterResponse
// @Router /tenants/{tenantSlug}/companies/{companyID}/books/{bookID}/folios/topup [post]
func (h *folioHandler) topUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TopUpFoliosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind folio top-up request", slog.String("error", err.Error()))
		respondError(c, apperrors.NewValidationError("count must be a positive integer"))
		return
	}

	auth, ok := authorizeCompany(c, h.accessService, domain.RoleAdmin)
	if !ok {
		return
	}
	bookID, ok := bookIDParam(c)
	if !ok {
		return
	}

	counter, err := h.folioService.TopUp(c.Request.Context(), *auth, bookID, req.Count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToFolioCounterResponse(counter))
}
