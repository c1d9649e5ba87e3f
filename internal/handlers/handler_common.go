package handlers

import (
	"strconv"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps any error to the {code, error} body the API answers
// failures with, using the AppError status.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)
	c.JSON(appErr.Status, gin.H{"code": appErr.Code, "error": appErr.Message})
}

// authorizeCompany runs the access guard for a company-scoped route, reading
// the tenant slug and company id from the path and the user from the request
// context.
func authorizeCompany(c *gin.Context, accessSvc portssvc.AccessSvcFacade, requiredRole domain.TenantRole) (*domain.AuthorizedContext, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.NewUnauthenticated("missing authenticated user"))
		return nil, false
	}

	companyID, err := strconv.ParseInt(c.Param("companyID"), 10, 64)
	if err != nil {
		respondError(c, apperrors.NewValidationError("companyID must be an integer"))
		return nil, false
	}

	auth, err := accessSvc.Authorize(c.Request.Context(), c.Param("tenantSlug"), companyID, userID, requiredRole)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return auth, true
}
