package handlers

import (
	"github.com/contasys/contasys-backend/cmd/docs"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/middleware"
	"github.com/contasys/contasys-backend/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	authLimiter *limiter.Limiter,
) {
	r.GET("/", home)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public auth routes, rate limited per client IP.
	auth := r.Group("/auth", middleware.RateLimit(authLimiter))
	registerAuthRoutes(auth, services)

	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. Everything under it requires
// a valid bearer token; per-tenant authorization happens inside the handlers
// through the access guard.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.Auth(cfg.JWTSecret))

	registerCompanyRoutes(v1, services.Company)

	company := v1.Group("/tenants/:tenantSlug/companies/:companyID")
	registerPostingRoutes(company, services.Posting, services.Access)
	registerAgingRoutes(company, services.Aging, services.Access)
	registerFolioRoutes(company, services.Folio, services.Access)
	registerPeriodRoutes(company, services.Period, services.Access)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
