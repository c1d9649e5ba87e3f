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

// authHandler handles credential and Google sign-in.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	tokenService portssvc.TokenSvcFacade
	userService  portssvc.UserSvcFacade
}

func newAuthHandler(authService portssvc.AuthSvcFacade, tokenService portssvc.TokenSvcFacade, userService portssvc.UserSvcFacade) *authHandler {
	return &authHandler{
		authService:  authService,
		tokenService: tokenService,
		userService:  userService,
	}
}

func registerAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Auth, services.Token, services.User)
	rg.POST("/login", h.login)
	rg.POST("/google", h.googleExchange)
}

// login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind login request", slog.String("error", err.Error()))
		respondError(c, apperrors.NewValidationError("invalid request format"))
		return
	}

	user, err := h.authService.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// googleExchange godoc
// @Summary Log in with a Google authorization code
// @Description Exchanges the code for Google tokens, validates the ID token and issues an access token, creating the user on first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param exchange body dto.GoogleExchangeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Code or token rejected"
// @Router /auth/google [post]
func (h *authHandler) googleExchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind google exchange request", slog.String("error", err.Error()))
		respondError(c, apperrors.NewValidationError("invalid request format"))
		return
	}

	claims, err := h.authService.ExchangeGoogleCode(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), *claims)
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
