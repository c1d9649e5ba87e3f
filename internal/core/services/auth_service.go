package services

import (
	"context"
	"log/slog"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/middleware"
	"github.com/contasys/contasys-backend/internal/utils"
	"github.com/contasys/contasys-backend/pkg/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// authService verifies local credentials and Google identities.
type authService struct {
	cfg          *config.Config
	userRepo     portsrepo.UserRepositoryFacade
	oauth2Config *oauth2.Config
}

// NewAuthService creates the authentication service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Ensure authService implements the portssvc.AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authService)(nil)

// VerifyCredentials checks an email/password pair against the stored bcrypt
// hash. Unknown email and wrong password both answer the same way.
func (s *authService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		logger.Warn("Login attempt for unknown email", slog.String("email", email))
		return nil, apperrors.NewUnauthenticated("invalid credentials")
	}
	if !user.IsActive || user.AuthProvider != domain.ProviderLocal {
		return nil, apperrors.NewUnauthenticated("invalid credentials")
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Login attempt with wrong password", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthenticated("invalid credentials")
	}
	return user, nil
}

// ExchangeGoogleCode swaps an authorization code for Google tokens, validates
// the ID token against our client id and returns its identity claims.
func (s *authService) ExchangeGoogleCode(ctx context.Context, code string) (*portssvc.GoogleClaims, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		return nil, apperrors.NewUnauthenticated("google authorization code rejected")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, apperrors.NewUnauthenticated("google response missing id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		logger.Warn("Google id token validation failed", slog.String("error", err.Error()))
		return nil, apperrors.NewUnauthenticated("google id token invalid")
	}

	claims := &portssvc.GoogleClaims{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		claims.Name = name
	}
	if claims.Email == "" {
		return nil, apperrors.NewUnauthenticated("google id token carries no email")
	}
	return claims, nil
}
