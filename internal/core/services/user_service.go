package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/middleware"
	"github.com/google/uuid"
)

// userService manages users.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// FindOrCreateGoogleUser returns the user matching a validated Google
// identity, creating one on first sign-in. An existing local user with the
// same email keeps their local login; Google sign-in is refused for them.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, claims portssvc.GoogleClaims) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByEmail(ctx, claims.Email)
	if err == nil {
		if existing.AuthProvider != domain.ProviderGoogle {
			return nil, apperrors.NewUnauthenticated("email is registered with password login")
		}
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        claims.Email,
		Name:         claims.Name,
		AuthProvider: domain.ProviderGoogle,
		ProviderID:   claims.Subject,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "google-signin",
			LastUpdatedAt: now,
			LastUpdatedBy: "google-signin",
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to create user from Google sign-in", slog.String("email", claims.Email), slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("User created from Google sign-in", slog.String("user_id", user.UserID))
	return &user, nil
}
