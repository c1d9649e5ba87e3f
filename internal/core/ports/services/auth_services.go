package services

import (
	"context"
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// GoogleClaims is the validated identity extracted from a Google ID token.
type GoogleClaims struct {
	Subject string
	Email   string
	Name    string
}

// AuthSvcFacade verifies credentials and external identities.
type AuthSvcFacade interface {
	// VerifyCredentials checks an email/password pair against the stored
	// bcrypt hash and returns the user.
	VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error)

	// ExchangeGoogleCode swaps an authorization code for Google tokens,
	// validates the ID token and returns its claims.
	ExchangeGoogleCode(ctx context.Context, code string) (*GoogleClaims, error)
}

// TokenSvcFacade issues access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// UserSvcFacade manages users.
type UserSvcFacade interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindOrCreateGoogleUser returns the user matching the Google identity,
	// creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, claims GoogleClaims) (*domain.User, error)
}
