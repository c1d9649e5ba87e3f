package repositories

import (
	"context"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// UserRepositoryFacade provides persistence for users.
type UserRepositoryFacade interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	SaveUser(ctx context.Context, user domain.User) error
}
