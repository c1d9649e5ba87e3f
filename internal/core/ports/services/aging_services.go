package services

import (
	"context"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// AgingSvcFacade derives outstanding-balance views. Read-only.
type AgingSvcFacade interface {
	PendingBalances(ctx context.Context, auth domain.AuthorizedContext) (*domain.AgingReport, error)
}
