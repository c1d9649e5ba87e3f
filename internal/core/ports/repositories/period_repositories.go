package repositories

import (
	"context"
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// PeriodRepositoryFacade provides access to period locks. A missing row means
// the period is open.
type PeriodRepositoryFacade interface {
	// FindPeriodLock returns the lock row for (company, year, month) or
	// apperrors.ErrNotFound when no row exists.
	FindPeriodLock(ctx context.Context, companyID int64, year, month int) (*domain.PeriodLock, error)

	// ClosePeriod marks the period closed, creating the row when absent.
	ClosePeriod(ctx context.Context, companyID int64, year, month int, actorID string, at time.Time) (*domain.PeriodLock, error)

	// ReopenPeriod clears the closed flag, recording who reopened and when.
	ReopenPeriod(ctx context.Context, companyID int64, year, month int, actorID string, at time.Time) (*domain.PeriodLock, error)
}
