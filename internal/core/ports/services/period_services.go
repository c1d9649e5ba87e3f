package services

import (
	"context"
	"time"

	"github.com/contasys/contasys-backend/internal/core/domain"
)

// PeriodSvcFacade exposes period lock administration and the open-period
// check used outside the posting transaction.
type PeriodSvcFacade interface {
	// Status returns the lock state of one month; a synthetic open lock is
	// returned when no row exists.
	Status(ctx context.Context, auth domain.AuthorizedContext, year, month int) (*domain.PeriodLock, error)

	// AssertOpen fails with PERIOD_CLOSED when the period containing date is
	// closed. The posting transaction runs its own in-transaction check; this
	// is for callers that want the answer ahead of time.
	AssertOpen(ctx context.Context, companyID int64, date time.Time) error

	Close(ctx context.Context, auth domain.AuthorizedContext, year, month int) (*domain.PeriodLock, error)
	Reopen(ctx context.Context, auth domain.AuthorizedContext, year, month int) (*domain.PeriodLock, error)
}
