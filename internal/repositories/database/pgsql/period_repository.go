package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for period locks.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPeriodRepository implements portsrepo.PeriodRepositoryFacade
var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const periodColumns = `company_id, year, month, is_closed, closed_at, closed_by, reopened_at, reopened_by`

func (r *PgxPeriodRepository) scanLock(row pgx.Row) (*domain.PeriodLock, error) {
	var lock domain.PeriodLock
	var closedBy, reopenedBy *string
	err := row.Scan(
		&lock.CompanyID,
		&lock.Year,
		&lock.Month,
		&lock.IsClosed,
		&lock.ClosedAt,
		&closedBy,
		&lock.ReopenedAt,
		&reopenedBy,
	)
	if err != nil {
		return nil, err
	}
	if closedBy != nil {
		lock.ClosedBy = *closedBy
	}
	if reopenedBy != nil {
		lock.ReopenedBy = *reopenedBy
	}
	return &lock, nil
}

// FindPeriodLock returns the lock row for (company, year, month). A missing
// row means the period has never been closed and is therefore open.
func (r *PgxPeriodRepository) FindPeriodLock(ctx context.Context, companyID int64, year, month int) (*domain.PeriodLock, error) {
	query := fmt.Sprintf(`SELECT %s FROM period_locks WHERE company_id = $1 AND year = $2 AND month = $3;`, periodColumns)
	lock, err := r.scanLock(r.Pool.QueryRow(ctx, query, companyID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeCompanyNotFound, fmt.Sprintf("no period lock for company %d period %04d-%02d", companyID, year, month))
		}
		return nil, apperrors.NewInternalError("failed to find period lock", err)
	}
	return lock, nil
}

// ClosePeriod marks the period closed, creating the lock row when absent.
// Closing an already-closed period is idempotent.
func (r *PgxPeriodRepository) ClosePeriod(ctx context.Context, companyID int64, year, month int, actorID string, at time.Time) (*domain.PeriodLock, error) {
	query := fmt.Sprintf(`
		INSERT INTO period_locks (company_id, year, month, is_closed, closed_at, closed_by)
		VALUES ($1, $2, $3, TRUE, $4, $5)
		ON CONFLICT (company_id, year, month)
		DO UPDATE SET is_closed = TRUE, closed_at = $4, closed_by = $5
		RETURNING %s;
	`, periodColumns)
	lock, err := r.scanLock(r.Pool.QueryRow(ctx, query, companyID, year, month, at, actorID))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to close period", err)
	}
	return lock, nil
}

// ReopenPeriod clears the closed flag, recording who reopened and when. Only
// an existing closed period can be reopened.
func (r *PgxPeriodRepository) ReopenPeriod(ctx context.Context, companyID int64, year, month int, actorID string, at time.Time) (*domain.PeriodLock, error) {
	query := fmt.Sprintf(`
		UPDATE period_locks
		SET is_closed = FALSE, reopened_at = $1, reopened_by = $2
		WHERE company_id = $3 AND year = $4 AND month = $5 AND is_closed = TRUE
		RETURNING %s;
	`, periodColumns)
	lock, err := r.scanLock(r.Pool.QueryRow(ctx, query, at, actorID, companyID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewConflictError(apperrors.CodeValidation, fmt.Sprintf("period %04d-%02d of company %d is not closed", year, month, companyID))
		}
		return nil, apperrors.NewInternalError("failed to reopen period", err)
	}
	return lock, nil
}
