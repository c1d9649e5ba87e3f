package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portsrepo "github.com/contasys/contasys-backend/internal/core/ports/repositories"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/middleware"
)

// periodService administers period locks.
type periodService struct {
	periodRepo portsrepo.PeriodRepositoryFacade
}

// NewPeriodService creates the period lock guard.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: periodRepo}
}

// Ensure periodService implements the portssvc.PeriodSvcFacade interface
var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

func validPeriod(year, month int) error {
	if month < 1 || month > 12 {
		return apperrors.NewValidationError(fmt.Sprintf("month must be 1-12, got %d", month))
	}
	if year < 2000 || year > 2100 {
		return apperrors.NewValidationError(fmt.Sprintf("year %d is out of range", year))
	}
	return nil
}

// Status returns the lock state of one month. A period with no row has never
// been closed, so a synthetic open lock is returned instead of not-found.
func (s *periodService) Status(ctx context.Context, auth domain.AuthorizedContext, year, month int) (*domain.PeriodLock, error) {
	if err := validPeriod(year, month); err != nil {
		return nil, err
	}
	lock, err := s.periodRepo.FindPeriodLock(ctx, auth.CompanyID, year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.PeriodLock{CompanyID: auth.CompanyID, Year: year, Month: month, IsClosed: false}, nil
		}
		return nil, err
	}
	return lock, nil
}

// AssertOpen fails with PERIOD_CLOSED when the period containing date is
// closed. This is the advisory pre-check; the posting transaction re-checks
// under its own snapshot.
func (s *periodService) AssertOpen(ctx context.Context, companyID int64, date time.Time) error {
	year, month := domain.PeriodOf(date)
	lock, err := s.periodRepo.FindPeriodLock(ctx, companyID, year, month)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if lock.IsClosed {
		return apperrors.NewConflictError(apperrors.CodePeriodClosed, fmt.Sprintf("period %04d-%02d is closed for company %d", year, month, companyID))
	}
	return nil
}

// Close marks the period closed. Idempotent.
func (s *periodService) Close(ctx context.Context, auth domain.AuthorizedContext, year, month int) (*domain.PeriodLock, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validPeriod(year, month); err != nil {
		return nil, err
	}
	lock, err := s.periodRepo.ClosePeriod(ctx, auth.CompanyID, year, month, auth.UserID, time.Now())
	if err != nil {
		logger.Error("Failed to close period", slog.Int64("company_id", auth.CompanyID), slog.Int("year", year), slog.Int("month", month), slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Period closed", slog.Int64("company_id", auth.CompanyID), slog.Int("year", year), slog.Int("month", month), slog.String("closed_by", auth.UserID))
	return lock, nil
}

// Reopen clears the closed flag. The actor and time are recorded; reopening
// an open period is a conflict.
func (s *periodService) Reopen(ctx context.Context, auth domain.AuthorizedContext, year, month int) (*domain.PeriodLock, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validPeriod(year, month); err != nil {
		return nil, err
	}
	lock, err := s.periodRepo.ReopenPeriod(ctx, auth.CompanyID, year, month, auth.UserID, time.Now())
	if err != nil {
		logger.Warn("Failed to reopen period", slog.Int64("company_id", auth.CompanyID), slog.Int("year", year), slog.Int("month", month), slog.String("error", err.Error()))
		return nil, err
	}
	logger.Info("Period reopened", slog.Int64("company_id", auth.CompanyID), slog.Int("year", year), slog.Int("month", month), slog.String("reopened_by", auth.UserID))
	return lock, nil
}
